package agingcurves

import "context"

// Repository entrega el dataset completo. El Service lo llama una sola vez con éxito.
type Repository interface {
	Load(ctx context.Context) (Dataset, error)
}
