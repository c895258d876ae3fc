package datafile

import (
	"context"
	"strings"

	"pet-human-age/internal/domain/agingcurves"
	"pet-human-age/internal/platform/httpclient"
)

// Repo implementa agingcurves.Repository leyendo un archivo o una URL.
type Repo struct {
	source string
	client *httpclient.Client
}

func NewRepo(source string, client *httpclient.Client) *Repo {
	return &Repo{
		source: strings.TrimSpace(source),
		client: client,
	}
}

func (r *Repo) Load(ctx context.Context) (agingcurves.Dataset, error) {
	if IsURL(r.source) {
		return LoadURL(ctx, r.client, r.source)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(r.source)
}
