package agingcurves

// AgingRecord es una fila del dataset de referencia: una curva de envejecimiento por (especie, raza).
type AgingRecord struct {
	Species string
	Breed   string

	// Primera fase: envejecimiento acelerado durante FirstPhaseYears años cronológicos.
	FirstPhaseYears float64
	FirstPhaseValue float64 // años humanos por año cronológico dentro de la primera fase

	LaterPerYear float64 // años humanos por año cronológico después de la primera fase
}

// Dataset es la colección ordenada de curvas. Se carga una vez y no se muta.
// (species, breed) es la clave lógica; si hay duplicados gana el primero.
type Dataset []AgingRecord

// AgeQuery es la consulta efímera que arma el caller.
type AgeQuery struct {
	Species string
	Breed   string
	PetAge  float64
}

// Conversion es el resultado de una consulta resuelta.
type Conversion struct {
	Species  string
	Breed    string
	PetAge   float64
	HumanAge float64
}
