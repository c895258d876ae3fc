package agingcurves

// Find devuelve la primera curva con species y breed exactos (case-sensitive).
func Find(species, breed string, ds Dataset) (AgingRecord, bool) {
	for _, rec := range ds {
		if rec.Species == species && rec.Breed == breed {
			return rec, true
		}
	}
	return AgingRecord{}, false
}

// ConvertAge traduce la edad cronológica de la mascota a años humanos.
// ok=false cuando no hay curva para (species, breed); no es un error.
// No valida petAge ni el registro: edades <= 0 pasan por la misma fórmula.
func ConvertAge(species, breed string, petAge float64, ds Dataset) (float64, bool) {
	rec, ok := Find(species, breed, ds)
	if !ok {
		return 0, false
	}
	return rec.HumanAge(petAge), true
}

// HumanAge aplica el modelo por tramos. Ambas ramas coinciden en petAge == FirstPhaseYears.
func (r AgingRecord) HumanAge(petAge float64) float64 {
	if petAge <= r.FirstPhaseYears {
		return petAge * r.FirstPhaseValue
	}
	return r.FirstPhaseYears*r.FirstPhaseValue + (petAge-r.FirstPhaseYears)*r.LaterPerYear
}

// ListSpecies devuelve cada especie una sola vez, en orden de primera aparición.
func ListSpecies(ds Dataset) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)

	for _, rec := range ds {
		if _, ok := seen[rec.Species]; ok {
			continue
		}
		seen[rec.Species] = struct{}{}
		out = append(out, rec.Species)
	}
	return out
}

// ListBreeds filtra por especie exacta y proyecta la raza.
// Mantiene el orden del dataset y no deduplica.
func ListBreeds(species string, ds Dataset) []string {
	out := make([]string, 0)
	for _, rec := range ds {
		if rec.Species == species {
			out = append(out, rec.Breed)
		}
	}
	return out
}
