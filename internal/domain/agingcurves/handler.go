package agingcurves

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pet-human-age/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/species", listSpeciesHandler(svc))
	r.Get("/species/{species}/breeds", listBreedsHandler(svc))

	r.Route("/human-age", func(hr chi.Router) {
		hr.Get("/", humanAgeQueryHandler(svc))
		hr.Post("/", humanAgeBodyHandler(svc))
	})
}

// humanAgeRequest es el cuerpo para convertir una edad.
type humanAgeRequest struct {
	Species string  `json:"species" validate:"required"`
	Breed   string  `json:"breed" validate:"required"`
	PetAge  float64 `json:"pet_age" validate:"gt=0"`
}

// humanAgeResponse es la edad equivalente calculada.
type humanAgeResponse struct {
	Species  string  `json:"species"`
	Breed    string  `json:"breed"`
	PetAge   float64 `json:"pet_age"`
	HumanAge float64 `json:"human_age"`
}

// listSpeciesHandler godoc
// @Summary Listar especies
// @Description Devuelve las especies del dataset, sin repetir y en orden de primera aparición.
// @Tags aging-curves
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "internal error"
// @Router /species [get]
func listSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Species(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// listBreedsHandler godoc
// @Summary Listar razas de una especie
// @Description Devuelve las razas de la especie en el orden del dataset. Especie desconocida => lista vacía.
// @Tags aging-curves
// @Produce json
// @Param species path string true "Especie (match exacto, case-sensitive)"
// @Success 200 {array} string
// @Failure 500 {string} string "internal error"
// @Router /species/{species}/breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// chi rutea sobre RawPath cuando existe (p.ej. %2F): solo ahí el param llega escapado
		species := chi.URLParam(r, "species")
		if r.URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(species); err == nil {
				species = unescaped
			}
		}

		items, err := svc.Breeds(r.Context(), species)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// humanAgeQueryHandler godoc
// @Summary Calcular edad humana (query)
// @Description Convierte la edad cronológica de la mascota a años humanos usando la curva de su especie y raza.
// @Tags aging-curves
// @Produce json
// @Param species query string true "Especie"
// @Param breed query string true "Raza"
// @Param age query number true "Edad en años cronológicos (> 0)"
// @Success 200 {object} humanAgeResponse
// @Failure 400 {string} string "parámetros faltantes o age inválido"
// @Failure 404 {string} string "aging curve not found"
// @Router /human-age [get]
func humanAgeQueryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		species := strings.TrimSpace(q.Get("species"))
		breed := strings.TrimSpace(q.Get("breed"))
		if species == "" || breed == "" {
			http.Error(w, "species and breed are required", http.StatusBadRequest)
			return
		}

		age, err := strconv.ParseFloat(strings.TrimSpace(q.Get("age")), 64)
		if err != nil || !validAge(age) {
			http.Error(w, "age must be a positive number", http.StatusBadRequest)
			return
		}

		convert(w, r, svc, AgeQuery{Species: species, Breed: breed, PetAge: age})
	}
}

// humanAgeBodyHandler godoc
// @Summary Calcular edad humana (JSON)
// @Description Igual que GET /human-age pero recibe la consulta en el body.
// @Tags aging-curves
// @Accept json
// @Produce json
// @Param payload body humanAgeRequest true "Consulta; pet_age > 0"
// @Success 200 {object} humanAgeResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "aging curve not found"
// @Router /human-age [post]
func humanAgeBodyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req humanAgeRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		req.Species = strings.TrimSpace(req.Species)
		req.Breed = strings.TrimSpace(req.Breed)

		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		convert(w, r, svc, AgeQuery{Species: req.Species, Breed: req.Breed, PetAge: req.PetAge})
	}
}

func convert(w http.ResponseWriter, r *http.Request, svc *Service, q AgeQuery) {
	c, err := svc.HumanAge(r.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, humanAgeResponse{
		Species:  c.Species,
		Breed:    c.Breed,
		PetAge:   c.PetAge,
		HumanAge: c.HumanAge,
	})
}

// El core acepta cualquier edad; rechazar <= 0, NaN e Inf es responsabilidad del caller (este handler).
func validAge(age float64) bool {
	return age > 0 && !math.IsInf(age, 0) && !math.IsNaN(age)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
