package crates

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/crates", func(cr chi.Router) {
		cr.Post("/assessments", assessHandler(svc))

		cr.Get("/catalog", listCatalogHandler(svc))
		cr.Get("/catalog/{modelID}", getModelHandler(svc))

		// Recarga manual (el watcher de archivo hace lo mismo solo)
		cr.Post("/catalog/reload", reloadCatalogHandler(svc))
	})
}

type validationErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}

type reloadResponse struct {
	Models int `json:"models"`
}

// assessHandler godoc
// @Summary Evaluar jaula para una mascota
// @Description Calcula las dimensiones mínimas IATA a partir de las cuatro medidas (A largo, B altura de pie, C ancho, D altura sentado), compara la jaula candidata si viene, aplica reglas por raza y destino, y devuelve score, banda y modelo recomendado. Con `narrate=true` se agrega texto del narrador si está configurado.
// @Tags crates
// @Accept json
// @Produce json
// @Param narrate query bool false "Pedir texto al narrador externo"
// @Param payload body RawRequest true "Medidas en cm, perfil de raza opcional, destino y jaula candidata opcional"
// @Success 200 {object} Report
// @Failure 400 {object} validationErrorResponse "validation_failed con la lista de campos"
// @Failure 400 {string} string "invalid json"
// @Router /crates/assessments [post]
func assessHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RawRequest

		// UseNumber: los números llegan como json.Number y el normalizador decide
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		narrate, _ := strconv.ParseBool(r.URL.Query().Get("narrate"))

		rep, err := svc.Assess(r.Context(), req, narrate)
		if err != nil {
			if verr, ok := IsValidation(err); ok {
				writeJSON(w, http.StatusBadRequest, validationErrorResponse{
					Error:  "validation_failed",
					Fields: verr.Fields,
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, rep)
	}
}

// listCatalogHandler godoc
// @Summary Listar modelos de jaula
// @Description Devuelve el catálogo vigente en orden de inserción.
// @Tags crates
// @Produce json
// @Success 200 {array} CrateCatalogEntry
// @Failure 503 {string} string "catalog not loaded"
// @Router /crates/catalog [get]
func listCatalogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		items, err := svc.Catalog()
		if err != nil {
			http.Error(w, "catalog not loaded", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getModelHandler godoc
// @Summary Obtener un modelo de jaula
// @Tags crates
// @Produce json
// @Param modelID path string true "ID del modelo"
// @Success 200 {object} CrateCatalogEntry
// @Failure 404 {string} string "model not found"
// @Failure 503 {string} string "catalog not loaded"
// @Router /crates/catalog/{modelID} [get]
func getModelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Model(chi.URLParam(r, "modelID"))
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, m)
		case errors.Is(err, ErrModelNotFound):
			http.Error(w, "model not found", http.StatusNotFound)
		case errors.Is(err, ErrCatalogNotLoaded):
			http.Error(w, "catalog not loaded", http.StatusServiceUnavailable)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// reloadCatalogHandler godoc
// @Summary Recargar catálogo
// @Description Vuelve a leer el catálogo desde su origen. Si el origen es inválido se conserva el catálogo anterior.
// @Tags crates
// @Produce json
// @Success 200 {object} reloadResponse
// @Failure 409 {string} string "invalid catalog"
// @Failure 502 {string} string "catalog source unavailable"
// @Router /crates/catalog/reload [post]
func reloadCatalogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.Reload(r.Context())
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, reloadResponse{Models: n})
		case errors.Is(err, ErrInvalidCatalog):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrCatalogNotLoaded):
			http.Error(w, "catalog source not configured", http.StatusServiceUnavailable)
		default:
			http.Error(w, "catalog source unavailable", http.StatusBadGateway)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
