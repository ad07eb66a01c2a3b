package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quartopress/coverforge/internal/state"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type idResponse struct {
	ID string `json:"id"`
}

type presetListResponse struct {
	Presets []string `json:"presets"`
}

func (s *HTTPServer) apiV1Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/fields", s.handleGetFields)
	r.Put("/fields", s.handlePutFields)
	r.Get("/preview.png", s.handlePreview)
	r.Post("/export", s.handleExport)
	r.Get("/presets", s.handleListPresets)
	r.Post("/presets", s.handleSavePreset)
	r.Get("/presets/{id}", s.handleGetPreset)
	r.Post("/presets/{id}/load", s.handleLoadPreset)
	r.Delete("/presets/{id}", s.handleDeletePreset)
	return r
}

func (s *HTTPServer) handleGetFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Service.Fields())
}

func (s *HTTPServer) handlePutFields(w http.ResponseWriter, r *http.Request) {
	var fields state.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_fields", err.Error())
		return
	}
	s.Service.SetFields(fields)
	writeJSON(w, http.StatusOK, s.Service.Fields())
}

func (s *HTTPServer) handlePreview(w http.ResponseWriter, r *http.Request) {
	width := 0
	if raw := r.URL.Query().Get("width"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeAPIError(w, http.StatusBadRequest, "invalid_width", "width must be a positive integer")
			return
		}
		width = parsed
	}

	data, err := s.Service.RenderPreviewPNG(width)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.Service.ExportPNG()
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="cover.png"`)
	_, _ = w.Write(data)
}

func (s *HTTPServer) handleListPresets(w http.ResponseWriter, r *http.Request) {
	if s.Presets == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "preset store not configured")
		return
	}
	ids, err := s.Presets.List()
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "preset_list_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, presetListResponse{Presets: ids})
}

func (s *HTTPServer) handleSavePreset(w http.ResponseWriter, r *http.Request) {
	if s.Presets == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "preset store not configured")
		return
	}
	id, err := s.Presets.Save(s.Service.Fields())
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "preset_save_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *HTTPServer) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	if s.Presets == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "preset store not configured")
		return
	}
	fields, err := s.Presets.Load(chi.URLParam(r, "id"))
	if err != nil {
		writeAPIError(w, http.StatusNotFound, "preset_not_found", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

// handleLoadPreset replaces the live fields with a stored preset. A
// malformed preset aborts the load and leaves the current fields unchanged.
func (s *HTTPServer) handleLoadPreset(w http.ResponseWriter, r *http.Request) {
	if s.Presets == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "preset store not configured")
		return
	}
	fields, err := s.Presets.Load(chi.URLParam(r, "id"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_preset", err.Error())
		return
	}
	s.Service.SetFields(fields)
	writeJSON(w, http.StatusOK, fields)
}

func (s *HTTPServer) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	if s.Presets == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "preset store not configured")
		return
	}
	if err := s.Presets.Delete(chi.URLParam(r, "id")); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "preset_delete_failed", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
