package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/orgdeck/internal/deck"
)

type slideInfo struct {
	Index    int    `json:"index"`
	Template string `json:"template"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Label    string `json:"label"`
	Filename string `json:"filename"`
}

type deckResponse struct {
	Title      string      `json:"title"`
	FirstSlide string      `json:"first_slide"`
	Total      int         `json:"total"`
	Slides     []slideInfo `json:"slides"`
}

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	d := s.pipeline.Current()
	if d == nil {
		jsonError(w, "no deck has been built yet", http.StatusServiceUnavailable)
		return
	}

	resp := deckResponse{
		Title:      d.Title,
		FirstSlide: d.First,
		Total:      len(d.Slides),
		Slides:     make([]slideInfo, 0, len(d.Slides)),
	}
	for i, sl := range d.Slides {
		h := sl.Head()
		resp.Slides = append(resp.Slides, slideInfo{
			Index:    i,
			Template: string(sl.Template()),
			Title:    h.Title,
			Subtitle: h.Subtitle,
			Label:    deck.Label(sl),
			Filename: h.Filename,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBuilds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"builds": s.pipeline.Builds()})
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "buildID")
	for _, b := range s.pipeline.Builds() {
		if b.ID == id {
			writeJSON(w, http.StatusOK, b)
			return
		}
	}
	jsonError(w, "build not found", http.StatusNotFound)
}

func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	snap, err := s.pipeline.Build(r.Context(), "api", true)
	if err != nil {
		code := http.StatusInternalServerError
		var se *deck.StructureError
		var ae *deck.AssemblyError
		if errors.As(err, &se) || errors.As(err, &ae) {
			code = http.StatusUnprocessableEntity
		}
		writeJSON(w, code, map[string]any{"error": err.Error(), "build": snap})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
