// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/navikit/coordpad/internal/coord"
)

// ConvertRequest is the body of POST /api/convert.
type ConvertRequest struct {
	Text string `json:"text"`
}

// Rendering is one notation's view of the resolved coordinate.
type Rendering struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// RenderedLink is a ready-to-open external map URL.
type RenderedLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ConvertResponse carries the detection result: the matched format, the
// canonical coordinate, every rendering in registry order, and map links.
type ConvertResponse struct {
	Format     string           `json:"format"`
	Coordinate coord.Coordinate `json:"coordinate"`
	Renderings []Rendering      `json:"renderings"`
	MapLinks   []RenderedLink   `json:"map_links,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleFormats serves the notation names in registry order.
func (s *ServerContext) HandleFormats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Registry.Names())
}

// HandleConvert auto-detects the notation of the posted text and responds
// with the coordinate rendered in every registered notation.
func (s *ServerContext) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "empty input")
		return
	}

	name, c, err := s.Registry.Detect(req.Text)
	if err != nil {
		if errors.Is(err, coord.ErrUnrecognized) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := ConvertResponse{
		Format:     name,
		Coordinate: c,
		Renderings: make([]Rendering, 0, s.Registry.Len()),
	}
	names := s.Registry.Names()
	for i, text := range s.Registry.FormatAll(c) {
		resp.Renderings = append(resp.Renderings, Rendering{
			Name: names[i],
			Text: text,
		})
	}
	for _, link := range s.Config.MapLinks {
		resp.MapLinks = append(resp.MapLinks, RenderedLink{
			Name: link.Name,
			URL:  link.Render(c.Longitude, c.Latitude),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
