package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dgallion1/docsplit/internal/slugger"
	"github.com/dgallion1/docsplit/internal/splitter"
	"github.com/dgallion1/docsplit/internal/toc"
)

type splitRequest struct {
	Text  string `json:"text"`
	Level int    `json:"level,omitempty"` // defaults to the configured max level
	Toc   bool   `json:"toc,omitempty"`
}

type chapterResponse struct {
	Title   string   `json:"title,omitempty"`
	Parents []string `json:"parents"`
	Lines   []string `json:"lines"`
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSplitRequest(w, r)
	if !ok {
		return
	}

	chapters := splitter.Split(req.Text, req.Level)

	out := make([]chapterResponse, 0, len(chapters))
	for _, c := range chapters {
		parents := c.Parents
		if parents == nil {
			parents = []string{}
		}
		lines := c.Lines
		if lines == nil {
			lines = []string{}
		}
		out = append(out, chapterResponse{
			Title:   c.Title(),
			Parents: parents,
			Lines:   lines,
		})
	}

	resp := map[string]any{"chapters": out}
	if req.Toc {
		resp["toc"] = toc.Build(chapters, slugger.Anchor)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleToc(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSplitRequest(w, r)
	if !ok {
		return
	}

	chapters := splitter.Split(req.Text, req.Level)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"toc": toc.Build(chapters, slugger.Anchor),
	})
}

func (s *Server) decodeSplitRequest(w http.ResponseWriter, r *http.Request) (splitRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return splitRequest{}, false
	}
	if req.Level == 0 {
		req.Level = s.cfg.MaxLevel
	}
	if req.Level < 1 || req.Level > splitter.MaxHeadingLevel {
		jsonError(w, fmt.Sprintf("level must be between 1 and %d", splitter.MaxHeadingLevel), http.StatusBadRequest)
		return splitRequest{}, false
	}
	return req, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
