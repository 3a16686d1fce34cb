package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gecf-kip/insight/internal/config"
	"github.com/gecf-kip/insight/internal/core"
	"github.com/gecf-kip/insight/internal/core/insight_engine"
	"github.com/gecf-kip/insight/internal/models"
)

type ProcessHandler struct {
	pipeline *insight_engine.Pipeline
	cfg      *config.Config
}

func NewProcessHandler(pipeline *insight_engine.Pipeline, cfg *config.Config) *ProcessHandler {
	return &ProcessHandler{pipeline: pipeline, cfg: cfg}
}

// Process handles the multipart upload, runs the pipeline, and returns the
// combined SummaryResult as JSON.
func (h *ProcessHandler) Process(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		http.Error(w, "please upload at least one file", http.StatusBadRequest)
		return
	}

	var docs []*models.Document
	for _, header := range r.MultipartForm.File["files"] {
		file, err := header.Open()
		if err != nil {
			http.Error(w, fmt.Sprintf("cannot open upload %q: %v", header.Filename, err), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			http.Error(w, fmt.Sprintf("cannot read upload %q: %v", header.Filename, err), http.StatusBadRequest)
			return
		}

		docs = append(docs, &models.Document{
			ID:       uuid.NewString(),
			FileName: filepath.Base(header.Filename),
			Data:     data,
		})
	}

	result, err := h.pipeline.Process(r.Context(), docs)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// writePipelineError maps the pipeline error taxonomy onto HTTP status codes.
func writePipelineError(w http.ResponseWriter, err error) {
	var (
		decErr *core.DecodeError
		sumErr *core.SummarizationError
	)
	switch {
	case errors.As(err, &decErr):
		writeJSONError(w, http.StatusBadRequest, "decode_error", decErr.Error())
	case errors.As(err, &sumErr):
		status := http.StatusBadGateway
		if sumErr.Kind == core.SummarizationTimeout {
			status = http.StatusGatewayTimeout
		}
		writeJSONError(w, status, string(sumErr.Kind), sumErr.Error())
	default:
		log.Printf("process: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

func writeJSONError(w http.ResponseWriter, status int, kind, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg, "kind": kind})
}
