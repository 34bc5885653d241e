package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jonathan/curriculo-builder/internal/ingestion"
	"github.com/jonathan/curriculo-builder/internal/layouts"
	"github.com/jonathan/curriculo-builder/internal/parsing"
	"github.com/jonathan/curriculo-builder/internal/render"
	"github.com/jonathan/curriculo-builder/internal/schemas"
	"github.com/jonathan/curriculo-builder/internal/types"
)

// RenderRequest represents the request body for /resume/render.
type RenderRequest struct {
	LayoutID string          `json:"layout_id" validate:"required"`
	Format   string          `json:"formato" validate:"required"`
	Resume   json.RawMessage `json:"curriculo" validate:"required"`
}

// handleListTemplates serves the layout catalog for discovery.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, layouts.List())
}

// handleParseResume accepts a multipart upload and returns the extracted
// resume. Partial extractions are a 200: the caller decides whether to prompt
// human review.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Multipart field 'file' is required: "+err.Error())
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	lines, err := ingestion.Read(data, declaredFormat(header.Filename))
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	resume, err := parsing.Extract(lines)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// declaredFormat maps an upload filename extension to a declared format.
// An unrecognized extension leaves the format to content sniffing.
func declaredFormat(filename string) types.Format {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if format, ok := types.ParseFormat(ext); ok {
		return format
	}
	return ""
}

// handleRenderResume validates the submitted resume and streams back the
// rendered document.
func (s *Server) handleRenderResume(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := schemas.ValidateResumeJSON(s.schemaPath, req.Resume); err != nil {
		s.pipelineError(w, err)
		return
	}

	var resume types.Resume
	if err := json.Unmarshal(req.Resume, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume payload: "+err.Error())
		return
	}

	format, ok := types.ParseFormat(req.Format)
	if !ok {
		s.pipelineError(w, &render.UnsupportedFormatError{Format: req.Format})
		return
	}

	layout, err := layouts.Get(req.LayoutID)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	document, err := render.Render(resume, layout, format)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	filename := fmt.Sprintf("curriculo-%s.%s", layout.ID, format)
	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}

// contentType returns the media type for a rendered document.
func contentType(format types.Format) string {
	if format == types.FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}
