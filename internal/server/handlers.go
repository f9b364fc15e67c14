package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/career-insights/internal/analysis"
	"github.com/jonathan/career-insights/internal/render"
	"github.com/jonathan/career-insights/internal/resume"
)

// unparseableMessage is shown in place of the rendered resume when the
// model's markdown cannot be parsed into a document.
const unparseableMessage = "Could not parse the generated resume. The raw markdown is still available below."

// AnalyzeRequest represents the request body for /api/analyze
type AnalyzeRequest struct {
	Profile string `json:"profile"`
}

// AnalyzeResponse represents the response for /api/analyze
type AnalyzeResponse struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// ResumeRequest represents the request body for /api/resume
type ResumeRequest struct {
	Analysis string `json:"analysis"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ResumeResponse represents the response for /api/resume. When the model
// output cannot be parsed, Parseable is false and Message carries the
// static fallback text; Markdown is always present for clipboard export.
type ResumeResponse struct {
	Markdown  string `json:"markdown"`
	HTML      string `json:"html,omitempty"`
	Parseable bool   `json:"parseable"`
	Message   string `json:"message,omitempty"`
}

// PrintRequest represents the request body for the print and pdf endpoints
type PrintRequest struct {
	Markdown string `json:"markdown"`
}

// handleAnalyze runs the profile-analysis call and renders the summary.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Profile == "" {
		s.errorResponse(w, http.StatusBadRequest, "profile is required")
		return
	}

	markdown, err := analysis.AnalyzeProfile(r.Context(), s.client, req.Profile)
	if err != nil {
		log.Printf("Analyze failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "No response from the model. Please try again.")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Markdown: markdown,
		HTML:     render.Summary(markdown),
	})
}

// handleResume runs the resume-generation call, then parses and renders the
// result. A document the parser rejects is not an error: the markdown is
// returned with the static fallback message.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	var req ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Analysis == "" {
		s.errorResponse(w, http.StatusBadRequest, "analysis is required")
		return
	}

	info := analysis.PersonalInfo{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Website: req.Website,
	}
	if err := info.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid personal info: "+err.Error())
		return
	}

	markdown, err := analysis.GenerateResume(r.Context(), s.client, req.Analysis, info)
	if err != nil {
		log.Printf("Resume generation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "No response from the model. Please try again.")
		return
	}

	doc, err := resume.Parse(markdown)
	if err != nil {
		if errors.Is(err, resume.ErrUnparseable) {
			s.jsonResponse(w, http.StatusOK, ResumeResponse{
				Markdown: markdown,
				Message:  unparseableMessage,
			})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume: "+err.Error())
		return
	}

	html, err := render.Resume(doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ResumeResponse{
		Markdown:  markdown,
		HTML:      html,
		Parseable: true,
	})
}

// handlePrintView returns the standalone print page for raw resume markdown.
func (s *Server) handlePrintView(w http.ResponseWriter, r *http.Request) {
	var req PrintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Markdown == "" {
		s.errorResponse(w, http.StatusBadRequest, "markdown is required")
		return
	}

	page, err := render.PrintHTML(req.Markdown)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build print view: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		log.Printf("Error writing print view: %v", err)
	}
}

// handlePDF renders the print view to PDF with a headless browser.
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	var req PrintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Markdown == "" {
		s.errorResponse(w, http.StatusBadRequest, "markdown is required")
		return
	}

	pdf, err := render.PrintPDF(r.Context(), req.Markdown)
	if err != nil {
		log.Printf("PDF export failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "PDF export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF: %v", err)
	}
}
