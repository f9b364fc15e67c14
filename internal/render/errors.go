package render

import "fmt"

// TemplateError represents a failure executing an embedded template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// PDFError represents a failure rendering the print view to PDF.
type PDFError struct {
	Message string
	Cause   error
}

func (e *PDFError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf export failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf export failed: %s", e.Message)
}

func (e *PDFError) Unwrap() error {
	return e.Cause
}
