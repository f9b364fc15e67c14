// Package analysis drives the two model call sites: profile analysis and
// resume generation from a prior analysis.
package analysis

import "github.com/go-playground/validator/v10"

// Placeholders substituted for absent personal-info fields in the resume
// prompt, so the generated document always carries a complete contact line
// the user can fill in later.
const (
	PlaceholderName    = "[Your Name]"
	PlaceholderEmail   = "[your.email@example.com]"
	PlaceholderPhone   = "[Your Phone]"
	PlaceholderWebsite = "[yourwebsite.com]"
)

// PersonalInfo holds the optional candidate details merged into the resume
// prompt. Every field may be left empty.
type PersonalInfo struct {
	Name    string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,min=3"`
	Website string `json:"website,omitempty" validate:"omitempty,min=3"`
}

// Validate validates the PersonalInfo using the validator.
func (p *PersonalInfo) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// withPlaceholders returns a copy with every absent field replaced by its
// fixed placeholder.
func (p PersonalInfo) withPlaceholders() PersonalInfo {
	if p.Name == "" {
		p.Name = PlaceholderName
	}
	if p.Email == "" {
		p.Email = PlaceholderEmail
	}
	if p.Phone == "" {
		p.Phone = PlaceholderPhone
	}
	if p.Website == "" {
		p.Website = PlaceholderWebsite
	}
	return p
}
