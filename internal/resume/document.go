// Package resume parses model-generated resume markdown into a structured
// document: a header (name plus contact fields) followed by titled sections
// whose body shape depends on the recognized section kind.
package resume

// SectionKind identifies the title-driven body shape of a section.
type SectionKind int

// Recognized section kinds. Unrecognized titles map to SectionGeneric.
const (
	SectionGeneric SectionKind = iota
	SectionExperience
	SectionSkills
)

// Document is a parsed resume: one header plus an ordered list of sections.
type Document struct {
	Header   Header
	Sections []Section
}

// Header holds the candidate name and the pipe-separated contact fields.
type Header struct {
	Name          string
	ContactFields []string
}

// Section is a titled unit of the resume. Exactly one of Jobs, Skills, or
// Text is populated, selected by Kind.
type Section struct {
	Title  string
	Kind   SectionKind
	Jobs   []Job       // Kind == SectionExperience
	Skills []SkillLine // Kind == SectionSkills
	Text   string      // Kind == SectionGeneric
}

// Job is a structured work-experience entry.
type Job struct {
	Title     string
	Company   string
	DateRange string
	Bullets   []string
}

// SkillLine is one line of the skills section. Category is empty when the
// line carried no bolded category prefix.
type SkillLine struct {
	Category string
	Items    string
}

// kindForTitle maps a section title to its body shape.
func kindForTitle(title string) SectionKind {
	switch title {
	case "Work Experience":
		return SectionExperience
	case "Skills":
		return SectionSkills
	default:
		return SectionGeneric
	}
}
