package render

import (
	"embed"
	"html/template"
	"strings"

	"github.com/jonathan/career-insights/internal/resume"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var pageTemplates = template.Must(template.New("render").ParseFS(templateFiles, "templates/*.tmpl"))

// resumePage is the data passed to the resume template.
type resumePage struct {
	Name          string
	ContactFields []string
	Sections      []sectionView
}

// sectionView flattens a parsed section for the template. Exactly one of
// Jobs, Skills, or Lines is populated, matching the section kind.
type sectionView struct {
	Title  string
	Jobs   []resume.Job
	Skills []resume.SkillLine
	Lines  []string
}

// Resume renders a parsed resume document as an HTML fragment.
func Resume(doc *resume.Document) (string, error) {
	page := resumePage{
		Name:          doc.Header.Name,
		ContactFields: doc.Header.ContactFields,
	}
	for _, section := range doc.Sections {
		view := sectionView{Title: section.Title}
		switch section.Kind {
		case resume.SectionExperience:
			view.Jobs = section.Jobs
		case resume.SectionSkills:
			view.Skills = section.Skills
		default:
			if section.Text != "" {
				view.Lines = strings.Split(section.Text, "\n")
			}
		}
		page.Sections = append(page.Sections, view)
	}

	var b strings.Builder
	if err := pageTemplates.ExecuteTemplate(&b, "resume.tmpl", page); err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return b.String(), nil
}
