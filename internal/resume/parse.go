package resume

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnparseable signals that the input cannot be a resume document: fewer
// than two non-blank lines remain after trimming. It is the only failure
// mode of Parse; malformed lines inside an otherwise-parseable document are
// silently dropped so minor deviations in model output degrade gracefully
// instead of breaking the view.
var ErrUnparseable = errors.New("resume text is unparseable")

var (
	contactSep  = regexp.MustCompile(`\s*\|\s*`)
	jobHeader   = regexp.MustCompile(`^\*\*(.+?)\*\*\s*\|\s*(.+)$`)
	jobDate     = regexp.MustCompile(`^\*([^*].*?)\*$`)
	jobBullet   = regexp.MustCompile(`^\*\s+(.+)$`)
	skillBullet = regexp.MustCompile(`^\*\s+\*\*(.+?):\*\*\s*(.+)$`)
)

// Parse converts resume markdown into a Document. The first non-blank line
// becomes the header name (leading "# " stripped), the second the contact
// line. A "## " line opens a section; lines before the first section marker
// are discarded. Section bodies are post-processed by recognized kind.
func Parse(text string) (*Document, error) {
	lines := nonBlankLines(text)
	if len(lines) < 2 {
		return nil, ErrUnparseable
	}

	doc := &Document{
		Header: Header{
			Name:          strings.TrimPrefix(lines[0], "# "),
			ContactFields: contactSep.Split(lines[1], -1),
		},
	}

	type rawSection struct {
		title string
		lines []string
	}
	var raw []rawSection
	for _, line := range lines[2:] {
		if title, ok := strings.CutPrefix(line, "## "); ok {
			raw = append(raw, rawSection{title: title})
			continue
		}
		if len(raw) == 0 {
			continue
		}
		raw[len(raw)-1].lines = append(raw[len(raw)-1].lines, line)
	}

	for _, rs := range raw {
		section := Section{Title: rs.title, Kind: kindForTitle(rs.title)}
		switch section.Kind {
		case SectionExperience:
			section.Jobs = parseJobs(rs.lines)
		case SectionSkills:
			section.Skills = parseSkills(rs.lines)
		default:
			section.Text = strings.Join(rs.lines, "\n")
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc, nil
}

// nonBlankLines trims every line and drops the ones that become empty.
func nonBlankLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseJobs walks work-experience lines accumulating job records. A
// "**Title** | Company" line starts a new job; "*Date*" and "* bullet"
// lines attach to the active job; anything else is dropped.
func parseJobs(lines []string) []Job {
	var jobs []Job
	var current *Job

	for _, line := range lines {
		if m := jobHeader.FindStringSubmatch(line); m != nil {
			if current != nil {
				jobs = append(jobs, *current)
			}
			current = &Job{Title: m[1], Company: m[2]}
			continue
		}
		if current == nil {
			continue
		}
		if m := jobDate.FindStringSubmatch(line); m != nil {
			current.DateRange = m[1]
			continue
		}
		if m := jobBullet.FindStringSubmatch(line); m != nil {
			current.Bullets = append(current.Bullets, m[1])
		}
	}
	if current != nil {
		jobs = append(jobs, *current)
	}

	return jobs
}

// parseSkills maps each skills line independently: a bolded
// "* **Category:** items" line keeps its category, any other line is taken
// verbatim with a leading bullet marker stripped.
func parseSkills(lines []string) []SkillLine {
	skills := make([]SkillLine, 0, len(lines))
	for _, line := range lines {
		if m := skillBullet.FindStringSubmatch(line); m != nil {
			skills = append(skills, SkillLine{Category: m[1], Items: m[2]})
			continue
		}
		skills = append(skills, SkillLine{Items: strings.TrimPrefix(line, "* ")})
	}
	return skills
}
