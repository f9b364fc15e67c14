package render

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// The print view is not a parse: it is an ordered sequence of single-pass
// textual substitutions over the escaped raw markdown, approximating HTML
// for a print dialog. Later substitutions act on the output of earlier
// ones, and the result is not required to round-trip.
var (
	printH1      = regexp.MustCompile(`(?m)^# (.+)$`)
	printContact = regexp.MustCompile(`(?m)^([^*<\n]+ \| [^*<\n]+)$`)
	printH2      = regexp.MustCompile(`(?m)^## (.+)$`)
	printJob     = regexp.MustCompile(`(?m)^\*\*(.+?)\*\* \| (.+)\n\*(.+?)\*$`)
	printSkill   = regexp.MustCompile(`(?m)^\* \*\*(.+?):\*\* (.+)$`)
	printBullet  = regexp.MustCompile(`(?m)^\* (.+)$`)
)

// PrintHTML converts raw resume markdown into a standalone HTML page with
// the fixed print stylesheet.
func PrintHTML(markdownText string) (string, error) {
	body := printBody(markdownText)

	var b strings.Builder
	err := pageTemplates.ExecuteTemplate(&b, "print.tmpl", struct{ Body template.HTML }{Body: template.HTML(body)})
	if err != nil {
		return "", &TemplateError{Message: "failed to execute print template", Cause: err}
	}
	return b.String(), nil
}

// printBody applies the substitution pipeline. Order matters: the name line
// and contact line go first (each applied once), then section headings, job
// headers, skills rows, and finally any remaining bullet lines.
func printBody(markdownText string) string {
	text := html.EscapeString(strings.TrimSpace(markdownText))

	text = replaceFirst(printH1, text, "<h1>$1</h1>")
	text = replaceFirst(printContact, text, `<p class="contact">$1</p>`)
	text = printH2.ReplaceAllString(text, "<h2>$1</h2>")
	text = printJob.ReplaceAllString(text,
		`<div class="job-meta"><span class="job-title">$1</span><span class="job-company">$2</span><span class="job-dates">$3</span></div>`+"\n<ul>")
	text = printSkill.ReplaceAllString(text,
		`<div class="skill-row"><span class="skill-category">$1</span><span class="skill-items">$2</span></div>`)
	text = printBullet.ReplaceAllString(text, "<li>$1</li>")

	return text
}

// replaceFirst substitutes only the first match of re in text.
func replaceFirst(re *regexp.Regexp, text, replacement string) string {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	expanded := re.ExpandString(nil, replacement, text, loc)
	return text[:loc[0]] + string(expanded) + text[loc[1]:]
}
