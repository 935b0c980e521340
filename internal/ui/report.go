package ui

import "strings"

// Report is the end-of-install summary: what was created and what to do
// next with the detected package manager.
type Report struct {
	Name      string
	Tier      string
	Apps      []string
	Warnings  []string
	NextSteps []string
}

// Render returns the report as a bordered panel.
func (r Report) Render(styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.Header.Render("Project ready: " + r.Name))
	b.WriteString("\n\n")

	b.WriteString(styles.Label.Render("Tier:"))
	b.WriteString(" " + r.Tier + "\n")

	b.WriteString(styles.Label.Render("Apps:"))
	if len(r.Apps) == 0 {
		b.WriteString(" (none)\n")
	} else {
		b.WriteString(" " + strings.Join(r.Apps, ", ") + "\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Warning.Render("Warnings:"))
		b.WriteString("\n")
		for _, w := range r.Warnings {
			b.WriteString("  - " + w + "\n")
		}
	}

	if len(r.NextSteps) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Label.Render("Next steps:"))
		b.WriteString("\n")
		for _, s := range r.NextSteps {
			b.WriteString("  " + styles.Success.Render(s) + "\n")
		}
	}

	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}
