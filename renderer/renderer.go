// Package renderer turns portfolio state into markdown reports. The cmd
// layer decides how to display them (glamour in a terminal, raw otherwise).
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// PortfolioMarkdown renders the valuation table report to a markdown string.
func PortfolioMarkdown(tbl *Table) string {
	partials := map[string]string{
		"portfolio_summary": "portfolio_summary.md",
		"portfolio_stocks":  "portfolio_stocks.md",
	}
	return renderTemplate("portfolio", "portfolio.md", partials, tbl)
}

// SourcesMarkdown renders the citation list of one stock.
func SourcesMarkdown(d *Detail) string {
	return renderTemplate("detail", "detail.md", nil, d)
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile("templates/" + mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := templates.ReadFile("templates/" + file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
