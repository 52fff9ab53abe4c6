// Package renderer renders currency listings and conversions as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// templates holds the markdown templates. A template whose name extends
// another one with an underscore ("currencies_table" for "currencies") is a
// partial of it.
//
//go:embed *.md
var templates embed.FS

// RenderCurrencies renders a currency listing to a markdown string.
func RenderCurrencies(l *CurrencyList) string {
	partials := map[string]string{
		"currencies_title": "currencies_title.md",
		"currencies_table": "currencies_table.md",
	}
	return renderTemplate("currencies", "currencies.md", partials, l)
}

// RenderConversion renders a conversion to a markdown string.
func RenderConversion(c *Conversion) string {
	partials := map[string]string{
		"conversion_rate":   "conversion_rate.md",
		"conversion_result": "conversion_result.md",
	}
	return renderTemplate("conversion", "conversion.md", partials, c)
}

// renderTemplate renders a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
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
