// Package renderer renders hw01 reports as plain text blocks or markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/etnz/hw01"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.txt
var templates embed.FS

// Options holds configuration for rendering a report.
type Options struct {
	Currency string // ISO code used to display prices, defaults to USD.
}

func (o Options) currency() string {
	if o.Currency == "" {
		return money.USD
	}
	return strings.ToUpper(o.Currency)
}

// Money formats a price in a currency, or hw01.NotAvailable.
func Money(n hw01.Number, currency string) string {
	if n.IsNA() {
		return hw01.NotAvailable
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := decimal.NewFromFloat(n.Float()).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// summaryPlaces is the number of decimals of a weather summary statistic:
// 4 for min temperatures, 2 otherwise.
func summaryPlaces(key string) int {
	if strings.Contains(key, "min") {
		return 4
	}
	return 2
}

// funcs returns the functions available to text templates.
func funcs(opts Options) template.FuncMap {
	return template.FuncMap{
		"fixed":  func(n hw01.Number, places int) string { return n.Fixed(places) },
		"pad":    func(s string, width int) string { return fmt.Sprintf("%-*s", width, s) },
		"money":  func(n hw01.Number) string { return Money(n, opts.currency()) },
		"places": summaryPlaces,
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
//
// Partials lose their final newline so that they can be used inline.
func renderTemplate(templateName, mainFile string, partials map[string]string, opts Options, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs(opts)).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(strings.TrimSuffix(string(content), "\n")); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// commonPartials are available to every text template.
func commonPartials() map[string]string {
	return map[string]string{
		"header":  "header.txt",
		"metrics": "metrics.txt",
	}
}

// entry is a named value, for ordered display of maps.
type entry struct {
	Key   string
	Value hw01.Number
}
