package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/hw01/renderer"
	"golang.org/x/term"
)

// outputFlags select the output format of a report.
type outputFlags struct {
	json     bool
	md       bool
	selector string
	currency string // set by commands displaying prices
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "Print the report as a single line JSON object")
	f.BoolVar(&o.md, "md", false, "Print the report as markdown")
	f.StringVar(&o.selector, "select", "", "Print only the value at this JSON path of the report, e.g. $.metrics.sharpe_ratio")
}

func (o *outputFlags) validate() error {
	if o.json && o.md {
		return fmt.Errorf("%w: -json and -md are exclusive", errUsage)
	}
	return nil
}

// report is a result that can be printed in every format.
type report interface {
	json.Marshaler
	Text(renderer.Options) string
	Markdown(renderer.Options) string
}

// print writes r to stdout in the selected format.
func (o *outputFlags) print(r report) error {
	opts := renderer.Options{Currency: o.currency}
	switch {
	case o.selector != "":
		return printSelect(r, o.selector)
	case o.json:
		return printJSON(r)
	case o.md:
		printMarkdown(r.Markdown(opts))
	default:
		fmt.Fprint(stdout, r.Text(opts))
	}
	return nil
}

// printJSON writes v as a single line.
func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	fmt.Fprintf(stdout, "%s\n", b)
	return nil
}

// printSelect writes the value at a JSON path of v. Strings are written
// unquoted, other values as JSON.
func printSelect(v any, path string) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	var obj any
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	selected, err := jsonpath.Get(path, obj)
	if err != nil {
		return fmt.Errorf("%w: -select %q: %v", errUsage, path, err)
	}
	if s, ok := selected.(string); ok {
		fmt.Fprintln(stdout, s)
		return nil
	}
	return printJSON(selected)
}

// isTerminal reports whether stdout is a terminal.
func isTerminal() bool {
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// printMarkdown renders markdown for the terminal, or writes it unchanged
// when stdout is not one.
func printMarkdown(md string) {
	if !isTerminal() {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
