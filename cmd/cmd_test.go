package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/hw01"
	"github.com/etnz/hw01/renderer"
	"github.com/google/subcommands"
)

const (
	nvda      = "../testdata/nvda_2023_sample.csv"
	amd       = "../testdata/amd_2023_sample.csv"
	weather   = "../testdata/weather_small.csv"
	noDate    = "../testdata/no_date.csv"
	semicolon = "../testdata/weather_rdu.csv"
)

// run executes a command with args as if parsed by the commander, and
// returns its standard output.
func run(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() { stdout = os.Stdout })

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("%s: failed to parse %v: %v", c.Name(), args, err)
	}
	status := c.Execute(context.Background(), fs)
	return buf.String(), status
}

// decodeJSON decodes a single line JSON output.
func decodeJSON(t *testing.T, out string) any {
	t.Helper()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("output %q must be a single line", out)
	}
	var obj any
	if err := json.Unmarshal([]byte(out), &obj); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	return obj
}

func TestStocksJSON(t *testing.T) {
	out, status := run(t, &stocksCmd{}, "-input", nvda, "-ticker", "NVDA", "-json")
	if status != subcommands.ExitSuccess {
		t.Fatalf("stocks -json status = %v", status)
	}
	obj := decodeJSON(t, out)
	if got, _ := jsonpath.Get("$.ticker", obj); got != "NVDA" {
		t.Errorf("$.ticker = %v want NVDA", got)
	}
	if _, err := jsonpath.Get("$.metrics.avg_daily_return", obj); err != nil {
		t.Errorf("$.metrics.avg_daily_return: %v", err)
	}
}

func TestStocksText(t *testing.T) {
	out, status := run(t, &stocksCmd{}, "-input", nvda, "-ticker", "NVDA")
	if status != subcommands.ExitSuccess {
		t.Fatalf("stocks status = %v", status)
	}
	table, err := hw01.ReadStockCSV(nvda, hw01.ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	report, err := hw01.NewStockReport(table, hw01.StockOptions{Ticker: "NVDA", RiskFree: hw01.DefaultRiskFree})
	if err != nil {
		t.Fatal(err)
	}
	if want := renderer.StockText(report, renderer.Options{}); out != want {
		t.Errorf("stocks output = %q want %q", out, want)
	}
}

func TestWeatherJSON(t *testing.T) {
	out, status := run(t, &weatherCmd{}, "-input", weather, "-start", "2022-01-10", "-end", "2022-01-20", "-json")
	if status != subcommands.ExitSuccess {
		t.Fatalf("weather -json status = %v", status)
	}
	obj := decodeJSON(t, out)
	if got, _ := jsonpath.Get("$.has_celsius", obj); got != true {
		t.Errorf("$.has_celsius = %v want true", got)
	}
	for _, path := range []string{"$.summary", "$.sliced_means"} {
		if got, err := jsonpath.Get(path, obj); err != nil || got == nil {
			t.Errorf("%s = %v, %v want a value", path, got, err)
		}
	}
}

func TestSelect(t *testing.T) {
	testCases := []struct {
		cmd  subcommands.Command
		args []string
		want string
	}{
		{&stocksCmd{}, []string{"-input", nvda, "-select", "$.ticker"}, "UNKNOWN\n"},
		{&stocksCmd{}, []string{"-input", nvda, "-select", "$.n_rows"}, "6\n"},
		{&weatherCmd{}, []string{"-input", weather, "-select", "$.has_celsius"}, "true\n"},
		{&weatherCmd{}, []string{"-input", weather, "-start", "", "-end", "", "-select", "$.sliced_means"}, "null\n"},
		{&compareCmd{}, []string{"-select", "$.best", "NVDA=" + nvda, "AMD=" + amd}, "NVDA\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.cmd.Name()+" "+strings.Join(tc.args, " "), func(t *testing.T) {
			got, status := run(t, tc.cmd, tc.args...)
			if status != subcommands.ExitSuccess {
				t.Fatalf("status = %v", status)
			}
			if got != tc.want {
				t.Errorf("output = %q want %q", got, tc.want)
			}
		})
	}
}

func TestFilesOutput(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		cmd  subcommands.Command
		args []string
		file string
	}{
		{&stocksCmd{}, []string{"-input", nvda, "-plot-kind", PriceMA, "-windows", "2,3"}, "price_ma.png"},
		{&stocksCmd{}, []string{"-input", nvda, "-plot-kind", ReturnsHist, "-bins", "5"}, "returns_hist.png"},
		{&weatherCmd{}, []string{"-input", weather}, "weather.png"},
		{&compareCmd{}, []string{"NVDA=" + nvda, "AMD=" + amd}, "growth.png"},
	}
	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			args := append([]string{"-plot-out", path}, tc.args...)
			if _, status := run(t, tc.cmd, args...); status != subcommands.ExitSuccess {
				t.Fatalf("status = %v", status)
			}
			if info, err := os.Stat(path); err != nil || info.Size() == 0 {
				t.Errorf("%s = %v, %v want a non empty file", tc.file, info, err)
			}
		})
	}

	path := filepath.Join(dir, "weather.xlsx")
	if _, status := run(t, &weatherCmd{}, "-input", weather, "-xlsx", path); status != subcommands.ExitSuccess {
		t.Fatalf("weather -xlsx status = %v", status)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("weather.xlsx = %v, %v want a non empty file", info, err)
	}
}

func TestExitStatus(t *testing.T) {
	testCases := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want subcommands.ExitStatus
	}{
		{"missing input", &stocksCmd{}, nil, subcommands.ExitUsageError},
		{"missing file", &stocksCmd{}, []string{"-input", "does_not_exist.csv"}, subcommands.ExitFailure},
		{"missing date column", &stocksCmd{}, []string{"-input", noDate}, subcommands.ExitFailure},
		{"missing price column", &stocksCmd{}, []string{"-input", nvda, "-price-col", "Adjusted"}, subcommands.ExitFailure},
		{"bad windows", &stocksCmd{}, []string{"-input", nvda, "-windows", "20,x"}, subcommands.ExitUsageError},
		{"negative window", &stocksCmd{}, []string{"-input", nvda, "-windows", "-3"}, subcommands.ExitUsageError},
		{"bad plot kind", &stocksCmd{}, []string{"-input", nvda, "-plot-kind", "pie"}, subcommands.ExitUsageError},
		{"json and md", &stocksCmd{}, []string{"-input", nvda, "-json", "-md"}, subcommands.ExitUsageError},
		{"bad select", &stocksCmd{}, []string{"-input", nvda, "-select", "$.nope"}, subcommands.ExitUsageError},
		{"bad date bound", &weatherCmd{}, []string{"-input", weather, "-start", "yesterday"}, subcommands.ExitUsageError},
		{"weather missing date column", &weatherCmd{}, []string{"-input", noDate}, subcommands.ExitFailure},
		{"weather of stocks", &weatherCmd{}, []string{"-input", nvda}, subcommands.ExitFailure},
		{"compare without source", &compareCmd{}, nil, subcommands.ExitUsageError},
		{"compare bad source", &compareCmd{}, []string{nvda}, subcommands.ExitUsageError},
		{"compare missing column", &compareCmd{}, []string{"-price-col", "Adjusted", "NVDA=" + nvda}, subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, got := run(t, tc.cmd, tc.args...); got != tc.want {
				t.Errorf("status = %v want %v", got, tc.want)
			}
		})
	}
}

func TestMarkdownOutput(t *testing.T) {
	out, status := run(t, &compareCmd{}, "-md", "NVDA="+nvda, "AMD="+amd)
	if status != subcommands.ExitSuccess {
		t.Fatalf("compare -md status = %v", status)
	}
	// not a terminal, the markdown is printed as is.
	if !strings.HasPrefix(out, "# Stock Comparison on Close") {
		t.Errorf("compare -md = %q, want raw markdown", out)
	}
}

func TestDelimiter(t *testing.T) {
	defer func(d string) { *delimiter = d }(*delimiter)

	*delimiter = ";"
	out, status := run(t, &weatherCmd{}, "-input", semicolon, "-start", "", "-end", "", "-select", "$.n_rows")
	if status != subcommands.ExitSuccess || out != "2\n" {
		t.Errorf("weather with ; = %q, %v want 2", out, status)
	}

	testCases := []struct {
		delimiter string
		want      rune
		wantErr   bool
	}{
		{",", ',', false},
		{`\t`, '\t', false},
		{"|", '|', false},
		{";;", 0, true},
		{"", 0, true},
	}
	for _, tc := range testCases {
		*delimiter = tc.delimiter
		got, err := comma()
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("comma(%q) = %q, %v want %q", tc.delimiter, got, err, tc.want)
		}
	}
}

func TestStocksHeaderOnly(t *testing.T) {
	input := filepath.Join(t.TempDir(), "header.csv")
	if err := os.WriteFile(input, []byte("Date,Adj Close\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, status := run(t, &stocksCmd{}, "-input", input, "-json")
	if status != subcommands.ExitSuccess {
		t.Fatalf("stocks -json (header only) status = %v", status)
	}
	obj := decodeJSON(t, out)
	if got, _ := jsonpath.Get("$.n_rows", obj); got != 0.0 {
		t.Errorf("$.n_rows = %v want 0", got)
	}
	if got, _ := jsonpath.Get("$.metrics.cumulative_return", obj); got != nil {
		t.Errorf("$.metrics.cumulative_return = %v want null", got)
	}
}

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.md"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	stdout = f
	t.Cleanup(func() { stdout = os.Stdout })
	if isTerminal() {
		t.Errorf("isTerminal() = true for a regular file")
	}
	stdout = &bytes.Buffer{}
	if isTerminal() {
		t.Errorf("isTerminal() = true for a buffer")
	}
}

func TestPreviewPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	got := previewPath("weather.png")
	if want := filepath.Join(dir, "hw01-weather.png"); got != want {
		t.Errorf("previewPath() = %q want %q", got, want)
	}
	if got != previewPath("weather.png") {
		t.Errorf("previewPath() must be stable across runs")
	}
}
