package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/JonMunkholm/idataframe/internal/config"
	"github.com/JonMunkholm/idataframe/internal/core"
)

func TestMain(m *testing.M) {
	loaded, err := config.LoadFrom(func(string) (string, bool) { return "", false })
	if err != nil {
		panic(err)
	}
	loaded.Parse.Verbose = false
	cfg = loaded
	os.Exit(m.Run())
}

// resetFlags restores every flag of cmd to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
}

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		resetFlags(c)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseMapping(t *testing.T) {
	tests := []struct {
		in      string
		want    columnMapping
		wantErr bool
	}{
		{"Email=email", columnMapping{"Email", "email"}, false},
		{" Street = address ", columnMapping{"Street", "address"}, false},
		{"a=b=count", columnMapping{"a=b", "count"}, false},
		{"Email", columnMapping{}, true},
		{"=email", columnMapping{}, true},
		{"Email=", columnMapping{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMapping(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMapping(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseMapping(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	path := writeFile(t, "people.csv", "Email,Visits\nAna@Example.COM,3\nnot-an-email,x\n")

	out, err := run(t, "parse", "-f", path, "-c", "Email=email", "-c", "Visits=count", "-o", "csv", "--diagnostics")
	if err != nil {
		t.Fatalf("parse error = %v\n%s", err, out)
	}

	for _, want := range []string{
		"ana@example.com,3",
		"index 1 :: match username@domain :: value can't be parsed: not-an-email",
		"index 1 :: match count :: value can't be parsed: x",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseCommand_MessageCap(t *testing.T) {
	path := writeFile(t, "ranks.csv", "Rank\na\nb\nc\n")

	out, err := run(t, "parse", "-f", path, "-c", "Rank=rank", "--max-messages", "1", "--diagnostics", "-q", "-o", "markdown")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if !strings.Contains(out, "reached maximum number of messages, parsing aborted") {
		t.Errorf("expected message cap diagnostic:\n%s", out)
	}
	if strings.Contains(out, "index 1 ::") {
		t.Errorf("row 1 should not be reported:\n%s", out)
	}
}

func TestParseCommand_Errors(t *testing.T) {
	path := writeFile(t, "people.csv", "Email\na@b.com\n")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"no mapping", []string{"parse", "-f", path}, "COL004"},
		{"bad mapping", []string{"parse", "-f", path, "-c", "Email"}, "COL004"},
		{"unknown type", []string{"parse", "-f", path, "-c", "Email=phone"}, "TYP001"},
		{"unknown column", []string{"parse", "-f", path, "-c", "Mail=email"}, "COL002"},
		{"duplicate column", []string{"parse", "-f", path, "-c", "Email=email", "-c", "Email=text"}, "COL003"},
		{"missing file", []string{"parse", "-f", filepath.Join(t.TempDir(), "x.csv"), "-c", "Email=email"}, "SRC004"},
		{"bad output", []string{"parse", "-f", path, "-c", "Email=email", "-o", "xml"}, "CFG002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := core.MapError(err).Code; got != tt.code {
				t.Errorf("MapError code = %s, want %s (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestClassifyCommand(t *testing.T) {
	out, err := run(t, "classify", "count", "12", "3.7", "abc", "-o", "csv")
	if err != nil {
		t.Fatalf("classify error = %v", err)
	}
	for _, want := range []string{"12,12", "3.7,4", "index 2 :: match count :: value can't be parsed: abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	_, err = run(t, "classify", "phone", "555")
	if !errors.Is(err, core.ErrUnknownType) {
		t.Errorf("classify unknown type error = %v", err)
	}
}

func TestTypesCommand(t *testing.T) {
	out, err := run(t, "types", "--scale", "ordinal", "-o", "markdown")
	if err != nil {
		t.Fatalf("types error = %v", err)
	}
	if !strings.Contains(out, "rank") {
		t.Errorf("expected rank in ordinal types:\n%s", out)
	}
	if strings.Contains(out, "| email") {
		t.Errorf("email is not ordinal:\n%s", out)
	}

	if _, err := run(t, "types", "--scale", "huge"); err == nil {
		t.Error("expected error for unknown scale")
	}
}

func TestMatchesCommand(t *testing.T) {
	out, err := run(t, "matches", "address", "-o", "markdown")
	if err != nil {
		t.Fatalf("matches error = %v", err)
	}
	if !strings.Contains(out, "number direction street, secondary") {
		t.Errorf("expected first address match:\n%s", out)
	}
}

func TestCatalogFlag(t *testing.T) {
	path := writeFile(t, "types.yaml", `
types:
  - name: cli-sku
    fields: [{name: sku}]
    pre_parse: [upper]
    matches:
      - {name: sku, pattern: '^(?P<sku>SKU-${count})$', template: '{sku}'}
`)
	t.Cleanup(func() {
		core.Unregister("cli-sku")
		installedCatalog = ""
	})

	out, err := run(t, "--catalog", path, "classify", "cli-sku", "sku-1", "-o", "csv")
	if err != nil {
		t.Fatalf("classify error = %v", err)
	}
	if !strings.Contains(out, "sku-1,SKU-1") {
		t.Errorf("output missing parsed sku:\n%s", out)
	}

	// A second run with the same catalog does not register twice.
	if _, err := run(t, "--catalog", path, "types"); err != nil {
		t.Errorf("types error = %v", err)
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, fmt.Errorf("%w: phone", core.ErrUnknownType))

	out := buf.String()
	for _, want := range []string{"(Code: TYP001)", "idf types", "unknown type: phone"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
