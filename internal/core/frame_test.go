package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrame(t *testing.T) {
	withRegistry(t, testDefinition("label", Nominal))

	f, err := NewFrame(map[string][]any{
		"blood": {"A+", "O-"},
		"notes": {"x", nil},
		"extra": {"1", "2"},
	}, []string{"blood", "notes", "extra"})
	if err != nil {
		t.Fatalf("NewFrame() error: %v", err)
	}

	if err := f.Register("notes", "label"); err != nil {
		t.Fatalf("Register(notes) error: %v", err)
	}
	if err := f.Register("blood", "label"); err != nil {
		t.Fatalf("Register(blood) error: %v", err)
	}

	if diff := cmp.Diff([]string{"notes", "blood"}, f.Columns()); diff != "" {
		t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
	}

	reports := f.ParseAll(quietOptions())
	if len(reports) != 2 || reports[0].Column != "notes" || reports[1].Column != "blood" {
		t.Fatalf("ParseAll order = %+v", reports)
	}
	if reports[1].Type != "label" {
		t.Errorf("report type = %q", reports[1].Type)
	}

	df := f.DF()
	if diff := cmp.Diff([]string{"notes", "blood"}, df.Names()); diff != "" {
		t.Errorf("DF() names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "O-"}, df.Row(1)); diff != "" {
		t.Errorf("DF() row mismatch (-want +got):\n%s", diff)
	}

	c, ok := f.Get("blood")
	if !ok || !c.IsParsed() {
		t.Error("Get(blood) should return the parsed classifier")
	}
	if diff := cmp.Diff([]string{"blood", "notes", "extra"}, f.SourceColumns()); diff != "" {
		t.Errorf("SourceColumns() mismatch (-want +got):\n%s", diff)
	}
}

func TestFrame_Errors(t *testing.T) {
	withRegistry(t, testDefinition("label", Nominal))

	f, err := NewFrame(map[string][]any{"a": {"x"}, "empty": {}}, nil)
	if err != nil {
		t.Fatalf("NewFrame() error: %v", err)
	}

	tests := []struct {
		name    string
		column  string
		typ     string
		wantErr error
	}{
		{name: "unknown type", column: "a", typ: "currency", wantErr: ErrUnknownType},
		{name: "unknown column", column: "b", typ: "label", wantErr: ErrUnknownColumn},
		{name: "empty column", column: "empty", typ: "label", wantErr: ErrEmptyColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := f.Register(tt.column, tt.typ); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register(%q, %q) error = %v, want %v", tt.column, tt.typ, err, tt.wantErr)
			}
		})
	}

	if err := f.Register("a", "label"); err != nil {
		t.Fatalf("Register(a) error: %v", err)
	}
	if err := f.Register("a", "label"); !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("duplicate Register error = %v, want ErrDuplicateColumn", err)
	}

	if _, err := NewFrame(map[string][]any{"a": {"x"}}, []string{"a", "b"}); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("NewFrame with unknown order entry error = %v", err)
	}
}

func TestFrame_DFBeforeParse(t *testing.T) {
	withRegistry(t, testDefinition("label", Nominal))

	f, _ := NewFrame(map[string][]any{"a": {" x "}}, nil)
	if err := f.Register("a", "label"); err != nil {
		t.Fatal(err)
	}

	df := f.DF()
	if diff := cmp.Diff([]string{"x"}, df.Row(0)); diff != "" {
		t.Errorf("DF() before parse mismatch (-want +got):\n%s", diff)
	}
}
