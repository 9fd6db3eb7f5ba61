package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColumn(t *testing.T) {
	tests := []struct {
		name       string
		typ        FieldType
		value      any
		wantString string
		wantErr    bool
	}{
		{name: "integer", typ: FieldInteger, value: int64(42), wantString: "42"},
		{name: "float", typ: FieldFloat, value: 1.25, wantString: "1.25"},
		{name: "text", typ: FieldText, value: "abc", wantString: "abc"},
		{name: "integer rejects float", typ: FieldInteger, value: 1.5, wantErr: true},
		{name: "float rejects string", typ: FieldFloat, value: "1.5", wantErr: true},
		{name: "text rejects int", typ: FieldText, value: int64(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := newColumn("c", tt.typ, 2)

			err := col.check(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("check(%v) = nil, want error", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("check(%v) error: %v", tt.value, err)
			}

			col.set(0, tt.value)
			if !col.Valid(0) || col.Valid(1) {
				t.Errorf("Valid = %v, %v; want true, false", col.Valid(0), col.Valid(1))
			}
			if got := col.Value(0); got != tt.value {
				t.Errorf("Value(0) = %v, want %v", got, tt.value)
			}
			if got := col.String(0); got != tt.wantString {
				t.Errorf("String(0) = %q, want %q", got, tt.wantString)
			}
			if got := col.String(1); got != "" {
				t.Errorf("String(1) = %q, want empty", got)
			}
			if col.Len() != 2 {
				t.Errorf("Len() = %d, want 2", col.Len())
			}
		})
	}
}

func TestColumnTypedAccessors(t *testing.T) {
	ints := newColumn("i", FieldInteger, 1)
	ints.set(0, int64(3))

	if got := ints.Int(0); !got.Valid || got.Int64 != 3 {
		t.Errorf("Int(0) = %+v", got)
	}
	if got := ints.Float(0); got.Valid {
		t.Errorf("Float(0) on integer column = %+v, want invalid", got)
	}
	if got := ints.Text(0); got.Valid {
		t.Errorf("Text(0) on integer column = %+v, want invalid", got)
	}

	ints.set(0, nil)
	if ints.Valid(0) {
		t.Error("set(nil) should clear the cell")
	}
}

func TestTable(t *testing.T) {
	a := newColumn("a", FieldText, 2)
	a.set(0, "x")
	b := newColumn("b", FieldInteger, 2)
	b.set(1, int64(5))

	table := newTable("run-1", a, b)

	if diff := cmp.Diff([]string{"a", "b"}, table.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	if table.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", table.Rows())
	}
	if diff := cmp.Diff([]string{"", "5"}, table.Row(1)); diff != "" {
		t.Errorf("Row(1) mismatch (-want +got):\n%s", diff)
	}
	if _, ok := table.Column("missing"); ok {
		t.Error("Column(missing) should not be found")
	}
	if diff := cmp.Diff([]any{"x", nil}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if got := newTable("").Rows(); got != 0 {
		t.Errorf("empty table Rows() = %d", got)
	}
}
