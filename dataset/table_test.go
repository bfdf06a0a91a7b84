package dataset

import (
	"testing"

	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/google/go-cmp/cmp"
)

func smallTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTableFromRecords(
		[]string{"Glucose", "BMI", "Name", TargetColumn},
		[][]string{
			{"148", "33.6", "a", "1"},
			{"85", "26.6", "b", "0"},
			{"183", "23.3", "c", "1"},
			{"89", "28.1", "d", "0"},
		},
	)
	if err != nil {
		t.Fatalf("NewTableFromRecords failed: %v", err)
	}
	return table
}

func TestTableShape(t *testing.T) {
	table := smallTable(t)

	if table.Nrow() != 4 || table.Ncol() != 4 {
		t.Fatalf("got %dx%d, want 4x4", table.Nrow(), table.Ncol())
	}
	if !table.Has("BMI") || table.Has("Age") {
		t.Error("Has() reported wrong membership")
	}
	if diff := cmp.Diff([]string{"Glucose", "BMI", TargetColumn}, table.NumericNames()); diff != "" {
		t.Errorf("NumericNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnTypesAndValues(t *testing.T) {
	table := smallTable(t)

	tests := []struct {
		column   string
		typ      string
		numeric  bool
		firstVal any
	}{
		{"Glucose", "int", true, 148},
		{"BMI", "float", true, 33.6},
		{"Name", "string", false, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			c, err := table.Column(tt.column)
			if err != nil {
				t.Fatal(err)
			}
			if c.Name() != tt.column {
				t.Errorf("Name() = %q", c.Name())
			}
			if c.Type() != tt.typ {
				t.Errorf("Type() = %q, want %q", c.Type(), tt.typ)
			}
			if c.IsNumeric() != tt.numeric {
				t.Errorf("IsNumeric() = %v, want %v", c.IsNumeric(), tt.numeric)
			}
			if got := c.Value(0); got != tt.firstVal {
				t.Errorf("Value(0) = %#v, want %#v", got, tt.firstVal)
			}
		})
	}
}

func TestTableColumnUnknown(t *testing.T) {
	table := smallTable(t)

	_, err := table.Column("Age")
	var uc *errors.UnknownColumnError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnknownColumnError, got %v", err)
	}
	if uc.Column != "Age" {
		t.Errorf("Column = %q, want Age", uc.Column)
	}

	if _, err := table.Select("Glucose", "Age"); !errors.As(err, &uc) {
		t.Errorf("Select: expected UnknownColumnError, got %v", err)
	}
	if _, err := table.Drop("Age"); !errors.As(err, &uc) {
		t.Errorf("Drop: expected UnknownColumnError, got %v", err)
	}
}

func TestTableIsImmutable(t *testing.T) {
	table := smallTable(t)

	if _, err := table.Drop("Name"); err != nil {
		t.Fatal(err)
	}
	if _, err := table.Rename([]string{"a", "b", "c", "d"}); err != nil {
		t.Fatal(err)
	}
	if _, err := table.RecodeColumn(TargetColumn, DiabetesLabel); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"Glucose", "BMI", "Name", TargetColumn}, table.Names()); diff != "" {
		t.Errorf("receiver changed (-want +got):\n%s", diff)
	}
	outcome, _ := table.Column(TargetColumn)
	if outcome.Type() != "int" {
		t.Errorf("receiver Outcome type changed to %s", outcome.Type())
	}
}

func TestTableSubset(t *testing.T) {
	table := smallTable(t)

	sub, err := table.Subset([]int{3, 0})
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	glucose, _ := sub.Column("Glucose")
	if diff := cmp.Diff([]float64{89, 148}, glucose.Float()); diff != "" {
		t.Errorf("Subset order mismatch (-want +got):\n%s", diff)
	}

	empty, err := table.Subset(nil)
	if err != nil {
		t.Fatalf("empty Subset failed: %v", err)
	}
	if empty.Nrow() != 0 || empty.Ncol() != table.Ncol() {
		t.Errorf("empty subset is %dx%d, want 0x%d", empty.Nrow(), empty.Ncol(), table.Ncol())
	}

	var ve *errors.ValueError
	if _, err := table.Subset([]int{4}); !errors.As(err, &ve) {
		t.Errorf("out of range: expected ValueError, got %v", err)
	}
}

func TestTableHead(t *testing.T) {
	table := smallTable(t)

	if got := table.Head(2).Nrow(); got != 2 {
		t.Errorf("Head(2).Nrow() = %d", got)
	}
	if got := table.Head(10).Nrow(); got != 4 {
		t.Errorf("Head(10).Nrow() = %d", got)
	}
	for _, n := range []int{0, -1} {
		head := table.Head(n)
		if head.Nrow() != 0 || head.Ncol() != table.Ncol() {
			t.Errorf("Head(%d) shape = %dx%d, want 0x%d", n, head.Nrow(), head.Ncol(), table.Ncol())
		}
	}
}

func TestTableRename(t *testing.T) {
	table := smallTable(t)

	renamed, err := table.Rename([]string{"g", "b", "n", "o"})
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if diff := cmp.Diff([]string{"g", "b", "n", "o"}, renamed.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	_, err = table.Rename([]string{"a"})
	var cc *errors.ColumnCountError
	if !errors.As(err, &cc) {
		t.Fatalf("expected ColumnCountError, got %v", err)
	}
	if cc.Expected != 4 || cc.Actual != 1 {
		t.Errorf("got expected=%d actual=%d, want 4 and 1", cc.Expected, cc.Actual)
	}
}

func TestTableRecodeColumn(t *testing.T) {
	table := smallTable(t)

	recoded, err := table.RecodeColumn(TargetColumn, DiabetesLabel)
	if err != nil {
		t.Fatalf("RecodeColumn failed: %v", err)
	}
	outcome, _ := recoded.Column(TargetColumn)
	want := []string{DiabeticLabel, NonDiabeticLabel, DiabeticLabel, NonDiabeticLabel}
	if diff := cmp.Diff(want, outcome.Strings()); diff != "" {
		t.Errorf("Outcome mismatch (-want +got):\n%s", diff)
	}
	// 列の位置は変わらない
	if diff := cmp.Diff(table.Names(), recoded.Names()); diff != "" {
		t.Errorf("column order changed (-want +got):\n%s", diff)
	}

	_, err = recoded.RecodeColumn(TargetColumn, DiabetesLabel)
	var mf *errors.MalformedFieldError
	if !errors.As(err, &mf) {
		t.Errorf("recoding twice: expected MalformedFieldError, got %v", err)
	}
}

func TestTableRow(t *testing.T) {
	table := smallTable(t)

	row, err := table.Row(1)
	if err != nil {
		t.Fatalf("Row failed: %v", err)
	}
	want := []any{85, 26.6, "b", 0}
	if diff := cmp.Diff(want, row.Values()); diff != "" {
		t.Errorf("Row(1) mismatch (-want +got):\n%s", diff)
	}

	if _, err := table.Row(-1); err == nil {
		t.Error("expected error for negative row index")
	}
}

func TestTableMatrix(t *testing.T) {
	table := smallTable(t)

	m, names, err := table.Matrix()
	if err != nil {
		t.Fatalf("Matrix failed: %v", err)
	}
	r, c := m.Dims()
	if r != 4 || c != 3 {
		t.Fatalf("Dims() = %d,%d, want 4,3", r, c)
	}
	if diff := cmp.Diff([]string{"Glucose", "BMI", TargetColumn}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if m.At(2, 1) != 23.3 {
		t.Errorf("At(2,1) = %v, want 23.3", m.At(2, 1))
	}

	strOnly, err := table.Select("Name")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := strOnly.Matrix(); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData for table without numeric columns, got %v", err)
	}
}

func TestNewTableFromRecordsErrors(t *testing.T) {
	if _, err := NewTableFromRecords([]string{"a"}, nil); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
	_, err := NewTableFromRecords([]string{"a", "b"}, [][]string{{"1"}})
	var lm *errors.LengthMismatchError
	if !errors.As(err, &lm) {
		t.Errorf("expected LengthMismatchError, got %v", err)
	}
}
