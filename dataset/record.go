package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/pimastat/pkg/errors"
)

// Attributes is an ordered name→value mapping. Iteration order is the order
// the names were given in.
type Attributes struct {
	names  []string
	values map[string]any
}

// ArrangeValuesToNames zips names with values. Both must have the same
// length; names must be unique.
func ArrangeValuesToNames(names []string, values []any) (*Attributes, error) {
	if len(names) != len(values) {
		return nil, errors.NewLengthMismatchError("ArrangeValuesToNames", len(names), len(values))
	}
	a := &Attributes{
		names:  make([]string, 0, len(names)),
		values: make(map[string]any, len(names)),
	}
	for i, name := range names {
		if _, dup := a.values[name]; dup {
			return nil, errors.NewValueError("ArrangeValuesToNames", fmt.Sprintf("duplicate name %q", name))
		}
		a.names = append(a.names, name)
		a.values[name] = values[i]
	}
	return a, nil
}

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.names) }

// Names returns the attribute names in order.
func (a *Attributes) Names() []string {
	return append([]string(nil), a.names...)
}

// Values returns the attribute values in name order.
func (a *Attributes) Values() []any {
	out := make([]any, len(a.names))
	for i, name := range a.names {
		out[i] = a.values[name]
	}
	return out
}

// Get returns the value stored under name.
func (a *Attributes) Get(name string) (any, bool) {
	v, ok := a.values[name]
	return v, ok
}

func (a *Attributes) clone() *Attributes {
	c := &Attributes{
		names:  a.Names(),
		values: make(map[string]any, len(a.values)),
	}
	for k, v := range a.values {
		c.values[k] = v
	}
	return c
}

// LabelRecoder maps the raw value of a label field to a categorical label.
// field is only used for error reporting.
type LabelRecoder func(field string, value any) (string, error)

// BinaryLabel returns a LabelRecoder mapping the numeric value 1 to positive
// and every other numeric value to negative. Non-numeric values, including a
// label that was already recoded, are rejected with *errors.MalformedFieldError.
func BinaryLabel(positive, negative string) LabelRecoder {
	return func(field string, value any) (string, error) {
		f, ok := numeric(value)
		if !ok {
			return "", errors.NewMalformedFieldError(field, value, "label is not numeric")
		}
		if f == 1 {
			return positive, nil
		}
		return negative, nil
	}
}

// DiabetesLabel recodes the Outcome column: 1 → "Diabetic", else "Non-diabetic".
var DiabetesLabel = BinaryLabel(DiabeticLabel, NonDiabeticLabel)

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case float64:
		return n, !math.IsNaN(n)
	default:
		return 0, false
	}
}

// RecodeLabel replaces the value at target with recoder's label.
func RecodeLabel(a *Attributes, target string, recoder LabelRecoder) error {
	v, ok := a.Get(target)
	if !ok {
		return errors.NewMalformedFieldError(target, nil, "field is absent")
	}
	label, err := recoder(target, v)
	if err != nil {
		return err
	}
	a.values[target] = label
	return nil
}

// Record is a single patient row. It owns a copy of its attributes and its
// label is recoded once, at construction.
type Record struct {
	attrs  *Attributes
	target string
}

// NewRecord copies attrs and recodes the target field with recoder.
func NewRecord(attrs *Attributes, target string, recoder LabelRecoder) (*Record, error) {
	c := attrs.clone()
	if err := RecodeLabel(c, target, recoder); err != nil {
		return nil, err
	}
	return &Record{attrs: c, target: target}, nil
}

// NewPatient builds a Record from a dataset row using the Outcome recoding.
func NewPatient(names []string, values []any) (*Record, error) {
	attrs, err := ArrangeValuesToNames(names, values)
	if err != nil {
		return nil, err
	}
	return NewRecord(attrs, TargetColumn, DiabetesLabel)
}

// Attributes returns a copy of the record's attributes.
func (r *Record) Attributes() *Attributes { return r.attrs.clone() }

// Label returns the recoded label.
func (r *Record) Label() string {
	v, _ := r.attrs.Get(r.target)
	s, _ := v.(string)
	return s
}

// IsDiabetic reports whether the record is labelled DiabeticLabel.
func (r *Record) IsDiabetic() bool {
	return r.Label() == DiabeticLabel
}

// String renders one "name: value" line per attribute.
func (r *Record) String() string {
	var b strings.Builder
	for _, name := range r.attrs.names {
		fmt.Fprintf(&b, "%s: %s\n", name, formatValue(r.attrs.values[name]))
	}
	return b.String()
}

func formatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return "NaN"
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	default:
		return fmt.Sprint(n)
	}
}

// Records is an ordered collection of records sharing one schema.
type Records []*Record

// ToTable builds a Table with one row per record, columns in the order of the
// first record's attributes.
func (rs Records) ToTable() (*Table, error) {
	if len(rs) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Records.ToTable")
	}
	names := rs[0].attrs.Names()
	rows := make([][]string, len(rs))
	for i, r := range rs {
		if r.attrs.Len() != len(names) {
			return nil, errors.Wrapf(errors.NewLengthMismatchError("Records.ToTable", len(names), r.attrs.Len()), "record %d", i)
		}
		row := make([]string, len(names))
		for j, name := range names {
			v, ok := r.attrs.Get(name)
			if !ok {
				return nil, errors.Wrapf(errors.NewUnknownColumnError(name, r.attrs.Names()), "record %d", i)
			}
			row[j] = formatValue(v)
		}
		rows[i] = row
	}
	return NewTableFromRecords(names, rows)
}
