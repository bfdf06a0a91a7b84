package describe

import (
	"sort"

	"github.com/YuminosukeSato/pimastat/dataset"
	"github.com/YuminosukeSato/pimastat/pkg/errors"
)

// Distribution is the count of each distinct value of a column, most
// frequent first. Ties are ordered by label.
type Distribution struct {
	Name   string
	Labels []string
	Counts []int
	Total  int
}

// ClassDistribution counts the distinct values of c. Numeric values are
// counted by their string form.
func ClassDistribution(c *dataset.Column) (*Distribution, error) {
	if c.Len() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ClassDistribution")
	}
	counts := make(map[string]int)
	for _, v := range c.Strings() {
		counts[v]++
	}

	d := &Distribution{Name: c.Name(), Total: c.Len()}
	for label := range counts {
		d.Labels = append(d.Labels, label)
	}
	sort.Slice(d.Labels, func(i, j int) bool {
		ci, cj := counts[d.Labels[i]], counts[d.Labels[j]]
		if ci != cj {
			return ci > cj
		}
		return d.Labels[i] < d.Labels[j]
	})
	d.Counts = make([]int, len(d.Labels))
	for i, label := range d.Labels {
		d.Counts[i] = counts[label]
	}
	return d, nil
}

// Count returns the count for label, 0 when it does not occur.
func (d *Distribution) Count(label string) int {
	for i, l := range d.Labels {
		if l == label {
			return d.Counts[i]
		}
	}
	return 0
}

// Percentages returns count/total*100 for each label, in Labels order.
func (d *Distribution) Percentages() []float64 {
	out := make([]float64, len(d.Counts))
	for i, c := range d.Counts {
		out[i] = float64(c) / float64(d.Total) * 100
	}
	return out
}

// Percentage returns the share of label in percent.
func (d *Distribution) Percentage(label string) float64 {
	return float64(d.Count(label)) / float64(d.Total) * 100
}
