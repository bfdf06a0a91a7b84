package describe

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/YuminosukeSato/pimastat/dataset"
)

// WriteFeatureStats renders stats as an aligned mean/std table, one feature
// per row.
func WriteFeatureStats(w io.Writer, stats []FeatureStat) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "feature\tcount\tmean\tstd\t")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t\n", s.Name, s.Count, s.Mean, s.Std)
	}
	return tw.Flush()
}

// WriteDistribution renders counts and percentages of d.
func WriteDistribution(w io.Writer, d *Distribution) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tcount\tpercent\t\n", d.Name)
	pct := d.Percentages()
	for i, label := range d.Labels {
		fmt.Fprintf(tw, "%s\t%d\t%.2f%%\t\n", label, d.Counts[i], pct[i])
	}
	fmt.Fprintf(tw, "total\t%d\t\t\n", d.Total)
	return tw.Flush()
}

// WriteHead renders the first n rows of t under a title line.
func WriteHead(w io.Writer, title string, t *dataset.Table, n int) error {
	if _, err := fmt.Fprintf(w, "%s (%d rows)\n", title, t.Nrow()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, t.Head(n).String())
	return err
}
