package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Render writes r as human-readable text. Numbers are grouped using the
// conventions of lang.
func Render(w io.Writer, r *Report, lang language.Tag) error {
	p := message.NewPrinter(lang)
	tw := tabwriter.NewWriter(w, 0, 4, 4, ' ', 0)

	p.Fprintf(tw, "\n=== Cleaning Report ===\n")
	p.Fprintf(tw, "Total rows in dataset: %d\n", r.TotalRows)

	p.Fprintf(tw, "\nDistribution of previously missing value columns:\n")
	if len(r.Distributions) == 0 {
		p.Fprintf(tw, "(none)\n")
	}
	for _, d := range r.Distributions {
		p.Fprintf(tw, "\n%s value counts:\n", d.Column)
		for _, vc := range d.Top {
			p.Fprintf(tw, "%s\t%d\n", vc.Value, vc.Count)
		}
		if d.Distinct > len(d.Top) {
			p.Fprintf(tw, "... (%d more)\n", d.Distinct-len(d.Top))
		}
	}

	if r.Clean() {
		p.Fprintf(tw, "\nNo missing values remain in the dataset.\n")
	} else {
		p.Fprintf(tw, "\nWarning: Remaining missing values:\n")
		for _, res := range r.Remaining {
			p.Fprintf(tw, "%s\t%d\n", res.Column, res.Missing)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
