package bench

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/scottcagno/stringsearch/pkg/util"
)

const (
	colorLime = "154"
	colorGray = "245"
)

type styles struct {
	title  func(string) string
	header func(string) string
}

func newStyles(w io.Writer, styled bool) styles {
	if !styled {
		plain := func(s string) string { return s }
		return styles{title: plain, header: plain}
	}
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorLime))
	header := r.NewStyle().Foreground(lipgloss.Color(colorGray))
	return styles{
		title:  func(s string) string { return title.Render(s) },
		header: func(s string) string { return header.Render(s) },
	}
}

// IsTTY reports whether w is a terminal and NO_COLOR is unset.
func IsTTY(w io.Writer) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteReport prints one table per scenario, in the order the scenarios
// first appear in ms.
func WriteReport(w io.Writer, ms []Measurement, styled bool) error {
	st := newStyles(w, styled)

	var order []string
	groups := make(map[string][]Measurement)
	for _, m := range ms {
		if _, seen := groups[m.Scenario]; !seen {
			order = append(order, m.Scenario)
		}
		groups[m.Scenario] = append(groups[m.Scenario], m)
	}

	for i, name := range order {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		group := groups[name]
		title := fmt.Sprintf("%s (pattern length %d)", name, group[0].M)
		if _, err := fmt.Fprintln(w, st.title(title)); err != nil {
			return err
		}

		var buf bytes.Buffer
		tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "ALGORITHM\tN\tMATCHES\tCOMPARISONS\tCMP/N\tTIME\t")
		for _, m := range group {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.4f\t%s\t\n",
				m.Algorithm, m.N, m.Matches, m.Comparisons, m.Ratio(), util.FormatTime(m.Elapsed))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		lines[0] = st.header(lines[0])
		if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}
