package strategyst

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// String renders the schema as an aligned table with the edge names
// around the payoff matrix, preceded by the offset and divisor.
func (s *Schema) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "O = %.2f, D = %.2f\n", s.offset, s.d)

	tw := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', 0)
	for _, n := range s.names.Top {
		fmt.Fprintf(tw, "\t%v", n)
	}
	fmt.Fprintln(tw)
	for r, row := range s.payoffs {
		if r < len(s.names.Left) {
			fmt.Fprintf(tw, "%v", s.names.Left[r])
		}
		for _, v := range row {
			fmt.Fprintf(tw, "\t%.2f", v)
		}
		if r < len(s.names.Right) {
			fmt.Fprintf(tw, "\t%v", s.names.Right[r])
		}
		fmt.Fprintln(tw)
	}
	for _, n := range s.names.Bottom {
		fmt.Fprintf(tw, "\t%v", n)
	}
	fmt.Fprintln(tw)
	tw.Flush()

	return buf.String()
}

// String renders the solution as a value line followed by one
// index:probability line per player.
func (soln *Solution) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "value %.3f\n", soln.Value)
	writeStrategy(&buf, "max", soln.LeftStrategy)
	writeStrategy(&buf, "min", soln.TopStrategy)
	return buf.String()
}

func writeStrategy(buf *bytes.Buffer, name string, probs []float64) {
	buf.WriteString(name)
	for i, p := range probs {
		fmt.Fprintf(buf, " %d:%.3f", i, p)
	}
	buf.WriteByte('\n')
}
