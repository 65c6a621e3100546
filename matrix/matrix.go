// Package matrix reads and writes payoff matrices in whitespace-separated
// text form: one row per line, entries separated by spaces or tabs,
// blank lines ignored.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a payoff matrix from r. Every non-blank line becomes one
// row. It is an error for the input to contain no rows, a non-numeric
// entry, or rows of differing lengths.
func Parse(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: invalid entry %q", lineno, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading payoff matrix")
	}

	if len(rows) == 0 {
		return nil, errors.New("empty payoff matrix")
	}
	ncols := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != ncols {
			return nil, errors.Errorf(
				"ragged payoff matrix: row %d has %d entries, expected %d",
				i+2, len(row), ncols)
		}
	}

	return rows, nil
}

// Format writes m to w in the form Parse reads. Entries are written
// with enough precision to round-trip exactly.
func Format(w io.Writer, m [][]float64) error {
	for _, row := range m {
		for i, v := range row {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
