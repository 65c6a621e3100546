// Package strategyst computes an optimal mixed strategy and value for a
// two-player zero-sum simultaneous game, given its payoff matrix.
// It follows the pivoting method of Chapter 6 of J.D. Williams'
// The Compleat Strategyst (McGraw-Hill 1954). The player playing the
// rows (strategies on the left) is the maximizer; the player playing
// the columns (strategies on top) is the minimizer.
package strategyst

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Schema is the working tableau for one game: the payoff matrix
// augmented with one margin row and one margin column, plus the
// strategy names along each edge.
//
// A Schema is built once with NewSchema, mutated in place by repeated
// Reduce calls, and read out with Solution. It is not safe for
// concurrent use.
type Schema struct {
	// offset shifts all payoffs non-negative during internal
	// calculations. It does not affect the strategic structure of
	// the game and is added back when reporting the value.
	offset float64
	// d is the current divisor for pivot values. It tracks the
	// previous pivot so that integral payoffs stay integral
	// throughout the reduction.
	d float64
	// names records which original strategy each edge position
	// currently represents.
	names Labels
	// payoffs includes the margins: len(payoffs) == nrows+1 and
	// len(payoffs[i]) == ncols+1 for an nrows x ncols game.
	payoffs [][]float64
}

// Pivot is the position of a tableau cell chosen to reduce against.
type Pivot struct {
	Row, Col int
}

// NewSchema builds the tableau for the given payoff matrix.
// The matrix must be rectangular with at least one row and one column;
// otherwise an error is returned and no Schema is built.
func NewSchema(payoffs [][]float64) (*Schema, error) {
	if len(payoffs) == 0 || len(payoffs[0]) == 0 {
		return nil, errors.New("empty payoff matrix")
	}
	ncols := len(payoffs[0])
	for i, row := range payoffs[1:] {
		if len(row) != ncols {
			return nil, errors.Errorf(
				"ragged payoff matrix: row %d has %d columns, expected %d",
				i+1, len(row), ncols)
		}
	}

	nrows := len(payoffs)
	m := make([][]float64, nrows+1)
	for r, row := range payoffs {
		m[r] = make([]float64, ncols+1)
		copy(m[r], row)
		m[r][ncols] = 1.0
	}
	m[nrows] = make([]float64, ncols+1)
	for c := 0; c < ncols; c++ {
		m[nrows][c] = -1.0
	}
	m[nrows][ncols] = 0.0

	offset := payoffs[0][0]
	for _, row := range payoffs {
		for _, v := range row {
			if v < offset {
				offset = v
			}
		}
	}
	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			m[r][c] -= offset
		}
	}

	return &Schema{
		offset:  offset,
		d:       1.0,
		names:   newLabels(nrows, ncols),
		payoffs: m,
	}, nil
}

// Offset returns the constant subtracted from the payoffs at
// construction: the minimum entry of the original matrix.
func (s *Schema) Offset() float64 {
	return s.offset
}

// Divisor returns the current divisor for pivot values. It is 1 for a
// freshly built Schema and tracks the previous pivot value thereafter.
func (s *Schema) Divisor() float64 {
	return s.d
}

// FindPivot selects the next pivot cell, following the criterion of
// The Compleat Strategyst, p. 221. For each column whose margin-row
// entry is still negative, the candidate minimizing
// -rowMargin*colMargin/cell over the column's positive cells is found;
// among those columns the candidate with the maximum such score wins.
// Ties are broken in favor of the first candidate encountered, scanning
// columns left to right and rows top to bottom.
//
// ok is false iff no column has a negative margin-row entry, i.e. the
// schema is fully reduced.
func (s *Schema) FindPivot() (p Pivot, ok bool) {
	nrows := len(s.payoffs) - 1
	ncols := len(s.payoffs[0]) - 1

	var best float64
	for c := 0; c < ncols; c++ {
		cp := s.payoffs[nrows][c]
		if cp >= 0.0 {
			continue
		}

		// Representative candidate for this column: the positive
		// cell with the minimum score.
		colBest := 0.0
		colPivot := Pivot{}
		found := false
		for r := 0; r < nrows; r++ {
			v := s.payoffs[r][c]
			if v <= 0.0 {
				continue
			}
			rp := s.payoffs[r][ncols]
			score := -rp * cp / v
			if !found || score < colBest {
				colBest = score
				colPivot = Pivot{Row: r, Col: c}
				found = true
			}
		}
		if !found {
			continue
		}

		if !ok || colBest > best {
			best = colBest
			p = colPivot
			ok = true
		}
	}

	return p, ok
}

// Reduce performs one pivot-elimination step at p, mutating the schema
// in place: The Compleat Strategyst, pp. 222-226. The pivot must have
// come from FindPivot on the current schema state.
//
// Reduce panics if the current divisor is zero; that indicates a
// degenerate game this method does not support, and continuing would
// silently produce a wrong answer.
func (s *Schema) Reduce(p Pivot) {
	if s.d == 0.0 {
		panic(fmt.Errorf("strategyst: zero divisor reducing at %v", p))
	}

	nrows := len(s.payoffs)
	ncols := len(s.payoffs[0])
	piv := s.payoffs[p.Row][p.Col]
	d := s.d

	// The recurrence below reads the pivot row and pivot column while
	// overwriting the rest of the matrix, so snapshot them first.
	pivRow := make([]float64, ncols)
	copy(pivRow, s.payoffs[p.Row])
	pivCol := make([]float64, nrows)
	for r := 0; r < nrows; r++ {
		pivCol[r] = s.payoffs[r][p.Col]
	}

	for r := 0; r < nrows; r++ {
		if r == p.Row {
			continue
		}
		row := s.payoffs[r]
		for c := 0; c < ncols; c++ {
			if c == p.Col {
				continue
			}
			row[c] = (row[c]*piv - pivCol[r]*pivRow[c]) / d
		}
	}
	for r := 0; r < nrows; r++ {
		s.payoffs[r][p.Col] = -pivCol[r]
	}
	s.payoffs[p.Row][p.Col] = d
	s.d = piv

	// The strategy that was active on the left/top leaves the basis,
	// replaced by whatever was on the opposite margin.
	s.names.Left[p.Row], s.names.Bottom[p.Col] =
		s.names.Bottom[p.Col], s.names.Left[p.Row]
	s.names.Right[p.Row], s.names.Top[p.Col] =
		s.names.Top[p.Col], s.names.Right[p.Row]
}

// Solution holds the value of a solved game and an optimal mixed
// strategy for each player. Both strategies are probability
// distributions over the original strategy indices.
type Solution struct {
	// Value of the game to the left (maximizing) player.
	Value float64
	// LeftStrategy is the mixed strategy for the row player.
	LeftStrategy []float64
	// TopStrategy is the mixed strategy for the column player.
	TopStrategy []float64
}

// Solution derives the solution from a fully-reduced schema:
// The Compleat Strategyst, p. 226. It panics if the schema violates
// the invariants of reduced form (negative strategy weights or a
// non-positive corner cell), which indicates a degenerate game.
func (s *Schema) Solution() *Solution {
	nrows := len(s.names.Left)
	ncols := len(s.names.Top)

	total := 0.0
	left := make([]float64, nrows)
	for r, n := range s.names.Right {
		sr, named := n.Strategy()
		if !named {
			continue
		}
		v := s.payoffs[r][ncols]
		if v < 0.0 {
			panic(fmt.Errorf("strategyst: negative weight %v for left strategy %d", v, sr))
		}
		left[sr] = v
		total += v
	}
	for i := range left {
		left[i] /= total
	}

	total = 0.0
	top := make([]float64, ncols)
	for c, n := range s.names.Bottom {
		sc, named := n.Strategy()
		if !named {
			continue
		}
		v := s.payoffs[nrows][c]
		if v <= 0.0 {
			panic(fmt.Errorf("strategyst: non-positive weight %v for top strategy %d", v, sc))
		}
		top[sc] = v
		total += v
	}
	for i := range top {
		top[i] /= total
	}

	corner := s.payoffs[nrows][ncols]
	if corner <= 0.0 {
		panic(fmt.Errorf("strategyst: non-positive corner value %v", corner))
	}

	return &Solution{
		Value:        s.d/corner + s.offset,
		LeftStrategy: left,
		TopStrategy:  top,
	}
}

// Solve reduces the schema to fixpoint and extracts the solution.
func (s *Schema) Solve() *Solution {
	n := 0
	for {
		p, ok := s.FindPivot()
		if !ok {
			break
		}
		s.Reduce(p)
		n++
		glog.V(1).Infof("Reduced at pivot %v (step %d, divisor %v)", p, n, s.d)
	}
	glog.V(1).Infof("Schema fully reduced after %d steps", n)

	return s.Solution()
}
