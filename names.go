package strategyst

import "strconv"

// Name labels one row or column of a Schema with the original strategy
// it currently represents, if any. Margin positions start out unnamed;
// names are exchanged between edges during reduction, never created or
// destroyed.
type Name struct {
	strategy int
	named    bool
}

// NamedStrategy returns the Name for original strategy index i.
func NamedStrategy(i int) Name {
	return Name{strategy: i, named: true}
}

// Strategy returns the original strategy index this Name carries,
// and whether it carries one at all.
func (n Name) Strategy() (int, bool) {
	return n.strategy, n.named
}

// String implements Stringer. Unnamed positions render as the empty
// string so that schema tables show a blank cell.
func (n Name) String() string {
	if !n.named {
		return ""
	}
	return strconv.Itoa(n.strategy)
}

// Labels holds the strategy names along the four edges of a Schema.
// Left and Top correspond to the original row and column strategies;
// Right and Bottom track which strategies have been pivoted out of
// the basis.
type Labels struct {
	Left   []Name
	Top    []Name
	Right  []Name
	Bottom []Name
}

func newLabels(nrows, ncols int) Labels {
	ls := Labels{
		Left:   make([]Name, nrows),
		Top:    make([]Name, ncols),
		Right:  make([]Name, nrows),
		Bottom: make([]Name, ncols),
	}
	for i := range ls.Left {
		ls.Left[i] = NamedStrategy(i)
	}
	for j := range ls.Top {
		ls.Top[j] = NamedStrategy(j)
	}
	return ls
}
