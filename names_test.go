package strategyst

import "testing"

func TestNameStrategy(t *testing.T) {
	n := NamedStrategy(3)
	if i, named := n.Strategy(); !named || i != 3 {
		t.Errorf("Strategy() = (%d, %v), expected (3, true)", i, named)
	}

	var unnamed Name
	if i, named := unnamed.Strategy(); named {
		t.Errorf("Strategy() = (%d, %v), expected unnamed", i, named)
	}
}

func TestNameString(t *testing.T) {
	if s := NamedStrategy(7).String(); s != "7" {
		t.Errorf("String() = %q, expected %q", s, "7")
	}
	var unnamed Name
	if s := unnamed.String(); s != "" {
		t.Errorf("String() = %q, expected empty", s)
	}
}
