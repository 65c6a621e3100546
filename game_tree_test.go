package strategyst

import (
	"math"
	"testing"

	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"
)

func matchingPennies() [][]float64 {
	return [][]float64{
		{1.0, -1.0},
		{-1.0, 1.0},
	}
}

func TestGameNodeShape(t *testing.T) {
	root := NewGame(matchingPennies())

	if root.Type() != cfr.PlayerNodeType {
		t.Errorf("root type = %v, expected player node", root.Type())
	}
	if root.Player() != 0 {
		t.Errorf("root player = %d, expected 0", root.Player())
	}
	if n := root.NumChildren(); n != 2 {
		t.Errorf("root has %d children, expected 2", n)
	}

	child := root.GetChild(1)
	if child.Type() != cfr.PlayerNodeType {
		t.Errorf("child type = %v, expected player node", child.Type())
	}
	if child.Player() != 1 {
		t.Errorf("child player = %d, expected 1", child.Player())
	}
	if child.Parent() != root {
		t.Error("child parent is not the root")
	}

	leaf := child.GetChild(0)
	if leaf.Type() != cfr.TerminalNodeType {
		t.Errorf("leaf type = %v, expected terminal", leaf.Type())
	}
	// Row 1 vs column 0 pays -1 to the row player.
	if u := leaf.Utility(0); u != -1.0 {
		t.Errorf("utility for player 0 = %v, expected -1", u)
	}
	if u := leaf.Utility(1); u != 1.0 {
		t.Errorf("utility for player 1 = %v, expected 1", u)
	}
}

func TestGameNodeTreeSize(t *testing.T) {
	m := [][]float64{
		{6.0, 0.0, 3.0},
		{8.0, -2.0, 3.0},
		{4.0, 6.0, 5.0},
	}
	total := 0
	tree.Visit(NewGame(m), func(node cfr.GameTreeNode) {
		total++
	})

	// Root, one node per row, one leaf per cell.
	expected := 1 + len(m) + len(m)*len(m[0])
	if total != expected {
		t.Errorf("visited %d nodes, expected %d", total, expected)
	}
}

func TestGameNodeVanillaCFR(t *testing.T) {
	root := NewGame(matchingPennies())
	policy := cfr.NewPolicyTable(cfr.DiscountParams{})
	vanillaCFR := cfr.New(policy)

	nIter := 1000
	var expectedValue float32
	for i := 1; i <= nIter; i++ {
		expectedValue += vanillaCFR.Run(root)
		policy.Update()
	}

	// Matching pennies is symmetric: the game is worth 0 to both players.
	avg := float64(expectedValue) / float64(nIter)
	if math.Abs(avg) > 0.1 {
		t.Errorf("average expected value = %v, expected ~0", avg)
	}
}

func TestGameInfoSetHidesRowChoice(t *testing.T) {
	root := NewGame(matchingPennies())

	// The column player must not be able to distinguish which row was
	// chosen, or the sequential model would leak the simultaneous move.
	is0, err := root.GetChild(0).InfoSet(1).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	is1, err := root.GetChild(1).InfoSet(1).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if string(is0) != string(is1) {
		t.Errorf("column player info sets differ across rows: %v vs %v", is0, is1)
	}

	var is gameInfoSet
	if err := is.UnmarshalBinary(is0); err != nil {
		t.Fatal(err)
	}
	if is.player != 1 {
		t.Errorf("unmarshaled player = %d, expected 1", is.player)
	}
}
