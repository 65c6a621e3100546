package strategyst

import (
	"fmt"

	"github.com/timpalpant/go-cfr"
)

// GameNode implements cfr.GameTreeNode for the one-shot simultaneous
// game described by a payoff matrix. The simultaneous move is modeled
// sequentially: the row player (player 0, maximizer) moves first, then
// the column player (player 1, minimizer) moves without observing the
// row choice, so all of the column player's decision nodes collapse
// into a single information set. This makes the extensive-form game
// strategically identical to the matrix game, and CFR over it
// converges to the same value the schema reduction computes exactly.
type GameNode struct {
	payoffs [][]float64
	// row is the maximizer's chosen strategy, or -1 at the root.
	row int
	// col is the minimizer's chosen strategy, or -1 until chosen.
	col    int
	parent *GameNode
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &GameNode{}

// NewGame creates a root node for the one-shot game over the given
// payoff matrix. The matrix must be rectangular and non-empty
// (see NewSchema).
func NewGame(payoffs [][]float64) *GameNode {
	return &GameNode{
		payoffs: payoffs,
		row:     -1,
		col:     -1,
	}
}

// Type implements cfr.GameTreeNode. There are no chance nodes: the
// root is player 0's node, its children are player 1's, and their
// children are terminal.
func (gn *GameNode) Type() cfr.NodeType {
	if gn.row >= 0 && gn.col >= 0 {
		return cfr.TerminalNodeType
	}
	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode.
func (gn *GameNode) Player() int {
	if gn.row < 0 {
		return 0
	}
	return 1
}

// NumChildren implements cfr.GameTreeNode.
func (gn *GameNode) NumChildren() int {
	switch {
	case gn.row < 0:
		return len(gn.payoffs)
	case gn.col < 0:
		return len(gn.payoffs[0])
	default:
		return 0
	}
}

// GetChild implements cfr.GameTreeNode.
func (gn *GameNode) GetChild(i int) cfr.GameTreeNode {
	child := *gn
	child.parent = gn
	if gn.row < 0 {
		child.row = i
	} else {
		child.col = i
	}
	return &child
}

// Parent implements cfr.GameTreeNode.
func (gn *GameNode) Parent() cfr.GameTreeNode {
	return gn.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (gn *GameNode) GetChildProbability(i int) float64 {
	panic("cannot get the probability of a non-chance node")
}

// SampleChild implements cfr.GameTreeNode.
func (gn *GameNode) SampleChild() (cfr.GameTreeNode, float64) {
	panic("cannot sample the child of a non-chance node")
}

// InfoSet implements cfr.GameTreeNode. Neither player observes
// anything before moving, so each player has a single information
// set covering all of their decision nodes.
func (gn *GameNode) InfoSet(player int) cfr.InfoSet {
	return &gameInfoSet{player: player}
}

// InfoSetKey implements cfr.GameTreeNode.
func (gn *GameNode) InfoSetKey(player int) []byte {
	return gn.InfoSet(player).Key()
}

// Utility implements cfr.GameTreeNode. The game is zero-sum: player 0
// receives the payoff matrix entry, player 1 its negation.
func (gn *GameNode) Utility(player int) float64 {
	if gn.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	v := gn.payoffs[gn.row][gn.col]
	if player == 0 {
		return v
	}
	return -v
}

// Close implements cfr.GameTreeNode.
func (gn *GameNode) Close() {}

// String implements fmt.Stringer.
func (gn *GameNode) String() string {
	switch {
	case gn.row < 0:
		return "row player to move"
	case gn.col < 0:
		return fmt.Sprintf("column player to move (row %d chosen)", gn.row)
	default:
		return fmt.Sprintf("terminal: row %d vs column %d", gn.row, gn.col)
	}
}

// gameInfoSet is the trivial information set of a player who has
// observed nothing yet.
type gameInfoSet struct {
	player int
}

// Key implements cfr.InfoSet.
func (is *gameInfoSet) Key() []byte {
	buf, _ := is.MarshalBinary()
	return buf
}

func (is *gameInfoSet) MarshalBinary() ([]byte, error) {
	return []byte{byte(is.player)}, nil
}

func (is *gameInfoSet) UnmarshalBinary(buf []byte) error {
	if len(buf) != 1 {
		return fmt.Errorf("invalid info set encoding: %d bytes", len(buf))
	}
	is.player = int(buf[0])
	return nil
}
