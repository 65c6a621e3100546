// Cross-check the schema-reduction solver against two approximate
// solvers over the same payoff matrix: vanilla CFR on the one-shot
// game tree, and fictitious play.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"github.com/timpalpant/strategyst"
	"github.com/timpalpant/strategyst/fictitious"
	"github.com/timpalpant/strategyst/matrix"
)

func main() {
	cfrIter := flag.Int("cfr_iter", 10000, "Number of CFR iterations")
	fpIter := flag.Int("fp_iter", 100000, "Number of fictitious play iterations")
	flag.Parse()

	m, err := matrix.Parse(os.Stdin)
	if err != nil {
		glog.Fatalf("could not read payoff matrix: %v", err)
	}

	schema, err := strategyst.NewSchema(m)
	if err != nil {
		glog.Fatal(err)
	}
	soln := schema.Solve()
	glog.Infof("Schema reduction: value %v", soln.Value)
	glog.Infof("Schema reduction: row strategy %v", soln.LeftStrategy)
	glog.Infof("Schema reduction: column strategy %v", soln.TopStrategy)

	game := strategyst.NewGame(m)
	total := 0
	tree.Visit(game, func(node cfr.GameTreeNode) {
		total++
	})
	glog.Infof("One-shot game tree has %d nodes", total)

	policy := cfr.NewPolicyTable(cfr.DiscountParams{})
	vanillaCFR := cfr.New(policy)
	var expectedValue float32
	for i := 1; i <= *cfrIter; i++ {
		expectedValue += vanillaCFR.Run(game)
		if i%(*cfrIter/10+1) == 0 {
			glog.Infof("CFR iteration %d: expected value %v", i, expectedValue/float32(i))
		}
		policy.Update()
	}
	cfrValue := float64(expectedValue) / float64(*cfrIter)
	glog.Infof("CFR: expected value %v (schema: %v)", cfrValue, soln.Value)

	_, _, fpValue := fictitious.Solve(m, *fpIter)
	glog.Infof("Fictitious play: value %v (schema: %v)", fpValue, soln.Value)
}
