// Compute an optimal mixed strategy and value for a two-player
// zero-sum simultaneous game, given its payoff matrix on stdin or in
// a file. The solution is printed to stdout.
package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"

	"github.com/timpalpant/strategyst"
	"github.com/timpalpant/strategyst/matrix"
)

func main() {
	input := flag.String("input", "", "File with payoff matrix (default: stdin). Gzipped input (.gz) is decompressed transparently")
	trace := flag.Bool("trace", false, "Print the schema before each reduction")
	save := flag.String("save", "", "Save the solution to this file as gzipped gob")
	flag.Parse()

	m := mustReadMatrix(*input)
	schema, err := strategyst.NewSchema(m)
	if err != nil {
		glog.Fatal(err)
	}

	var soln *strategyst.Solution
	if *trace {
		for {
			fmt.Print(schema)
			p, ok := schema.FindPivot()
			if !ok {
				break
			}
			glog.Infof("Reducing at pivot %v", p)
			schema.Reduce(p)
		}
		soln = schema.Solution()
	} else {
		soln = schema.Solve()
	}

	fmt.Print(soln)
	if *save != "" {
		mustSaveSolution(soln, *save)
	}
}

func mustReadMatrix(filename string) [][]float64 {
	var r io.Reader = os.Stdin
	if filename != "" {
		glog.Infof("Reading payoff matrix from: %v", filename)
		f, err := os.Open(filename)
		if err != nil {
			glog.Fatal(err)
		}
		defer f.Close()
		r = f

		if strings.HasSuffix(filename, ".gz") {
			gz, err := gzip.NewReader(f)
			if err != nil {
				glog.Fatal(err)
			}
			defer gz.Close()
			r = gz
		}
	}

	m, err := matrix.Parse(r)
	if err != nil {
		glog.Fatalf("could not read payoff matrix: %v", err)
	}
	return m
}

func mustSaveSolution(soln *strategyst.Solution, filename string) {
	glog.Infof("Saving solution to: %v", filename)
	f, err := os.Create(filename)
	if err != nil {
		glog.Fatal(err)
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	defer w.Close()

	enc := gob.NewEncoder(w)
	if err := enc.Encode(soln); err != nil {
		glog.Fatal(err)
	}
}
