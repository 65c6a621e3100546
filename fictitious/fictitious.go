// Package fictitious estimates optimal mixed strategies for a
// two-player zero-sum matrix game by fictitious play. It converges
// only in the limit, so it is mainly useful as an independent check
// on the exact schema-reduction solver.
package fictitious

import (
	"github.com/golang/glog"
)

// Solve runs nIter rounds of fictitious play over the payoff matrix.
// Each round both players play a best response to the opponent's
// empirical mixture so far (ties broken toward the lowest index).
// It returns the players' empirical mixtures and the value of the
// row player's mixture against the column player's.
func Solve(payoffs [][]float64, nIter int) (rowStrategy, colStrategy []float64, value float64) {
	rowCounts := make([]int, len(payoffs))
	colCounts := make([]int, len(payoffs[0]))
	// Seed with one play of each player's first strategy so that the
	// first best responses are well defined.
	rowCounts[0]++
	colCounts[0]++

	logEvery := nIter / 10
	for i := 1; i <= nIter; i++ {
		rowSelected := rowBestResponse(payoffs, colCounts)
		colSelected := colBestResponse(payoffs, rowCounts)
		rowCounts[rowSelected]++
		colCounts[colSelected]++

		if logEvery > 0 && i%logEvery == 0 {
			glog.V(1).Infof("After %d iterations, row player mixture: %v", i, normalize(rowCounts))
			glog.V(1).Infof("After %d iterations, column player mixture: %v", i, normalize(colCounts))
		}
	}

	rowStrategy = normalize(rowCounts)
	colStrategy = normalize(colCounts)
	return rowStrategy, colStrategy, expectedValue(payoffs, rowStrategy, colStrategy)
}

func rowBestResponse(payoffs [][]float64, colCounts []int) int {
	utilities := make([]float64, len(payoffs))
	for j, c := range colCounts {
		for i := range utilities {
			utilities[i] += float64(c) * payoffs[i][j]
		}
	}

	return argMax(utilities)
}

func colBestResponse(payoffs [][]float64, rowCounts []int) int {
	utilities := make([]float64, len(payoffs[0]))
	for i, c := range rowCounts {
		for j := range utilities {
			utilities[j] -= float64(c) * payoffs[i][j]
		}
	}

	return argMax(utilities)
}

func expectedValue(payoffs [][]float64, rowStrategy, colStrategy []float64) float64 {
	v := 0.0
	for i, row := range payoffs {
		for j, p := range row {
			v += rowStrategy[i] * colStrategy[j] * p
		}
	}
	return v
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

func argMax(vs []float64) int {
	bestIdx := 0
	for i, v := range vs {
		if v > vs[bestIdx] {
			bestIdx = i
		}
	}
	return bestIdx
}
