package linkgraph

import (
	"math"
	"reflect"
	"testing"
)

const scoreTolerance = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < scoreTolerance
}

func TestComputeSeedSimilarity(t *testing.T) {
	links := map[string][]string{
		"S1": {"T1", "T2"},
		"S2": {"T1"},
		"P":  {"T1"},
		"Q":  {"T3"},
	}
	seeds := []string{"S1", "S2"}
	m := NewMatrix(links)
	all, fromSeeds := InDegrees(links, seeds)

	sim, err := ComputeSeedSimilarity(seeds, m, all, fromSeeds)
	if err != nil {
		t.Fatalf("ComputeSeedSimilarity: %v", err)
	}

	// Weights: T1 = 2/3, T2 = 1, T3 = 0.
	wantWeights := []float64{2.0 / 3.0, 1, 0}
	if len(sim.PageWeights) != len(wantWeights) {
		t.Fatalf("got %d weights, want %d", len(sim.PageWeights), len(wantWeights))
	}
	for i, w := range wantWeights {
		if !almostEqual(sim.PageWeights[i], w) {
			t.Errorf("PageWeights[%d] = %v, want %v", i, sim.PageWeights[i], w)
		}
	}

	// S1's links coincide with the highest-weight targets, so it scores 1.
	if !almostEqual(sim.Scores["S1"], 1) {
		t.Errorf("Scores[S1] = %v, want 1", sim.Scores["S1"])
	}
	// P links only to T1: score = w1 / ||w|| = (2/3) / (sqrt(13)/3).
	wantP := (2.0 / 3.0) / (math.Sqrt(13) / 3)
	if !almostEqual(sim.Scores["P"], wantP) {
		t.Errorf("Scores[P] = %v, want %v", sim.Scores["P"], wantP)
	}
	if !almostEqual(sim.Scores["S2"], wantP) {
		t.Errorf("Scores[S2] = %v, want %v", sim.Scores["S2"], wantP)
	}
	// Q links only to a zero-weight target.
	if sim.Scores["Q"] != 0 {
		t.Errorf("Scores[Q] = %v, want 0", sim.Scores["Q"])
	}

	for label, score := range sim.Scores {
		if score < 0 || score > 1+scoreTolerance {
			t.Errorf("Scores[%q] = %v outside [0, 1]", label, score)
		}
	}
}

func TestComputeSeedSimilarityDropsZeroInDegree(t *testing.T) {
	links := map[string][]string{
		"S": {"T1", "T2"},
	}
	m := NewMatrix(links)

	// T2 is reported with zero total in-degree, so it is dropped.
	all := map[string]int{"T1": 1}
	fromSeeds := map[string]int{"T1": 1}

	sim, err := ComputeSeedSimilarity([]string{"S"}, m, all, fromSeeds)
	if err != nil {
		t.Fatalf("ComputeSeedSimilarity: %v", err)
	}
	if sim.ColsDropped != 1 {
		t.Errorf("ColsDropped = %d, want 1", sim.ColsDropped)
	}
	if sim.ColsUsed != 1 {
		t.Errorf("ColsUsed = %d, want 1", sim.ColsUsed)
	}
	if !reflect.DeepEqual(sim.Cols, []string{"T1"}) {
		t.Errorf("Cols = %v", sim.Cols)
	}
	if !almostEqual(sim.Scores["S"], 1) {
		t.Errorf("Scores[S] = %v, want 1", sim.Scores["S"])
	}
}

func TestComputeSeedSimilaritySeedNotARow(t *testing.T) {
	m := NewMatrix(map[string][]string{"A": {"X"}})
	if _, err := ComputeSeedSimilarity([]string{"missing"}, m, nil, nil); err == nil {
		t.Fatal("expected error for seed that is not a row")
	}
}

func TestComputeSeedSimilarityZeroTargetVector(t *testing.T) {
	// No links from seeds: every weight is zero, every score is zero.
	links := map[string][]string{
		"S": {},
		"P": {"T1"},
	}
	m := NewMatrix(links)
	all, fromSeeds := InDegrees(links, []string{"S"})

	sim, err := ComputeSeedSimilarity([]string{"S"}, m, all, fromSeeds)
	if err != nil {
		t.Fatalf("ComputeSeedSimilarity: %v", err)
	}
	for label, score := range sim.Scores {
		if score != 0 {
			t.Errorf("Scores[%q] = %v, want 0", label, score)
		}
	}
}

func TestRank(t *testing.T) {
	scores := map[string]float64{
		"A": 0.3,
		"B": 0.9,
		"C": 0.3,
		"D": 0.7,
	}

	got := Rank(scores, 0)
	want := []RankedPage{
		{Title: "B", Score: 0.9},
		{Title: "D", Score: 0.7},
		{Title: "A", Score: 0.3},
		{Title: "C", Score: 0.3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestRankLimitAndExclude(t *testing.T) {
	scores := map[string]float64{
		"A": 0.3,
		"B": 0.9,
		"C": 0.5,
	}

	got := Rank(scores, 1, "B")
	want := []RankedPage{{Title: "C", Score: 0.5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestInDegrees(t *testing.T) {
	links := map[string][]string{
		"S1": {"T1", "T2", "T1"}, // duplicate edge counts once
		"S2": {"T1"},
		"P":  {"T2"},
	}

	all, fromSeeds := InDegrees(links, []string{"S1", "S2"})

	wantAll := map[string]int{"T1": 2, "T2": 2}
	if !reflect.DeepEqual(all, wantAll) {
		t.Errorf("all = %v, want %v", all, wantAll)
	}
	wantSeeds := map[string]int{"T1": 2, "T2": 1}
	if !reflect.DeepEqual(fromSeeds, wantSeeds) {
		t.Errorf("fromSeeds = %v, want %v", fromSeeds, wantSeeds)
	}
}
