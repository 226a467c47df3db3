package linkgraph

import (
	"fmt"
	"math"
	"sort"
)

// SeedSimilarity holds the result of scoring every source page against an
// aggregate seed link profile.
type SeedSimilarity struct {
	// Scores maps each row label to its cosine similarity in [-1, 1].
	Scores map[string]float64

	// PageWeights and TargetVec are aligned with Cols, the column labels
	// retained after dropping zero-in-degree targets.
	PageWeights []float64
	TargetVec   []float64
	Cols        []string

	// ColsDropped counts target columns removed for zero total in-degree.
	ColsDropped int
	ColsUsed    int
}

// ComputeSeedSimilarity scores each source page of the matrix against a
// target vector derived from the seed pages' link structure.
//
// Each target column is weighted by the fraction of its in-links that come
// from seed pages (inDegreeFromSeeds / inDegreeAll); columns with zero
// total in-degree are dropped. A page's score is the cosine similarity
// between its weighted link vector and the weight vector itself, so pages
// that link to the same seed-favoured targets score near 1.
//
// Every seed must be a row of the matrix.
func ComputeSeedSimilarity(seeds []string, m *Matrix, inDegreeAll, inDegreeFromSeeds map[string]int) (*SeedSimilarity, error) {
	for _, seed := range seeds {
		if m.RowIndex(seed) < 0 {
			return nil, fmt.Errorf("seed page %q is not a row of the link matrix", seed)
		}
	}

	// Column weights, dropping zero-in-degree targets. keep maps original
	// column index to its position in the retained vectors, -1 if dropped.
	keep := make([]int, len(m.ColLabels))
	var cols []string
	var weights []float64
	dropped := 0
	for j, label := range m.ColLabels {
		all := inDegreeAll[label]
		if all <= 0 {
			keep[j] = -1
			dropped++
			continue
		}
		keep[j] = len(cols)
		cols = append(cols, label)
		weights = append(weights, float64(inDegreeFromSeeds[label])/float64(all))
	}

	result := &SeedSimilarity{
		Scores:      make(map[string]float64, len(m.RowLabels)),
		PageWeights: weights,
		TargetVec:   weights,
		Cols:        cols,
		ColsDropped: dropped,
		ColsUsed:    len(cols),
	}

	var targetNormSq float64
	for _, w := range weights {
		targetNormSq += w * w
	}
	targetNorm := math.Sqrt(targetNormSq)
	if targetNorm == 0 {
		for _, label := range m.RowLabels {
			result.Scores[label] = 0
		}
		return result, nil
	}

	// The weighted matrix scales each binary row element-wise by the
	// column weights, so per row the dot product with the target vector
	// is sum(w^2) and the squared row norm is the same sum.
	for i, label := range m.RowLabels {
		var dot, rowNormSq float64
		for _, j := range m.Row(i) {
			k := keep[j]
			if k < 0 {
				continue
			}
			w := weights[k]
			dot += w * w
			rowNormSq += w * w
		}
		rowNorm := math.Sqrt(rowNormSq)
		if rowNorm == 0 {
			result.Scores[label] = 0
			continue
		}
		result.Scores[label] = dot / (rowNorm * targetNorm)
	}
	return result, nil
}

// RankedPage is a page title with its similarity score.
type RankedPage struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Rank sorts scores descending (ties broken by title) and returns at most
// limit entries; limit <= 0 returns everything. Titles listed in exclude
// (typically the seeds themselves) are omitted.
func Rank(scores map[string]float64, limit int, exclude ...string) []RankedPage {
	skip := make(map[string]struct{}, len(exclude))
	for _, t := range exclude {
		skip[t] = struct{}{}
	}

	ranked := make([]RankedPage, 0, len(scores))
	for title, score := range scores {
		if _, ok := skip[title]; ok {
			continue
		}
		ranked = append(ranked, RankedPage{Title: title, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Title < ranked[j].Title
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// InDegrees computes, for every target in the adjacency map, its total
// in-degree and its in-degree counting only seed sources. Duplicate edges
// from one source count once.
func InDegrees(links map[string][]string, seeds []string) (all, fromSeeds map[string]int) {
	seedSet := make(map[string]struct{}, len(seeds))
	for _, s := range seeds {
		seedSet[s] = struct{}{}
	}

	all = make(map[string]int)
	fromSeeds = make(map[string]int)
	for source, targets := range links {
		_, isSeed := seedSet[source]
		seen := make(map[string]struct{}, len(targets))
		for _, t := range targets {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			all[t]++
			if isSeed {
				fromSeeds[t]++
			}
		}
	}
	return all, fromSeeds
}
