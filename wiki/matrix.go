package wiki

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matsen/wikicorpus/linkgraph"
)

// maxUsefulDepth is where subcategory BFS results typically stop being
// topical; deeper traversals are allowed but warned about.
const maxUsefulDepth = 3

// CategoryMatrix retrieves members for the given categories and assembles
// a sparse binary category-by-member matrix. For depth >= 2 it walks the
// subcategory hierarchy breadth-first, fetching each level's unseen
// categories concurrently; depth > 1 is only meaningful when retrieving
// subcategories (NamespaceCategory). Row and column labels carry no
// "Category:" prefix.
func (c *Client) CategoryMatrix(ctx context.Context, categories []string, depth int, ns Namespace) (*linkgraph.Matrix, error) {
	if depth < 1 {
		depth = 1
	}
	if depth > 1 && ns != NamespaceCategory {
		return nil, fmt.Errorf("depth %d requires the category namespace (depth > 1 only expands subcategories)", depth)
	}
	if depth > maxUsefulDepth {
		c.logger.Warn("deep category traversal may return too many results to be useful", "depth", depth)
	}

	rowOrder := make([]string, 0, len(categories))
	memberMap := make(map[string][]string)

	level := make([]string, len(categories))
	copy(level, categories)
	for d := 1; d <= depth; d++ {
		if len(level) == 0 {
			break
		}
		c.logger.Info("retrieving category level", "depth", d, "categories", len(level))

		fetched, err := c.fetchCategoryLevel(ctx, level, ns)
		if err != nil {
			return nil, err
		}
		for _, cat := range level {
			name := StripCategoryPrefix(cat)
			rowOrder = append(rowOrder, name)
			memberMap[name] = fetched[name]
		}

		// Next level: members we have not fetched yet.
		next := make(map[string]struct{})
		for _, members := range fetched {
			for _, m := range members {
				if _, done := memberMap[m]; !done {
					next[m] = struct{}{}
				}
			}
		}
		level = level[:0]
		for m := range next {
			level = append(level, m)
		}
		sort.Strings(level)
	}

	return linkgraph.NewMatrixWithRows(rowOrder, memberMap), nil
}

// fetchCategoryLevel retrieves members for one BFS level of categories,
// bounded to MaxConcurrency parallel requests. Keys and member titles are
// stripped of the "Category:" prefix.
func (c *Client) fetchCategoryLevel(ctx context.Context, categories []string, ns Namespace) (map[string][]string, error) {
	fetched := make(map[string][]string, len(categories))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)
	for _, cat := range categories {
		g.Go(func() error {
			members, err := c.CategoryMembers(gctx, cat, ns)
			if err != nil {
				return err
			}
			titles := make([]string, len(members))
			for i, m := range members {
				titles[i] = StripCategoryPrefix(m.Title)
			}

			mu.Lock()
			fetched[StripCategoryPrefix(cat)] = titles
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fetched, nil
}
