package wiki

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxRedirectChain bounds how many hops the batch parser follows, so a
// cyclic redirect pair in the response cannot loop forever.
const maxRedirectChain = 10

// ResolveRedirect checks whether a title is a redirect and returns the
// destination title, or "" if the title does not redirect.
func (c *Client) ResolveRedirect(ctx context.Context, title string) (string, error) {
	c.logger.Info("checking redirect status", "title", title)

	params := queryParams()
	params.Set("titles", title)
	params.Set("redirects", "")

	resp, err := c.apiGet(ctx, params)
	if err != nil {
		return "", err
	}
	if resp.Query == nil || len(resp.Query.Redirects) == 0 {
		return "", nil
	}
	// The API chases chains itself; the last entry is the terminal title.
	return resp.Query.Redirects[len(resp.Query.Redirects)-1].To, nil
}

// ResolveRedirects resolves redirects for many titles. Titles are grouped
// into batches of 50 (the API limit per request) and the batches are
// fetched concurrently. The result maps each input title that is a
// redirect to its terminal destination; titles that do not redirect are
// absent from the map.
func (c *Client) ResolveRedirects(ctx context.Context, titles []string) (map[string]string, error) {
	var batches [][]string
	for start := 0; start < len(titles); start += titleBatchSize {
		end := min(start+titleBatchSize, len(titles))
		batches = append(batches, titles[start:end])
	}
	if len(batches) > 1 {
		c.logger.Info("resolving redirects", "titles", len(titles), "batches", len(batches))
	}

	result := make(map[string]string)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)
	for _, batch := range batches {
		g.Go(func() error {
			params := queryParams()
			params.Set("titles", strings.Join(batch, "|"))
			params.Set("redirects", "")

			resp, err := c.apiGet(gctx, params)
			if err != nil {
				return err
			}
			resolved := parseBatchRedirects(resp.Query, batch)

			mu.Lock()
			for from, to := range resolved {
				result[from] = to
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// parseBatchRedirects maps each input title to its terminal redirect
// destination, accounting for title normalization (e.g. lowercase first
// letter to canonical form) and multi-hop chains.
func parseBatchRedirects(q *queryBody, titles []string) map[string]string {
	if q == nil {
		return nil
	}

	redirectMap := make(map[string]string, len(q.Redirects))
	for _, rd := range q.Redirects {
		redirectMap[rd.From] = rd.To
	}
	normalizeMap := make(map[string]string, len(q.Normalized))
	for _, norm := range q.Normalized {
		normalizeMap[norm.From] = norm.To
	}

	result := make(map[string]string)
	for _, title := range titles {
		canonical := title
		if to, ok := normalizeMap[title]; ok {
			canonical = to
		}
		dest, ok := redirectMap[canonical]
		if !ok {
			continue
		}
		for hop := 0; hop < maxRedirectChain; hop++ {
			next, ok := redirectMap[dest]
			if !ok {
				break
			}
			dest = next
		}
		result[title] = dest
	}
	return result
}

// RedirectsTo finds all pages that redirect to the given page, following
// rdcontinue tokens until complete.
func (c *Client) RedirectsTo(ctx context.Context, page string) ([]string, error) {
	c.logger.Info("retrieving redirects to page", "page", page)

	params := queryParams()
	params.Set("prop", "redirects")
	params.Set("titles", page)
	params.Set("rdlimit", c.pageSize)

	var redirects []string
	for {
		resp, err := c.apiGet(ctx, params)
		if err != nil {
			return nil, err
		}
		if p, ok := firstPage(resp.Query); ok {
			for _, rd := range p.Redirects {
				redirects = append(redirects, rd.Title)
			}
		}

		cont := resp.Continue["rdcontinue"]
		if cont == "" {
			return redirects, nil
		}
		params.Set("rdcontinue", cont)
	}
}
