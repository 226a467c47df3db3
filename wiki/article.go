package wiki

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Article retrieves the plaintext extract of a single article.
// A missing page returns a *NotFoundError.
func (c *Client) Article(ctx context.Context, title string) (*Article, error) {
	c.logger.Info("retrieving article text", "title", title)

	params := queryParams()
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("titles", title)

	resp, err := c.apiGet(ctx, params)
	if err != nil {
		return nil, err
	}

	page, ok := firstPage(resp.Query)
	if !ok || page.Missing != nil {
		return nil, &NotFoundError{Title: title, Lang: c.lang}
	}

	a := &Article{
		Title:  page.Title,
		Text:   page.Extract,
		PageID: page.PageID,
		Lang:   c.lang,
	}
	if a.Title == "" {
		a.Title = title
	}
	return a, nil
}

// Articles retrieves multiple articles, fanning out over at most
// MaxConcurrency parallel requests. Missing pages are skipped with a
// warning; results are returned in input order. Any other failure aborts
// the batch.
func (c *Client) Articles(ctx context.Context, titles []string) ([]Article, error) {
	fetched := make([]*Article, len(titles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)
	for i, title := range titles {
		g.Go(func() error {
			a, err := c.Article(gctx, title)
			if err != nil {
				if IsNotFound(err) {
					c.logger.Warn("skipping missing page", "title", title, "lang", c.lang)
					return nil
				}
				return err
			}
			fetched[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(titles))
	for _, a := range fetched {
		if a != nil {
			articles = append(articles, *a)
		}
	}
	if skipped := len(titles) - len(articles); skipped > 0 {
		c.logger.Warn("skipped missing pages", "skipped", skipped, "requested", len(titles))
	}
	return articles, nil
}
