package wiki

import (
	"context"
	"strconv"
)

// Templates retrieves the templates transcluded on a page, following
// tlcontinue tokens until complete. Only templates in the Template:
// namespace are returned, with their prefix.
func (c *Client) Templates(ctx context.Context, page string) ([]string, error) {
	c.logger.Info("retrieving templates", "page", page)

	params := queryParams()
	params.Set("prop", "templates")
	params.Set("titles", page)
	params.Set("tlnamespace", strconv.Itoa(int(NamespaceTemplate)))
	params.Set("tllimit", c.pageSize)

	var templates []string
	for {
		resp, err := c.apiGet(ctx, params)
		if err != nil {
			return nil, err
		}
		if p, ok := firstPage(resp.Query); ok {
			for _, tl := range p.Templates {
				templates = append(templates, tl.Title)
			}
		}

		cont := resp.Continue["tlcontinue"]
		if cont == "" {
			return templates, nil
		}
		params.Set("tlcontinue", cont)
	}
}
