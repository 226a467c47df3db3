package wiki

import (
	"context"
	"strconv"
	"strings"
)

// Links retrieves incoming or outgoing links for a page, following
// continuation tokens until complete. Links are filtered to the given
// namespaces; nil means the main article namespace.
func (c *Client) Links(ctx context.Context, page string, direction LinkDirection, namespaces []int) ([]PageLink, error) {
	if len(namespaces) == 0 {
		namespaces = []int{int(NamespaceMain)}
	}
	nsParts := make([]string, len(namespaces))
	for i, ns := range namespaces {
		nsParts[i] = strconv.Itoa(ns)
	}
	nsFilter := strings.Join(nsParts, "|")

	c.logger.Info("retrieving links", "page", page, "direction", direction)

	params := queryParams()
	params.Set("titles", page)

	var continueKey string
	if direction == Incoming {
		params.Set("prop", "linkshere")
		params.Set("lhprop", "pageid|title")
		params.Set("lhlimit", c.pageSize)
		params.Set("lhnamespace", nsFilter)
		continueKey = "lhcontinue"
	} else {
		params.Set("prop", "links")
		params.Set("plnamespace", nsFilter)
		params.Set("pllimit", c.pageSize)
		continueKey = "plcontinue"
	}

	var links []PageLink
	for {
		resp, err := c.apiGet(ctx, params)
		if err != nil {
			return nil, err
		}
		if p, ok := firstPage(resp.Query); ok {
			if direction == Incoming {
				links = append(links, p.LinksHere...)
			} else {
				links = append(links, p.Links...)
			}
		}

		cont := resp.Continue[continueKey]
		if cont == "" {
			return links, nil
		}
		params.Set(continueKey, cont)
	}
}
