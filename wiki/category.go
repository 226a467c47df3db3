package wiki

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const categoryPrefix = "Category:"

// NormalizeCategory ensures a category title carries the "Category:" prefix.
func NormalizeCategory(category string) string {
	if strings.HasPrefix(category, categoryPrefix) {
		return category
	}
	return categoryPrefix + category
}

// StripCategoryPrefix removes the "Category:" prefix if present.
func StripCategoryPrefix(title string) string {
	return strings.TrimPrefix(title, categoryPrefix)
}

func cmType(ns Namespace) (string, error) {
	switch ns {
	case NamespaceMain:
		return "page", nil
	case NamespaceCategory:
		return "subcat", nil
	default:
		return "", fmt.Errorf("unsupported namespace: %d", ns)
	}
}

// CategoryMembers retrieves the pages (NamespaceMain) or subcategories
// (NamespaceCategory) within a category, following cmcontinue tokens until
// the listing is complete. The "Category:" prefix is added if missing.
func (c *Client) CategoryMembers(ctx context.Context, category string, ns Namespace) ([]CategoryMember, error) {
	memberType, err := cmType(ns)
	if err != nil {
		return nil, err
	}
	title := NormalizeCategory(category)
	c.logger.Info("retrieving category members", "category", title, "type", memberType)

	params := queryParams()
	params.Set("list", "categorymembers")
	params.Set("cmtitle", title)
	params.Set("cmtype", memberType)
	params.Set("cmlimit", c.pageSize)
	params.Set("cmnamespace", strconv.Itoa(int(ns)))

	var members []CategoryMember
	for {
		resp, err := c.apiGet(ctx, params)
		if err != nil {
			return nil, err
		}
		if resp.Query != nil {
			members = append(members, resp.Query.CategoryMembers...)
		}

		cont := resp.Continue["cmcontinue"]
		if cont == "" {
			return members, nil
		}
		params.Set("cmcontinue", cont)
	}
}

// PageCategories retrieves the categories a page belongs to, with the
// "Category:" prefix. Hidden categories (maintenance, tracking) are
// excluded unless includeHidden is set.
func (c *Client) PageCategories(ctx context.Context, page string, includeHidden bool) ([]string, error) {
	c.logger.Info("retrieving page categories", "page", page)

	params := queryParams()
	params.Set("prop", "categories")
	params.Set("titles", page)
	params.Set("cllimit", c.pageSize)
	if !includeHidden {
		params.Set("clshow", "!hidden")
	}

	var categories []string
	for {
		resp, err := c.apiGet(ctx, params)
		if err != nil {
			return nil, err
		}
		if resp.Query != nil {
			for _, p := range resp.Query.Pages {
				for _, cat := range p.Categories {
					categories = append(categories, cat.Title)
				}
			}
		}

		cont := resp.Continue["clcontinue"]
		if cont == "" {
			return categories, nil
		}
		params.Set("clcontinue", cont)
	}
}
