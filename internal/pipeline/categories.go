package pipeline

import "strings"

// Article is one record to render.
type Article struct {
	Title    string
	Summary  string // Markdown
	URL      string
	Category string
}

// DefaultCategory receives articles without a category.
const DefaultCategory = "news"

// knownCategories lists the built-in categories in display order.
var knownCategories = []struct {
	key   string
	title string
}{
	{"news", "AI 资讯"},
	{"model", "模型动态"},
	{"product", "产品应用"},
}

// CategoryTitle returns the display name of a category key.
// Unknown keys are displayed as given.
func CategoryTitle(key string) string {
	for _, c := range knownCategories {
		if c.key == key {
			return c.title
		}
	}
	return key
}

// CategoryKey normalizes a raw category value. Known keys match
// case-insensitively; unknown values are only trimmed.
func CategoryKey(raw string) string {
	key := strings.TrimSpace(raw)
	if key == "" {
		return DefaultCategory
	}
	lower := strings.ToLower(key)
	for _, c := range knownCategories {
		if c.key == lower {
			return c.key
		}
	}
	return key
}

// Group is the articles of one category, in input order.
type Group struct {
	Key      string
	Title    string
	Articles []Article
}

// GroupByCategory partitions articles by category. Known categories come
// first in their fixed order, then unknown categories in first-seen order.
// Categories with no articles are omitted.
func GroupByCategory(articles []Article) []Group {
	byKey := make(map[string]*Group)
	var unknown []string

	for _, a := range articles {
		key := CategoryKey(a.Category)
		g, ok := byKey[key]
		if !ok {
			g = &Group{Key: key, Title: CategoryTitle(key)}
			byKey[key] = g
			if g.Title == key {
				unknown = append(unknown, key)
			}
		}
		g.Articles = append(g.Articles, a)
	}

	groups := make([]Group, 0, len(byKey))
	for _, c := range knownCategories {
		if g, ok := byKey[c.key]; ok {
			groups = append(groups, *g)
		}
	}
	for _, key := range unknown {
		groups = append(groups, *byKey[key])
	}
	return groups
}
