package pipeline

import "html/template"

// Theme is the colour triple applied to one card or category.
type Theme struct {
	Accent     template.CSS // decoration dot, badge, section bar
	Title      template.CSS // heading text
	Background template.CSS // card background
}

// themes rotate blue, teal, orange, purple.
var themes = [...]Theme{
	{Accent: "#4A90E2", Title: "#2C5F8D", Background: "#E8F4FD"},
	{Accent: "#00C9A7", Title: "#008B6B", Background: "#E0F7F4"},
	{Accent: "#FF8C42", Title: "#CC6D35", Background: "#FFF4ED"},
	{Accent: "#9B59B6", Title: "#7D3C98", Background: "#F4E8F7"},
}

// ThemeCount is the length of the rotation.
const ThemeCount = len(themes)

// ThemeFor returns the theme of the i-th item.
func ThemeFor(i int) Theme {
	i %= ThemeCount
	if i < 0 {
		i += ThemeCount
	}
	return themes[i]
}
