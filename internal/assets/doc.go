// Package assets provides the HTML fragment templates for each digest layout.
//
// Templates are embedded at compile time and grouped in one directory per
// layout:
//
//	templates/
//	├── simple/
//	│   ├── page.html     # outer container, wraps header + cards + footer
//	│   ├── header.html   # date banner
//	│   ├── card.html     # one article card
//	│   └── footer.html   # divider + END
//	└── rich/
//	    ├── page.html     # editor container chain
//	    ├── header.html
//	    ├── overview.html
//	    ├── section.html  # category title + its entries
//	    ├── entry.html    # numbered article entry
//	    └── footer.html
//
// Files hold plain fragment markup; the assembler parses each part under
// its own name into one html/template tree, so parts reference each other
// with {{template "card" .}}.
package assets
