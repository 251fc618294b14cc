// Package pipeline builds the digest HTML from article records.
//
// The stages run in this order:
//   - Markdown summary to HTML fragment via Goldmark
//   - Link classification (platform article or external source)
//   - Layout assembly from embedded html/template fragments
//     (simple colour cards, or rich category sections)
//   - Inline style injection for tags the platform editor would leave bare
//
// The publishing editor discards <style> blocks and class selectors, so every
// visual rule has to end up in a style attribute. Assembly writes inline
// styles on the fragments it owns; InlineStyles covers the tags that come out
// of Markdown conversion.
package pipeline
