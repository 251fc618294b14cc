// Package mpdigest renders article digests as HTML fragments that paste
// cleanly into the WeChat Official Account editor.
//
// # Quick Start
//
//	conv, err := mpdigest.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := conv.Convert(ctx, &mpdigest.ConvertRequest{
//	    Articles: []mpdigest.ArticleItem{
//	        {Title: "A", Summary: "**b**", URL: "https://mp.weixin.qq.com/s/x"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.HTML)
//
// # Layouts
//
// The simple layout renders one colour-rotated card per article under a
// dated header. The rich layout groups articles by category, numbers them,
// and can carry a pre-formatted overview block. LayoutAuto picks rich when
// the request has an overview or any categorised article.
//
// # Pipeline
//
//  1. Summary Markdown to HTML via Goldmark (tables, footnotes, highlighting)
//  2. Fragment assembly from embedded html/template sets
//  3. Inline style injection for p, lists, strong, blockquote and headings
//
// The editor strips stylesheets and classes, so every colour and spacing
// rule ends up in a style attribute.
package mpdigest
