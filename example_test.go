package mpdigest_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-mpdigest"
)

// Example renders a single platform article with the simple layout.
func Example() {
	conv, err := mpdigest.NewConverter(mpdigest.WithNow(func() time.Time {
		return time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	resp, err := conv.Convert(context.Background(), &mpdigest.ConvertRequest{
		Articles: []mpdigest.ArticleItem{
			{Title: "A", Summary: "**b**", URL: "https://mp.weixin.qq.com/x"},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Contains(resp.HTML, "03月05日 · 新闻资讯"))
	fmt.Println(strings.Contains(resp.HTML, "查看原文"))
	// Output:
	// true
	// true
}

// Example_rich groups categorised articles under an overview.
func Example_rich() {
	conv, err := mpdigest.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	resp, err := conv.Convert(context.Background(), &mpdigest.ConvertRequest{
		Overview: "<p>Three launches today.</p>",
		Articles: []mpdigest.ArticleItem{
			{Title: "X", Summary: "x", Category: "ai_product"},
			{Title: "A", Summary: "a", Category: "model"},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	model := strings.Index(resp.HTML, `data-category="model"`)
	other := strings.Index(resp.HTML, `data-category="ai_product"`)
	fmt.Println(model < other)
	// Output: true
}
