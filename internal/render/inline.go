package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// InlineCSS embeds a stylesheet into an HTML document as a single <style>
// block inserted before the closing head tag. Documents without a head get
// the block prepended so the export is still self-contained. The body
// content is left untouched.
func InlineCSS(html, css string) (string, error) {
	if strings.TrimSpace(css) == "" {
		return html, nil
	}

	block := "<style>\n" + css + "\n</style>"
	if !strings.Contains(strings.ToLower(html), "<head") {
		return block + html, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse export HTML: %w", err)
	}
	doc.Find("head").First().AppendHtml(block)

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize export HTML: %w", err)
	}
	return out, nil
}
