package render

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlTag    = regexp.MustCompile(`(?i)<\s*/?\s*(p|br|ul|ol|li|div|h[1-6]|strong|em|b|i|span|pre|code)\b[^>]*>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// PlainText flattens HTML markup some providers return into the plain
// text/markdown shown by plain-format reads. Text without HTML tags is
// returned as is.
func PlainText(s string) string {
	if !htmlTag.MatchString(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		li.PrependHtml("- ")
		li.AppendHtml("\n")
	})
	doc.Find("p, div, h1, h2, h3, h4, h5, h6, pre").AppendHtml("\n\n")

	lines := strings.Split(doc.Text(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}
