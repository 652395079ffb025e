package serviceImp

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blankLinesRX = regexp.MustCompile(`\n{3,}`)

// PlainText reduces editor HTML to text paragraphs. Input without markup is
// only trimmed.
func PlainText(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r", ""))
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script,style").Remove()

	const blocks = "h1,h2,h3,p,li,blockquote"
	var parts []string
	doc.Find(blocks).Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered(blocks).Length() > 0 {
			return
		}
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	if len(parts) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return blankLinesRX.ReplaceAllString(strings.Join(parts, "\n\n"), "\n\n")
}
