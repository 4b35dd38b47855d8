package locate

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/htmlcsv/internal/normalize"
)

// Table is one table element found in a document, with its document-order
// ordinal and the name derived from the nearest preceding heading-like
// sibling (empty when no such sibling exists).
type Table struct {
	Sel   *goquery.Selection
	Index int
	Name  string
}

// Tables enumerates every table element in document order. For each table it
// searches backward through preceding siblings for the first element matching
// any of the given CSS selectors; the match's text, cut at the first
// occurrence of separator and normalized, becomes the table name. Absence of
// a match is a normal outcome and yields an empty name. Every table consumes
// an ordinal, including tables that later turn out to hold no data.
func Tables(doc *goquery.Document, selectors []string, separator string) []Table {
	var out []Table
	doc.Find("table").Each(func(i int, sel *goquery.Selection) {
		out = append(out, Table{
			Sel:   sel,
			Index: i,
			Name:  nameFor(sel, selectors, separator),
		})
	})
	return out
}

func nameFor(table *goquery.Selection, selectors []string, separator string) string {
	for cur := table.Prev(); cur.Length() > 0; cur = cur.Prev() {
		if !matchesAny(cur, selectors) {
			continue
		}
		text := cur.Text()
		if separator != "" {
			if cut := strings.Index(text, separator); cut >= 0 {
				text = text[:cut]
			}
		}
		return normalize.Identifier(text)
	}
	return ""
}

func matchesAny(sel *goquery.Selection, selectors []string) bool {
	for _, s := range selectors {
		if s == "" {
			continue
		}
		if sel.Is(s) {
			return true
		}
	}
	return false
}
