package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/htmlcsv/internal/normalize"
)

// Options controls which cell details beyond visible text are captured.
type Options struct {
	// Attributes lists attribute names read from each data cell and from
	// each matched nested element, e.g. href, title.
	Attributes []string
	// NestedTags lists element tag names to search for inside each data
	// cell, e.g. a, input, span. Matches are indexed in document order.
	NestedTags []string
}

// Record is one flattened output row: column name to string value.
type Record map[string]string

// Result is the flattened form of one table: the ordered set of every
// column name any record produced, and the records themselves in row order.
type Result struct {
	Columns []string
	Records []Record
}

// Extract flattens one table element into records. The first row containing
// header cells defines column names; rows above and including it carry no
// data. Without any header row every row is data and columns fall back to
// positional names. Output is a pure function of the table structure and
// options: record order and column order are identical on every run.
func Extract(table *goquery.Selection, opts Options) Result {
	// Script/style subtrees would otherwise leak into cell text.
	table.Find("script,style,noscript").Remove()

	rows := table.Find("tr")
	headers, headerRow := detectHeaders(rows)

	reg := &registry{seen: make(map[string]struct{})}
	var records []Record
	rows.Each(func(i int, row *goquery.Selection) {
		if i <= headerRow {
			return
		}
		rec := make(Record)
		row.Find("th,td").Each(func(col int, cell *goquery.Selection) {
			extractCell(cell, baseName(headers, col), opts, reg, rec)
		})
		if len(rec) > 0 {
			records = append(records, rec)
		}
	})

	return Result{Columns: reg.names, Records: records}
}

// detectHeaders returns the normalized text of the header cells in the first
// row that has any, along with that row's index. Only the first such row
// counts; a table with no header cells anywhere returns (nil, -1).
func detectHeaders(rows *goquery.Selection) ([]string, int) {
	var headers []string
	headerRow := -1
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("th")
		if cells.Length() == 0 {
			return true
		}
		cells.Each(func(_ int, cell *goquery.Selection) {
			headers = append(headers, normalize.Identifier(cell.Text()))
		})
		headerRow = i
		return false
	})
	return headers, headerRow
}

func baseName(headers []string, col int) string {
	if col < len(headers) && headers[col] != "" {
		return headers[col]
	}
	return fmt.Sprintf("Column%d", col)
}

func extractCell(cell *goquery.Selection, base string, opts Options, reg *registry, rec Record) {
	if text := strings.TrimSpace(cell.Text()); text != "" {
		emit(reg, rec, base+"_content", text)
	}
	for _, attr := range opts.Attributes {
		if v, ok := cell.Attr(attr); ok && v != "" {
			emit(reg, rec, base+"_"+attr, v)
		}
	}
	for _, tag := range opts.NestedTags {
		cell.Find(tag).Each(func(i int, nested *goquery.Selection) {
			prefix := fmt.Sprintf("%s_%s%d", base, tag, i)
			if text := strings.TrimSpace(nested.Text()); text != "" {
				emit(reg, rec, prefix+"_content", text)
			}
			for _, attr := range opts.Attributes {
				if v, ok := nested.Attr(attr); ok && v != "" {
					emit(reg, rec, prefix+"_"+attr, v)
				}
			}
		})
	}
}

// emit records the field on the current row and registers its column on
// first sight. A name emitted twice within one row keeps the later value.
func emit(reg *registry, rec Record, name, value string) {
	reg.add(name)
	rec[name] = value
}

// registry accumulates column names in first-seen order.
type registry struct {
	names []string
	seen  map[string]struct{}
}

func (r *registry) add(name string) {
	if _, ok := r.seen[name]; ok {
		return
	}
	r.seen[name] = struct{}{}
	r.names = append(r.names, name)
}
