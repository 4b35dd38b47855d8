package extract

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func firstTable(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	sel := doc.Find("table").First()
	if sel.Length() == 0 {
		t.Fatalf("fixture has no table")
	}
	return sel
}

func TestExtractHeaderAndNestedAnchor(t *testing.T) {
	html := `<table>
		<tr><th>Name</th><th>Link</th></tr>
		<tr><td>Alice</td><td><a href="http://x">Profile</a></td></tr>
	</table>`
	res := Extract(firstTable(t, html), Options{Attributes: []string{"href"}, NestedTags: []string{"a"}})

	wantCols := []string{"name_content", "link_content", "link_a0_content", "link_a0_href"}
	if !reflect.DeepEqual(res.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", res.Columns, wantCols)
	}
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	want := Record{
		"name_content":    "Alice",
		"link_content":    "Profile",
		"link_a0_content": "Profile",
		"link_a0_href":    "http://x",
	}
	if !reflect.DeepEqual(res.Records[0], want) {
		t.Fatalf("record = %v, want %v", res.Records[0], want)
	}
}

func TestExtractNoHeaderFallsBackToPositionalNames(t *testing.T) {
	html := `<table>
		<tr><td>a</td><td>b</td></tr>
		<tr><td>c</td><td>d</td></tr>
	</table>`
	res := Extract(firstTable(t, html), Options{})

	wantCols := []string{"Column0_content", "Column1_content"}
	if !reflect.DeepEqual(res.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", res.Columns, wantCols)
	}
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Records))
	}
	if res.Records[1]["Column1_content"] != "d" {
		t.Fatalf("unexpected second record: %v", res.Records[1])
	}
}

func TestExtractOnlyFirstHeaderRowCounts(t *testing.T) {
	html := `<table>
		<tr><td>preamble</td></tr>
		<tr><th>Name</th></tr>
		<tr><th>NotAHeader</th></tr>
		<tr><td>value</td></tr>
	</table>`
	res := Extract(firstTable(t, html), Options{})

	// The row above the header row is excluded; the later th row is data.
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Records))
	}
	if res.Records[0]["name_content"] != "NotAHeader" {
		t.Fatalf("later th row should be data: %v", res.Records[0])
	}
	if res.Records[1]["name_content"] != "value" {
		t.Fatalf("unexpected data record: %v", res.Records[1])
	}
}

func TestExtractEmptyRowProducesNoRecord(t *testing.T) {
	html := `<table>
		<tr><th>A</th><th>B</th></tr>
		<tr><td></td><td>  </td></tr>
		<tr><td>x</td><td></td></tr>
	</table>`
	res := Extract(firstTable(t, html), Options{})

	if len(res.Records) != 1 {
		t.Fatalf("expected only the non-empty row, got %d records", len(res.Records))
	}
	if res.Records[0]["a_content"] != "x" {
		t.Fatalf("unexpected record: %v", res.Records[0])
	}
	if _, ok := res.Records[0]["b_content"]; ok {
		t.Fatalf("empty cell must not emit a field: %v", res.Records[0])
	}
}

func TestExtractHeadersAloneDoNotPopulateRegistry(t *testing.T) {
	html := `<table><tr><th>Name</th><th>Link</th></tr></table>`
	res := Extract(firstTable(t, html), Options{})

	if len(res.Records) != 0 {
		t.Fatalf("expected no records, got %d", len(res.Records))
	}
	if len(res.Columns) != 0 {
		t.Fatalf("registry must stay empty without data rows, got %v", res.Columns)
	}
}

func TestExtractCellAttributesCaptured(t *testing.T) {
	html := `<table>
		<tr><th>City</th></tr>
		<tr><td title="capital">Helsinki</td></tr>
	</table>`
	res := Extract(firstTable(t, html), Options{Attributes: []string{"href", "title"}})

	wantCols := []string{"city_content", "city_title"}
	if !reflect.DeepEqual(res.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", res.Columns, wantCols)
	}
	if res.Records[0]["city_title"] != "capital" {
		t.Fatalf("unexpected record: %v", res.Records[0])
	}
}

func TestExtractRaggedRowsKeepPartialRecords(t *testing.T) {
	html := `<table>
		<tr><th>A</th><th>B</th></tr>
		<tr><td>1</td><td>2</td></tr>
		<tr><td>3</td></tr>
	</table>`
	res := Extract(firstTable(t, html), Options{})

	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Records))
	}
	if _, ok := res.Records[1]["b_content"]; ok {
		t.Fatalf("short row should miss b_content: %v", res.Records[1])
	}
	for _, rec := range res.Records {
		for key := range rec {
			if !contains(res.Columns, key) {
				t.Fatalf("record key %q not in registry %v", key, res.Columns)
			}
		}
	}
}

func TestExtractScriptContentPruned(t *testing.T) {
	html := `<table>
		<tr><th>A</th></tr>
		<tr><td>real<script>ignore()</script></td></tr>
	</table>`
	res := Extract(firstTable(t, html), Options{})

	if got := res.Records[0]["a_content"]; got != "real" {
		t.Fatalf("script text leaked into cell: %q", got)
	}
}

func TestExtractDeterministicAcrossRuns(t *testing.T) {
	html := `<table>
		<tr><th>Name</th><th>Link</th></tr>
		<tr><td>Alice</td><td><a href="http://x" title="p">Profile</a> and <a href="http://y">Alt</a></td></tr>
		<tr><td title="t">Bob</td><td></td></tr>
	</table>`
	opts := Options{Attributes: []string{"href", "title"}, NestedTags: []string{"a"}}

	first := Extract(firstTable(t, html), opts)
	second := Extract(firstTable(t, html), opts)

	if !reflect.DeepEqual(first.Columns, second.Columns) {
		t.Fatalf("column order differs across runs: %v vs %v", first.Columns, second.Columns)
	}
	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Fatalf("records differ across runs: %v vs %v", first.Records, second.Records)
	}
	// Nested matches are indexed in document order.
	if first.Records[0]["link_a1_href"] != "http://y" {
		t.Fatalf("second anchor not indexed as a1: %v", first.Records[0])
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
