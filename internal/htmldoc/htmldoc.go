package htmldoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// DetectCharset returns the best-guess charset label for raw document bytes,
// falling back to utf-8 when detection fails.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil || result.Charset == "" {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// Load parses raw HTML bytes into a query-able document. When forceEncoding
// is non-empty it names the source encoding and detection is skipped;
// otherwise the charset is sniffed from the bytes. Decoding problems fall
// back to parsing the bytes as-is: the parser is lenient and malformed input
// yields a best-effort tree rather than an error.
func Load(data []byte, forceEncoding string) (*goquery.Document, error) {
	if label := strings.TrimSpace(forceEncoding); label != "" {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
		}
		decoded, err := enc.NewDecoder().Bytes(data)
		if err == nil {
			data = decoded
		}
		return goquery.NewDocumentFromReader(bytes.NewReader(data))
	}

	detected := DetectCharset(data)
	utf8Reader, err := charset.NewReader(bytes.NewReader(data), "text/html; charset="+detected)
	if err != nil {
		return goquery.NewDocumentFromReader(bytes.NewReader(data))
	}
	return goquery.NewDocumentFromReader(utf8Reader)
}
