// Package extract turns uploaded document bytes into plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoText means the document yielded no usable text after trimming.
	ErrNoText = errors.New("no extractable text")
	// ErrUnsupported means the file format is not handled.
	ErrUnsupported = errors.New("unsupported document format")
)

// Text extracts plain text from raw document bytes. The format is chosen
// by the file name's extension. Pages or cells that yield nothing
// contribute an empty string; only a fully empty result is an error.
func Text(data []byte, name string) (string, error) {
	var text string
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		text, err = pdfText(data)
	case ".txt", ".md":
		text = string(data)
	case ".html", ".htm":
		text, _, err = HTMLText(bytes.NewReader(data))
	case ".xlsx":
		text, err = xlsxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", name, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrNoText, name)
	}
	return text, nil
}

func pdfText(data []byte) (string, error) {
	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	for i := 1; i <= rdr.NumPage(); i++ {
		p := rdr.Page(i)
		if p.V.IsNull() {
			continue
		}
		// a single unreadable page must not sink the whole document
		txt, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(txt)
	}
	return buf.String(), nil
}

// HTMLText pulls the main content out of an HTML page: main/article if
// present, headers, paragraphs and list items, in document order.
func HTMLText(r io.Reader) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection // fallback
	}
	var parts []string
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n"), title, nil
}

func xlsxText(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer f.Close()

	var parts []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			if line := strings.TrimSpace(strings.Join(row, " ")); line != "" {
				parts = append(parts, line)
			}
		}
	}
	return strings.Join(parts, "\n"), nil
}
