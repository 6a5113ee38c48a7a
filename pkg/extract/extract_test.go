package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTextPlain(t *testing.T) {
	got, err := Text([]byte("Napoleon was born in 1769 on Corsica."), "bio.txt")
	require.NoError(t, err)
	assert.Equal(t, "Napoleon was born in 1769 on Corsica.", got)
}

func TestTextWhitespaceOnly(t *testing.T) {
	_, err := Text([]byte("   \n\t  "), "scan.txt")
	assert.ErrorIs(t, err, ErrNoText)
}

func TestTextUnsupportedFormat(t *testing.T) {
	_, err := Text([]byte{0x00, 0x01}, "photo.png")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestTextHTML(t *testing.T) {
	page := `<html><head><title>Bio</title></head><body>
		<nav>menu noise</nav>
		<article><h1>Napoleon</h1><p>Born on Corsica.</p><li>Emperor of the French</li></article>
	</body></html>`
	got, err := Text([]byte(page), "bio.html")
	require.NoError(t, err)
	assert.Contains(t, got, "Napoleon")
	assert.Contains(t, got, "Born on Corsica.")
	assert.Contains(t, got, "Emperor of the French")
	assert.NotContains(t, got, "menu noise")
}

func TestTextXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "battle"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Austerlitz"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "year"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 1805))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	got, err := Text(buf.Bytes(), "timeline.xlsx")
	require.NoError(t, err)
	assert.Contains(t, got, "battle Austerlitz")
	assert.Contains(t, got, "year 1805")
}

func TestTextBadPDFBytes(t *testing.T) {
	_, err := Text([]byte("not a pdf"), "broken.pdf")
	assert.Error(t, err)
}

func TestHTMLTextFallsBackWithoutMain(t *testing.T) {
	page := `<html><head><title>Plain</title></head><body><p>only paragraphs here</p></body></html>`
	text, title, err := HTMLText(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "Plain", title)
	assert.Contains(t, text, "only paragraphs here")
}
