package extract

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxPageBytes = 1500000

// FetchURL downloads a page and extracts its text. Only html and plain
// responses are accepted; anything larger than maxPageBytes is refused.
func FetchURL(url string) (text, title string, err error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxPageBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxPageBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "text/plain"):
		s := string(b)
		return s, firstLine(s), nil
	case strings.Contains(ct, "text/html"):
		return HTMLText(strings.NewReader(string(b)))
	default:
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
}

func firstLine(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
