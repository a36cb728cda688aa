package faq

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/xuri/excelize/v2"

	"college-chatbot-be/pkg/store"
)

// SchemaError reports that the spreadsheet is missing a required column.
// It carries the discovered column names so the user can see what the
// sheet actually contains.
type SchemaError struct {
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required columns not found. Columns: %v", e.Columns)
}

// Snapshot is one immutable load of the FAQ sheet. Fingerprint is a SHA-256
// over the document set, used to key the vector index cache.
type Snapshot struct {
	Documents   []store.Document
	Fingerprint string
	LoadedAt    time.Time
}

// Loader fetches the remote FAQ spreadsheet and converts rows into
// retrievable text documents. Loads are cached for the configured TTL;
// within the window repeated calls return the same snapshot.
type Loader struct {
	url    string
	client *http.Client
	cache  *cache.Cache
	ttl    time.Duration
}

const snapshotCacheKey = "faq_snapshot"

func NewLoader(url string, ttl time.Duration) *Loader {
	return &Loader{
		url: url,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		cache: cache.New(ttl, ttl),
		ttl:   ttl,
	}
}

// Load returns the cached snapshot when fresh, otherwise fetches and
// parses the sheet. A failed load is not cached; the next call retries.
func (l *Loader) Load() (*Snapshot, error) {
	if x, found := l.cache.Get(snapshotCacheKey); found {
		return x.(*Snapshot), nil
	}

	snapshot, err := l.fetch()
	if err != nil {
		return nil, err
	}

	l.cache.Set(snapshotCacheKey, snapshot, cache.DefaultExpiration)
	return snapshot, nil
}

func (l *Loader) fetch() (*Snapshot, error) {
	res, err := l.client.Get(l.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch FAQ sheet: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch FAQ sheet: status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read FAQ sheet: %w", err)
	}

	docs, err := ParseWorkbook(body)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Documents:   docs,
		Fingerprint: fingerprint(docs),
		LoadedAt:    time.Now(),
	}, nil
}

// ParseWorkbook reads the first sheet of an xlsx payload and renders each
// usable row as a "Category/Q/A" text block.
func ParseWorkbook(payload []byte) ([]store.Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to parse FAQ sheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("failed to parse FAQ sheet: workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse FAQ sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Columns: []string{}}
	}

	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(col))
	}

	qCol := findColumn(header, "question")
	aCol := findColumn(header, "response", "answer")
	catCol := findColumn(header, "category")

	if qCol < 0 || aCol < 0 {
		return nil, &SchemaError{Columns: header}
	}

	var docs []store.Document
	for _, row := range rows[1:] {
		q := cellAt(row, qCol)
		a := cellAt(row, aCol)
		if q == "" || a == "" {
			continue
		}

		var content string
		if catCol >= 0 {
			content = fmt.Sprintf("Category: %s\nQ: %s\nA: %s", cellAt(row, catCol), q, a)
		} else {
			content = fmt.Sprintf("Q: %s\nA: %s", q, a)
		}

		docs = append(docs, store.Document{
			ID:      len(docs),
			Content: content,
		})
	}

	return docs, nil
}

// findColumn returns the index of the first header cell containing any of
// the given substrings, or -1.
func findColumn(header []string, substrings ...string) int {
	for i, col := range header {
		for _, sub := range substrings {
			if strings.Contains(col, sub) {
				return i
			}
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func fingerprint(docs []store.Document) string {
	h := sha256.New()
	for _, doc := range docs {
		h.Write([]byte(doc.Content))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
