package org

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/splax/worksim/internal/corpora"
)

// DefaultCompanyListURL is a public CSV of company names.
const DefaultCompanyListURL = "https://raw.githubusercontent.com/datasets/s-and-p-500-companies/master/data/constituents.csv"

const maxScrapedNames = 200

// CompanyCorpus supplies candidate organization names.
type CompanyCorpus interface {
	CompanyNames(ctx context.Context) []string
}

// StaticCorpus returns the built-in company names.
type StaticCorpus struct{}

// CompanyNames implements CompanyCorpus.
func (StaticCorpus) CompanyNames(context.Context) []string {
	return append([]string(nil), corpora.CompanyNames...)
}

// WebCorpus extends the built-in names with a public list. Any failure
// leaves the built-in names in place.
type WebCorpus struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewWebCorpus returns a corpus that fetches url. An empty url selects
// DefaultCompanyListURL.
func NewWebCorpus(url string, client *http.Client, logger *slog.Logger) *WebCorpus {
	if strings.TrimSpace(url) == "" {
		url = DefaultCompanyListURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WebCorpus{url: url, client: client, logger: logger}
}

// CompanyNames implements CompanyCorpus.
func (w *WebCorpus) CompanyNames(ctx context.Context) []string {
	names := StaticCorpus{}.CompanyNames(ctx)
	scraped, err := w.fetch(ctx)
	if err != nil {
		w.logger.Warn("company corpus fetch failed, using built-in names", "url", w.url, "error", err)
		return names
	}
	seen := make(map[string]struct{}, len(names)+len(scraped))
	for _, n := range names {
		seen[n] = struct{}{}
	}
	for _, n := range scraped {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	w.logger.Info("company corpus loaded", "names", len(names))
	return names
}

func (w *WebCorpus) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build corpus request: %w", err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch corpus: status %s", resp.Status)
	}
	return parseCompanyCSV(resp.Body)
}

func parseCompanyCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read corpus header: %w", err)
	}
	col := 0
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "security", "name", "company":
			col = i
		}
	}
	var names []string
	for len(names) < maxScrapedNames {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read corpus row: %w", err)
		}
		if len(record) <= col {
			continue
		}
		if name := strings.TrimSpace(record[col]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
