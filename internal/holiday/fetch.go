package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"daykeeper/internal/datekey"
	"daykeeper/internal/models"
)

// DefaultBaseURL is the public holiday feed queried per year and country.
const DefaultBaseURL = "https://date.nager.at"

// Fetcher retrieves the remote fixed-holiday list for a year.
type Fetcher interface {
	FixedHolidays(ctx context.Context, year int) ([]models.Holiday, error)
}

// HTTPFetcher fetches public holidays from a Nager.Date-compatible
// endpoint. The response is untrusted: records are validated structurally
// before they reach the merge.
type HTTPFetcher struct {
	client  *http.Client
	baseURL string
	country string
}

// NewHTTPFetcher creates a fetcher for the given endpoint and country
// code. An empty baseURL selects the public feed.
func NewHTTPFetcher(baseURL, country string) *HTTPFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if country == "" {
		country = "US"
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		country: country,
	}
}

type feedRecord struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// FixedHolidays fetches and validates the holiday list for year. Any
// network failure, non-2xx status or malformed body is returned as an
// error; individual records with a bad date or empty name are dropped.
func (f *HTTPFetcher) FixedHolidays(ctx context.Context, year int) ([]models.Holiday, error) {
	url := fmt.Sprintf("%s/api/v3/PublicHolidays/%d/%s", f.baseURL, year, f.country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holiday feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("holiday feed returned %s", resp.Status)
	}

	var records []feedRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("holiday feed decode: %w", err)
	}

	out := make([]models.Holiday, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" || !datekey.ValidDay(rec.Date) {
			continue
		}
		out = append(out, models.Holiday{Name: rec.Name, Date: rec.Date})
	}
	return out, nil
}
