package nav

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"

	"WealthPlanner/internal/model"
)

// HTTPFetcher implements Fetcher against an mfapi-style NAV history endpoint:
// GET {base}/mf/{code} returns the fund's full daily NAV series.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
	Retries int
}

// NewHTTPFetcher creates a fetcher with optional proxy support and a bounded
// retry count around each history request.
func NewHTTPFetcher(baseURL, proxyURL string, timeout time.Duration, retries int) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		Retries: retries,
	}
}

func (f *HTTPFetcher) Name() string { return "mfapi" }

// navHistory is the expected JSON shape of the history endpoint.
type navHistory struct {
	Data []struct {
		Date string `json:"date"`
		Nav  string `json:"nav"`
	} `json:"data"`
	Status string `json:"status"`
}

// FetchHistory fetches the full NAV series with bounded retries. Rows that
// fail to parse are skipped; the result is sorted ascending by date.
func (f *HTTPFetcher) FetchHistory(ctx context.Context, code string) ([]model.NavPoint, error) {
	var lastErr error
	for attempt := 0; attempt <= f.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
			log.Printf("[WARN] nav fetch retry %d/%d for %s: %v", attempt, f.Retries, code, lastErr)
		}
		points, err := f.fetchOnce(ctx, code)
		if err == nil {
			return points, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("fetch nav history for %s: %w", code, lastErr)
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, code string) ([]model.NavPoint, error) {
	endpoint := fmt.Sprintf("%s/mf/%s", f.BaseURL, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nav fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nav read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nav fetch: status %d, body: %s", resp.StatusCode, string(body))
	}

	var hist navHistory
	if err := json.Unmarshal(body, &hist); err != nil {
		return nil, fmt.Errorf("nav decode: %w", err)
	}

	points := make([]model.NavPoint, 0, len(hist.Data))
	for _, row := range hist.Data {
		date, err := time.Parse("02-01-2006", row.Date)
		if err != nil {
			continue
		}
		var nav float64
		if _, err := fmt.Sscanf(row.Nav, "%f", &nav); err != nil || nav <= 0 {
			continue
		}
		points = append(points, model.NavPoint{Date: date, Nav: nav})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}
