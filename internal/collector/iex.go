package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"HurstLab/internal/model"
)

// IEXFetcher implements Fetcher against an IEX-cloud style chart endpoint.
type IEXFetcher struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewIEXFetcher creates a new fetcher with optional proxy support.
func NewIEXFetcher(baseURL, token, proxyURL string) *IEXFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &IEXFetcher{
		BaseURL: baseURL,
		Token:   token,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *IEXFetcher) Name() string { return "iex" }

// iexBar is the JSON shape of one chart entry.
type iexBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func (f *IEXFetcher) FetchBars(ctx context.Context, symbol, timeframe string) ([]model.Bar, error) {
	q := url.Values{}
	q.Set("chartCloseOnly", "true")
	if f.Token != "" {
		q.Set("token", f.Token)
	}
	endpoint := fmt.Sprintf("%s/stable/stock/%s/chart/%s?%s",
		f.BaseURL, url.PathEscape(symbol), url.PathEscape(timeframe), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("iex fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("iex fetch: status %d, body: %s", resp.StatusCode, string(body))
	}

	var raw []iexBar
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("iex decode: %w", err)
	}
	bars := make([]model.Bar, 0, len(raw))
	for _, rb := range raw {
		d, err := time.Parse("2006-01-02", rb.Date)
		if err != nil {
			return nil, fmt.Errorf("iex date %q: %w", rb.Date, err)
		}
		bars = append(bars, model.Bar{
			Date:   d,
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		})
	}
	return bars, nil
}
