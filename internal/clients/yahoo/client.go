// Package yahoo provides a Yahoo Finance client for fund holdings and symbol search.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aristath/etfoverlap/internal/clientdata"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://query2.finance.yahoo.com"
	defaultCookieURL = "https://fc.yahoo.com"
	userAgent        = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	quoteSummaryModules = "topHoldings,price,summaryDetail"
)

var (
	// ErrNotFound is returned when Yahoo has no data for the symbol.
	ErrNotFound = errors.New("yahoo: symbol not found")
	// ErrUnauthorized is returned when Yahoo rejects the cookie/crumb pair.
	ErrUnauthorized = errors.New("yahoo: unauthorized")
)

// Client is a Yahoo Finance API client
type Client struct {
	baseURL    string
	cookieURL  string
	httpClient *http.Client
	cacheRepo  *clientdata.Repository // Optional; nil disables caching
	log        zerolog.Logger

	mu    sync.Mutex
	crumb string
}

// NewClient creates a new Yahoo Finance client. An empty baseURL uses the
// public endpoints; a custom baseURL is also used to obtain the session
// cookie. cacheRepo is optional.
func NewClient(baseURL string, cacheRepo *clientdata.Repository, log zerolog.Logger) *Client {
	cookieURL := defaultCookieURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	} else {
		// Proxies and mirrors hand out their own session cookie
		cookieURL = baseURL
	}

	jar, _ := cookiejar.New(nil)

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		cookieURL: cookieURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		cacheRepo: cacheRepo,
		log:       log.With().Str("client", "yahoo").Logger(),
	}
}

// GetQuoteSummary returns the price, topHoldings and summaryDetail modules
// for symbol. Fresh cache entries are served first; when the live call fails
// a stale cache entry is returned instead.
func (c *Client) GetQuoteSummary(ctx context.Context, symbol string) (*QuoteSummaryResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol: %w", ErrNotFound)
	}

	var cached QuoteSummaryResult
	if c.getFromCache(clientdata.TableYahooHoldings, symbol, &cached) {
		c.log.Debug().Str("symbol", symbol).Msg("Yahoo holdings cache hit")
		return &cached, nil
	}

	result, err := c.fetchQuoteSummary(ctx, symbol)
	if err != nil {
		var stale QuoteSummaryResult
		if !errors.Is(err, ErrNotFound) && c.getStaleFromCache(clientdata.TableYahooHoldings, symbol, &stale) {
			c.log.Warn().Err(err).Str("symbol", symbol).Msg("API failed, using stale cached holdings")
			return &stale, nil
		}
		return nil, err
	}

	c.setCache(clientdata.TableYahooHoldings, symbol, result, clientdata.TTLYahooHoldings)
	return result, nil
}

// Search performs a free-text quote search. Results are not filtered.
func (c *Client) Search(ctx context.Context, query string) ([]SearchQuote, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchQuote{}, nil
	}
	key := strings.ToLower(query)

	var cached []SearchQuote
	if c.getFromCache(clientdata.TableYahooSearch, key, &cached) {
		c.log.Debug().Str("query", query).Msg("Yahoo search cache hit")
		return cached, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("quotesCount", "20")
	params.Set("newsCount", "0")

	var resp searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/v1/finance/search?"+params.Encode(), &resp); err != nil {
		var stale []SearchQuote
		if c.getStaleFromCache(clientdata.TableYahooSearch, key, &stale) {
			c.log.Warn().Err(err).Str("query", query).Msg("API failed, using stale cached search results")
			return stale, nil
		}
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if resp.Quotes == nil {
		resp.Quotes = []SearchQuote{}
	}

	c.setCache(clientdata.TableYahooSearch, key, resp.Quotes, clientdata.TTLYahooSearch)
	return resp.Quotes, nil
}

// fetchQuoteSummary calls quoteSummary, refreshing the crumb once when
// Yahoo rejects the current one.
func (c *Client) fetchQuoteSummary(ctx context.Context, symbol string) (*QuoteSummaryResult, error) {
	result, err := c.requestQuoteSummary(ctx, symbol, false)
	if errors.Is(err, ErrUnauthorized) {
		c.log.Debug().Str("symbol", symbol).Msg("Crumb rejected, refreshing")
		result, err = c.requestQuoteSummary(ctx, symbol, true)
	}
	if err != nil {
		return nil, fmt.Errorf("quoteSummary %s: %w", symbol, err)
	}
	return result, nil
}

func (c *Client) requestQuoteSummary(ctx context.Context, symbol string, refreshCrumb bool) (*QuoteSummaryResult, error) {
	crumb, err := c.getCrumb(ctx, refreshCrumb)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("modules", quoteSummaryModules)
	if crumb != "" {
		params.Set("crumb", crumb)
	}
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", c.baseURL, url.PathEscape(symbol), params.Encode())

	var resp quoteSummaryResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if e := resp.QuoteSummary.Error; e != nil {
		if strings.EqualFold(e.Code, "Not Found") {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, e.Description)
		}
		return nil, fmt.Errorf("yahoo error %s: %s", e.Code, e.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, ErrNotFound
	}

	return &resp.QuoteSummary.Result[0], nil
}

// getCrumb returns the session crumb, fetching the consent cookie and a new
// crumb when none is cached or refresh is set.
func (c *Client) getCrumb(ctx context.Context, refresh bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.crumb != "" && !refresh {
		return c.crumb, nil
	}

	// fc.yahoo.com answers 404 but sets the session cookie
	if req, err := c.newRequest(ctx, c.cookieURL); err == nil {
		if resp, err := c.httpClient.Do(req); err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		} else {
			c.log.Debug().Err(err).Msg("Cookie request failed")
		}
	}

	req, err := c.newRequest(ctx, c.baseURL+"/v1/test/getcrumb")
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("crumb request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read crumb: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("crumb request returned status %d: %w", resp.StatusCode, ErrUnauthorized)
	}

	crumb := strings.TrimSpace(string(body))
	if crumb == "" || strings.HasPrefix(crumb, "<") {
		return "", fmt.Errorf("invalid crumb response: %w", ErrUnauthorized)
	}

	c.crumb = crumb
	return crumb, nil
}

func (c *Client) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// getJSON performs a GET and decodes the JSON body into out. 404 maps to
// ErrNotFound, 401 and 403 to ErrUnauthorized.
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := c.newRequest(ctx, endpoint)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("Yahoo Finance API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// getFromCache decodes a fresh cache entry into out.
func (c *Client) getFromCache(table, key string, out interface{}) bool {
	if c.cacheRepo == nil {
		return false
	}

	data, err := c.cacheRepo.GetIfFresh(table, key)
	if err != nil {
		c.log.Warn().Err(err).Str("table", table).Str("key", key).Msg("Failed to get from cache")
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn().Err(err).Str("table", table).Str("key", key).Msg("Failed to unmarshal cached data")
		return false
	}
	return true
}

// getStaleFromCache decodes a cache entry into out even if expired.
func (c *Client) getStaleFromCache(table, key string, out interface{}) bool {
	if c.cacheRepo == nil {
		return false
	}

	data, err := c.cacheRepo.Get(table, key)
	if err != nil {
		c.log.Warn().Err(err).Str("table", table).Str("key", key).Msg("Failed to get stale data from cache")
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn().Err(err).Str("table", table).Str("key", key).Msg("Failed to unmarshal stale cached data")
		return false
	}
	return true
}

func (c *Client) setCache(table, key string, data interface{}, ttl time.Duration) {
	if c.cacheRepo == nil {
		return
	}

	if err := c.cacheRepo.Store(table, key, data, ttl); err != nil {
		c.log.Warn().Err(err).Str("table", table).Str("key", key).Msg("Failed to cache Yahoo response")
	}
}
