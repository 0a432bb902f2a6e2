// Package mptext provides an HTTP client for the public WeChat article API.
package mptext

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ppx123-web/wechat-article/internal/datasources"
	"github.com/ppx123-web/wechat-article/internal/domain"
)

const (
	DefaultBaseURL = "https://down.mptext.top/api/public/v1"

	DefaultMetadataTimeout = 30 * time.Second
	DefaultDownloadTimeout = 60 * time.Second

	userAgent = "mcp-wechat-client/0.1.0"

	maxErrorBodySnippet = 512
)

var (
	_ datasources.AccountSearcher   = (*Client)(nil)
	_ datasources.ArticlePageLister = (*Client)(nil)
	_ datasources.ArticleDownloader = (*Client)(nil)
)

// UpstreamError reports a failed upstream call: a transport failure, a
// timeout, or a non-2xx status. StatusCode is zero when no response arrived.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("upstream %s request failed: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client is an HTTP client for the article API. Calls are independent and
// never retried.
type Client struct {
	baseURL         string
	apiKey          string
	httpClient      *http.Client
	metadataTimeout time.Duration
	downloadTimeout time.Duration
}

// NewClient creates a new API client.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:         strings.TrimSuffix(baseURL, "/"),
		apiKey:          apiKey,
		httpClient:      &http.Client{},
		metadataTimeout: DefaultMetadataTimeout,
		downloadTimeout: DefaultDownloadTimeout,
	}
}

// WithTimeouts returns a copy of the client using the given timeouts.
func (c *Client) WithTimeouts(metadata, download time.Duration) *Client {
	cp := *c
	cp.metadataTimeout = metadata
	cp.downloadTimeout = download
	return &cp
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	path := c.baseURL + endpoint
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Auth-Key", c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	logger := domain.LoggerFromContext(ctx)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WarnContext(ctx, "upstream request failed", "endpoint", endpoint, "error", err)
		return nil, &UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	logger.DebugContext(ctx, "upstream request completed",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       snippet(body),
		}
	}

	return body, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, result any) error {
	body, err := c.get(ctx, endpoint, params, c.metadataTimeout)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return &UpstreamError{Endpoint: endpoint, Body: snippet(body), Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}

func pagingParams(begin, size int) url.Values {
	params := url.Values{}
	params.Set("begin", strconv.Itoa(begin))
	params.Set("size", strconv.Itoa(size))
	return params
}

// SearchAccount searches public accounts by keyword and returns the decoded
// response unchanged.
func (c *Client) SearchAccount(ctx context.Context, keyword string, begin, size int) (any, error) {
	params := pagingParams(begin, size)
	params.Set("keyword", keyword)

	var result any
	if err := c.getJSON(ctx, "/account", params, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// ListArticles fetches one page of an account's articles, newest first.
func (c *Client) ListArticles(ctx context.Context, accountID string, begin, size int) (domain.ArticlePage, error) {
	params := pagingParams(begin, size)
	params.Set("fakeid", accountID)

	var result any
	if err := c.getJSON(ctx, "/article", params, &result); err != nil {
		return nil, err
	}

	// Non-object bodies carry no items.
	page, _ := result.(map[string]any)
	return domain.ArticlePage(page), nil
}

// DownloadArticle fetches an article's content in the given format
// (html, markdown or text). The body is returned verbatim.
func (c *Client) DownloadArticle(ctx context.Context, articleURL, format string) (string, error) {
	params := url.Values{}
	params.Set("url", articleURL)
	params.Set("format", format)

	body, err := c.get(ctx, "/download", params, c.downloadTimeout)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func snippet(body []byte) string {
	if len(body) <= maxErrorBodySnippet {
		return string(body)
	}
	cut := maxErrorBodySnippet
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut]) + "..."
}
