package biasapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Service defines the remote operations the rest of the client consumes.
type Service interface {
	ListArticles(ctx context.Context, limit int) ([]Article, error)
	GetArticle(ctx context.Context, id string) (*Article, error)
	DeleteArticle(ctx context.Context, id string) error
	Analyze(ctx context.Context, req AnalyzeRequest, full bool) (*AnalysisResult, error)
	ListHighlights(ctx context.Context, articleID string, limit int) ([]Highlight, error)
	ListNarratives(ctx context.Context, order Order) ([]Narrative, error)
	TriggerClustering(ctx context.Context) error
}

// Client provides access to the bias analysis service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Service = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout on the built-in client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("api base url required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// APIError describes a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Status     string
	Detail     string
}

// Error prefers the service-supplied detail message over the status line.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Status
}

// ListArticles returns up to limit stored articles, most recent first.
func (c *Client) ListArticles(ctx context.Context, limit int) ([]Article, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var articles []Article
	if err := c.do(ctx, http.MethodGet, "/articles", params, nil, &articles); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetArticle fetches one article with its nested scores and summary.
func (c *Client) GetArticle(ctx context.Context, id string) (*Article, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("article id must not be empty")
	}
	var article Article
	if err := c.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(id), nil, nil, &article); err != nil {
		return nil, fmt.Errorf("get article %s: %w", id, err)
	}
	return &article, nil
}

// DeleteArticle removes an article. Any 2xx status counts as success.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("article id must not be empty")
	}
	if err := c.do(ctx, http.MethodDelete, "/articles/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete article %s: %w", id, err)
	}
	return nil
}

// Analyze submits an article for scoring. full requests the slower analysis
// that also gathers primary sources.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest, full bool) (*AnalysisResult, error) {
	params := url.Values{}
	params.Set("full", strconv.FormatBool(full))
	var result AnalysisResult
	if err := c.do(ctx, http.MethodPost, "/analyze", params, req, &result); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	return &result, nil
}

// ListHighlights returns up to limit highlights for the given article.
func (c *Client) ListHighlights(ctx context.Context, articleID string, limit int) ([]Highlight, error) {
	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return nil, errors.New("article id must not be empty")
	}
	params := url.Values{}
	params.Set("article_id", articleID)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var highlights []Highlight
	if err := c.do(ctx, http.MethodGet, "/highlights", params, nil, &highlights); err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}
	return highlights, nil
}

// ListNarratives returns every narrative cluster sorted by creation time in
// the requested order.
func (c *Client) ListNarratives(ctx context.Context, order Order) ([]Narrative, error) {
	if order == "" {
		order = OrderDesc
	}
	params := url.Values{}
	params.Set("order", string(order))
	var narratives []Narrative
	if err := c.do(ctx, http.MethodGet, "/narratives", params, nil, &narratives); err != nil {
		return nil, fmt.Errorf("list narratives: %w", err)
	}
	return narratives, nil
}

// TriggerClustering asks the service to recluster narratives. The operation is
// advisory; callers are expected to proceed with narrative listing whether or
// not it succeeds.
func (c *Client) TriggerClustering(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/narratives/cluster", nil, nil, nil); err != nil {
		return fmt.Errorf("trigger clustering: %w", err)
	}
	return nil
}

// ExportCSVURL returns the downloadable CSV location for an article. The
// client only constructs the URL; fetching it is left to the caller.
func (c *Client) ExportCSVURL(articleID string) string {
	return c.baseURL + "/articles/" + url.PathEscape(strings.TrimSpace(articleID)) + "/export.csv"
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError builds an APIError from a non-2xx response. The service reports
// errors as {"detail": "..."} JSON; anything else falls back to the status
// line.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Detail = strings.TrimSpace(payload.Detail)
	}
	return apiErr
}
