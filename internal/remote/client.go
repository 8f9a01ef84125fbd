// Package remote talks to the spreadsheet-backed endpoint that mirrors the
// whole dataset. It exposes a pull of the full dataset and a fire-and-forget
// push of a full snapshot.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/lessonplan/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "lessonplan/1.0"

	// Pull bodies are a whole term of lessons; anything larger is not ours.
	maxPullBody = 8 << 20
)

// Client implements the remote sync adapter over net/http.
type Client struct {
	http      *http.Client
	logger    *zap.Logger
	now       func() time.Time
	userAgent string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock replaces the clock used for the cache-busting parameter.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a Client whose requests time out after timeout
// (15s when zero).
func NewClient(timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		logger:    logger.Named("remote"),
		now:       time.Now,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidateURL checks that endpoint is an absolute http or https URL.
func ValidateURL(endpoint string) error {
	lower := strings.ToLower(endpoint)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return fmt.Errorf("%w: %q must start with http:// or https://", ErrInvalidURL, endpoint)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidURL, endpoint)
	}
	return nil
}

// PullResult carries the collections a pull produced. A nil slice means the
// field was absent or rejected and the caller must leave its collection
// untouched; a non-nil empty slice is a legitimate empty collection.
type PullResult struct {
	Lessons []domain.Lesson
	Units   []domain.Unit

	// Rejected explains fields that were present but failed validation.
	Rejected []string
}

type pullEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Lessons json.RawMessage `json:"lessons"`
	Units   json.RawMessage `json:"units"`
}

// Pull fetches the whole dataset from endpoint.
func (c *Client) Pull(ctx context.Context, endpoint string) (*PullResult, error) {
	if err := ValidateURL(endpoint); err != nil {
		return nil, err
	}
	start := c.now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cacheBusted(endpoint, start), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("pull failed", zap.String("host", req.URL.Host), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPullBody))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	var env pullEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Detail: "decoding response: " + err.Error()}
	}
	if strings.EqualFold(env.Status, "error") {
		detail := env.Message
		if detail == "" {
			detail = "endpoint reported an error"
		}
		return nil, &RemoteError{Detail: detail}
	}

	result := &PullResult{}
	if lessons, present, err := decodeLessons(env.Lessons); err != nil {
		result.Rejected = append(result.Rejected, "lessons: "+err.Error())
	} else if present {
		result.Lessons = lessons
	}
	if units, present, err := decodeUnits(env.Units); err != nil {
		result.Rejected = append(result.Rejected, "units: "+err.Error())
	} else if present {
		result.Units = units
	}

	fields := []zap.Field{
		zap.String("host", req.URL.Host),
		zap.Duration("took", c.now().Sub(start)),
		zap.Bool("lessons", result.Lessons != nil),
		zap.Bool("units", result.Units != nil),
	}
	if len(result.Rejected) > 0 {
		c.logger.Warn("pull rejected fields", append(fields, zap.Strings("rejected", result.Rejected))...)
	} else {
		c.logger.Info("pull complete", fields...)
	}
	return result, nil
}

// Dispatch records that a push left this process. It says nothing about
// whether the endpoint accepted the data.
type Dispatch struct {
	Endpoint string
	Bytes    int
	At       time.Time
}

// Push sends the full snapshot to endpoint as a text/plain JSON body.
//
// The endpoint class this targets cannot answer cross-origin preflights, so
// the browser build of the planner posted in opaque mode and never saw the
// response. Push keeps that contract: the response is closed unread and any
// HTTP answer counts as dispatched. Only transport failures are reported.
func (c *Client) Push(ctx context.Context, endpoint string, snap domain.Snapshot) (*Dispatch, error) {
	if err := ValidateURL(endpoint); err != nil {
		return nil, err
	}
	body, err := json.Marshal(snap.Clone())
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("push failed", zap.String("host", req.URL.Host), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	resp.Body.Close()

	d := &Dispatch{Endpoint: endpoint, Bytes: len(body), At: c.now()}
	c.logger.Info("push dispatched",
		zap.String("host", req.URL.Host),
		zap.Int("bytes", d.Bytes),
		zap.Int("lessons", len(snap.Lessons)),
		zap.Int("units", len(snap.Units)),
	)
	return d, nil
}

// cacheBusted appends t=<epoch-ms> so intermediaries never serve a stale
// dataset.
func cacheBusted(endpoint string, now time.Time) string {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "t=" + strconv.FormatInt(now.UnixMilli(), 10)
}
