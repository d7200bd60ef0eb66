// Package aocweb is a thin HTTP client for the Advent of Code website: puzzle
// descriptions, puzzle input (with a local cache), answer submission, and the
// calendar defaults for the current year and day.
package aocweb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrNoSession indicates that an operation needing the session cookie was
// attempted without a session token configured.
var ErrNoSession = errors.New("session token not set (set AOC_SESSION or session in the config file)")

// Options configures a Client.
type Options struct {
	BaseURL   string
	Session   string
	UserAgent string
	CacheDir  string
}

// Client talks to the Advent of Code website.
type Client struct {
	baseURL   string
	session   string
	userAgent string
	cacheDir  string
	http      *http.Client
}

// New creates a client from the given options.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("base_url is required")
	}
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base_url: %s", opts.BaseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	return &Client{
		baseURL:   u.String(),
		session:   strings.TrimSpace(opts.Session),
		userAgent: opts.UserAgent,
		cacheDir:  opts.CacheDir,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Error represents an HTTP error response from the website.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("aocweb %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("aocweb %d", e.StatusCode)
}

// do performs a request against the site and returns the response body.
// The session cookie is attached when present.
func (c *Client) do(ctx context.Context, method, path string, form url.Values) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	reqURL := c.baseURL + path

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	const maxResponseSize = 10 * 1024 * 1024 // 10MB limit
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := ""
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
			msg = strings.TrimSpace(firstLine(string(b)))
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}
	return b, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Input returns the puzzle input for the given day, stripped of its trailing
// newline. Inputs never change, so they are cached on disk and the cache is
// consulted before the network.
func (c *Client) Input(ctx context.Context, year, day int) (string, error) {
	cachePath := ""
	if c.cacheDir != "" {
		cachePath = filepath.Join(c.cacheDir, strconv.Itoa(year), strconv.Itoa(day), "input.txt")
		if b, err := os.ReadFile(cachePath); err == nil {
			return string(b), nil
		}
	}

	if c.session == "" {
		return "", ErrNoSession
	}
	b, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d/day/%d/input", year, day), nil)
	if err != nil {
		return "", fmt.Errorf("fetch input for %d day %d: %w", year, day, err)
	}
	input := strings.TrimSuffix(string(b), "\n")

	if cachePath != "" {
		// Cache write failures are not worth failing the run over.
		if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err == nil {
			_ = os.WriteFile(cachePath, []byte(input), 0o644)
		}
	}
	return input, nil
}

// Verdict classifies the site's response to a submitted answer.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictCorrect
	VerdictIncorrect
	VerdictTooSoon
	VerdictAlreadyDone
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictTooSoon:
		return "too soon"
	case VerdictAlreadyDone:
		return "already done"
	default:
		return "unknown"
	}
}

// SubmitResult is the classified outcome of an answer submission.
type SubmitResult struct {
	Verdict Verdict
	Message string
}

// Submit posts an answer for the given part and classifies the response.
func (c *Client) Submit(ctx context.Context, year, day, part int, answer string) (*SubmitResult, error) {
	if c.session == "" {
		return nil, ErrNoSession
	}
	form := url.Values{
		"level":  {strconv.Itoa(part)},
		"answer": {answer},
	}
	b, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/%d/day/%d/answer", year, day), form)
	if err != nil {
		return nil, fmt.Errorf("submit answer for %d day %d part %d: %w", year, day, part, err)
	}

	msg, err := articleText(b)
	if err != nil {
		return nil, fmt.Errorf("parse submit response: %w", err)
	}
	return &SubmitResult{Verdict: classifyVerdict(msg), Message: msg}, nil
}

func classifyVerdict(msg string) Verdict {
	switch {
	case strings.Contains(msg, "That's the right answer"):
		return VerdictCorrect
	case strings.Contains(msg, "That's not the right answer"):
		return VerdictIncorrect
	case strings.Contains(msg, "You gave an answer too recently"):
		return VerdictTooSoon
	case strings.Contains(msg, "Did you already complete it"),
		strings.Contains(msg, "You don't seem to be solving the right level"):
		return VerdictAlreadyDone
	default:
		return VerdictUnknown
	}
}
