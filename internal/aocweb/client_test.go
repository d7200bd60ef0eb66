package aocweb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, session, cacheDir string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Options{
		BaseURL:   srv.URL,
		Session:   session,
		UserAgent: "aockit test",
		CacheDir:  cacheDir,
	})
	require.NoError(t, err)
	return c, srv
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
	_, err = New(Options{BaseURL: "not a url"})
	require.Error(t, err)
}

func TestInputStripsNewlineAndCaches(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, "/2023/day/1/input", r.URL.Path)
		cookie, err := r.Cookie("session")
		require.NoError(t, err)
		require.Equal(t, "tok", cookie.Value)
		_, _ = fmt.Fprint(w, "1\n2\n3\n")
	})
	c, _ := newTestClient(t, handler, "tok", t.TempDir())

	input, err := c.Input(context.Background(), 2023, 1)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3", input)

	// Second read is served from the cache.
	input, err = c.Input(context.Background(), 2023, 1)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3", input)
	require.Equal(t, 1, requests)
}

func TestInputRequiresSession(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler(), "", "")
	_, err := c.Input(context.Background(), 2023, 1)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestInputServiceError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Please log in to get your puzzle input.", http.StatusNotFound)
	})
	c, _ := newTestClient(t, handler, "tok", "")

	_, err := c.Input(context.Background(), 2023, 1)
	require.Error(t, err)
	var webErr *Error
	require.ErrorAs(t, err, &webErr)
	require.Equal(t, http.StatusNotFound, webErr.StatusCode)
	require.Contains(t, webErr.Message, "log in")
}

func TestSubmitPostsFormAndClassifies(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/2023/day/1/answer", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "2", r.PostForm.Get("level"))
		require.Equal(t, "281", r.PostForm.Get("answer"))
		cookie, err := r.Cookie("session")
		require.NoError(t, err)
		require.Equal(t, "tok", cookie.Value)
		_, _ = fmt.Fprint(w, `<html><body><main><article><p>That's the right answer! You are one gold star closer.</p></article></main></body></html>`)
	})
	c, _ := newTestClient(t, handler, "tok", "")

	res, err := c.Submit(context.Background(), 2023, 1, 2, "281")
	require.NoError(t, err)
	require.Equal(t, VerdictCorrect, res.Verdict)
	require.Contains(t, res.Message, "right answer")
}

func TestSubmitRequiresSession(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler(), "", "")
	_, err := c.Submit(context.Background(), 2023, 1, 1, "x")
	require.ErrorIs(t, err, ErrNoSession)
}

func TestClassifyVerdict(t *testing.T) {
	cases := []struct {
		msg  string
		want Verdict
	}{
		{"That's the right answer! You are one gold star closer.", VerdictCorrect},
		{"That's not the right answer; your answer is too high.", VerdictIncorrect},
		{"You gave an answer too recently; you have to wait.", VerdictTooSoon},
		{"Did you already complete it?", VerdictAlreadyDone},
		{"You don't seem to be solving the right level.", VerdictAlreadyDone},
		{"something unexpected", VerdictUnknown},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, classifyVerdict(tc.msg), tc.msg)
	}
}
