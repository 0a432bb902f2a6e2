package mptext

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account", r.URL.Path)
		assert.Equal(t, "机器之心", r.URL.Query().Get("keyword"))
		assert.Equal(t, "0", r.URL.Query().Get("begin"))
		assert.Equal(t, "5", r.URL.Query().Get("size"))
		assert.Equal(t, "secret", r.Header.Get("X-Auth-Key"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte(`{"base_resp":{"ret":0},"list":[{"fakeid":"MzA3","nickname":"机器之心"}],"total":1}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	result, err := c.SearchAccount(context.Background(), "机器之心", 0, 5)
	require.NoError(t, err)

	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1"), obj["total"])
	list := obj["list"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "MzA3", list[0].(map[string]any)["fakeid"])
}

func TestClient_ListArticles(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantItems int
	}{
		{
			name:      "object_with_list",
			body:      `{"list":[{"title":"a","create_time":1700000000},{"title":"b"}]}`,
			wantItems: 2,
		},
		{
			name:      "object_with_articles",
			body:      `{"articles":[{"title":"a"}]}`,
			wantItems: 1,
		},
		{
			name:      "array_body",
			body:      `[{"title":"a"}]`,
			wantItems: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/article", r.URL.Path)
				assert.Equal(t, "fake123", r.URL.Query().Get("fakeid"))
				assert.Equal(t, "20", r.URL.Query().Get("begin"))
				assert.Equal(t, "20", r.URL.Query().Get("size"))
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL+"/", "secret")
			page, err := c.ListArticles(context.Background(), "fake123", 20, 20)
			require.NoError(t, err)
			assert.Len(t, page.Items(), tc.wantItems)
		})
	}
}

func TestClient_ListArticles_StatusError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal failure"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	_, err := c.ListArticles(context.Background(), "fake123", 0, 20)
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.StatusCode)
	assert.Equal(t, "internal failure", upstreamErr.Body)
	assert.Contains(t, err.Error(), "500")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ListArticles_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	_, err := c.ListArticles(context.Background(), "fake123", 0, 20)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, "<html>maintenance</html>", upstreamErr.Body)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, "secret").WithTimeouts(50*time.Millisecond, 50*time.Millisecond)
	_, err := c.SearchAccount(context.Background(), "x", 0, 5)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Zero(t, upstreamErr.StatusCode)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_DownloadArticle(t *testing.T) {
	const body = "# Title\n\n<p>raw & unmodified</p>\n{\"not\":\"parsed\"}"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/download", r.URL.Path)
		assert.Equal(t, "https://mp.weixin.qq.com/s/abc?x=1", r.URL.Query().Get("url"))
		assert.Equal(t, "markdown", r.URL.Query().Get("format"))
		assert.Equal(t, "secret", r.Header.Get("X-Auth-Key"))
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	content, err := c.DownloadArticle(context.Background(), "https://mp.weixin.qq.com/s/abc?x=1", "markdown")
	require.NoError(t, err)
	assert.Equal(t, body, content)
}

func TestClient_DownloadArticle_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	_, err := c.DownloadArticle(context.Background(), "https://mp.weixin.qq.com/s/abc", "markdown")

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
}

func TestSnippet(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "short_body_unchanged",
			body: "short",
			want: "short",
		},
		{
			name: "ascii_cut_at_limit",
			body: strings.Repeat("x", maxErrorBodySnippet+10),
			want: strings.Repeat("x", maxErrorBodySnippet) + "...",
		},
		{
			// 171 three-byte runes end at byte 513, so the last rune
			// straddles the limit and is dropped whole.
			name: "cjk_cut_backs_up_to_rune_start",
			body: strings.Repeat("错", 200),
			want: strings.Repeat("错", 170) + "...",
		},
		{
			name: "cjk_on_boundary",
			body: "xx" + strings.Repeat("错", 200),
			want: "xx" + strings.Repeat("错", 170) + "...",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := snippet([]byte(tc.body))
			assert.True(t, utf8.ValidString(got))
			assert.Equal(t, tc.want, got)
		})
	}
}
