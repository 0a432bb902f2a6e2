package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/ppx123-web/wechat-article/internal/datasources/mocks"
	"github.com/ppx123-web/wechat-article/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

var startOfDay = time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)

// articles builds n articles with create_time descending from newest in
// steps of one hour.
func articles(prefix string, newest time.Time, n int) []any {
	items := make([]any, 0, n)
	for i := range n {
		items = append(items, map[string]any{
			"title":       fmt.Sprintf("%s%d", prefix, i),
			"create_time": float64(newest.Add(-time.Duration(i) * time.Hour).Unix()),
		})
	}
	return items
}

func titles(list domain.ArticleList) []string {
	out := make([]string, 0, len(list.Articles))
	for _, a := range list.Articles {
		out = append(out, a.Title())
	}
	return out
}

func TestListAccountArticles_Execute_Cutoff(t *testing.T) {
	t5 := startOfDay.Add(10 * time.Hour)
	t4 := startOfDay.Add(1 * time.Hour)
	t3 := startOfDay.Add(-1 * time.Hour)
	t2 := startOfDay.Add(-5 * time.Hour)
	t1 := startOfDay.Add(-48 * time.Hour)

	var items []any
	for i, ts := range []time.Time{t5, t4, t3, t2, t1} {
		items = append(items, map[string]any{
			"title":       fmt.Sprintf("t%d", 5-i),
			"create_time": float64(ts.Unix()),
		})
	}

	lister := mocks.NewMockArticlePageLister(t)
	lister.EXPECT().
		ListArticles(mock.Anything, "fake123", 0, ArticlePageSize).
		Return(domain.ArticlePage{"list": items}, nil).
		Once()

	cmd := NewListAccountArticles(lister, time.UTC)
	result, err := cmd.Execute(testContext(), ListAccountArticlesRequest{
		AccountID: "fake123",
		StartDate: "2026-01-16",
		Limit:     20,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ArticleListStatusOK, result.Status)
	assert.Equal(t, []string{"t5", "t4"}, titles(result))
	assert.Equal(t, 2, result.Total)
}

func TestListAccountArticles_Execute_LimitWithoutCutoff(t *testing.T) {
	lister := mocks.NewMockArticlePageLister(t)
	lister.EXPECT().
		ListArticles(mock.Anything, "fake123", 0, ArticlePageSize).
		Return(domain.ArticlePage{"list": articles("a", startOfDay, 10)}, nil).
		Once()

	cmd := NewListAccountArticles(lister, time.UTC)
	result, err := cmd.Execute(testContext(), ListAccountArticlesRequest{
		AccountID: "fake123",
		Limit:     3,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a0", "a1", "a2"}, titles(result))
	assert.Equal(t, 3, result.Total)
}

func TestListAccountArticles_Execute_InvalidStartDate(t *testing.T) {
	cases := []string{"2026/01/16", "16-01-2026", "2026-1-6", "yesterday"}

	for _, startDate := range cases {
		t.Run(startDate, func(t *testing.T) {
			lister := mocks.NewMockArticlePageLister(t)

			cmd := NewListAccountArticles(lister, time.UTC)
			_, err := cmd.Execute(testContext(), ListAccountArticlesRequest{
				AccountID: "fake123",
				StartDate: startDate,
				Limit:     5,
			})

			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, "start_date", validationErr.Field)
			assert.Contains(t, err.Error(), "Invalid start_date format")
			lister.AssertNotCalled(t, "ListArticles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestListAccountArticles_Execute_UpstreamError(t *testing.T) {
	upstreamErr := errors.New("upstream returned status 500")

	lister := mocks.NewMockArticlePageLister(t)
	lister.EXPECT().
		ListArticles(mock.Anything, "fake123", 0, ArticlePageSize).
		Return(nil, upstreamErr).
		Once()

	cmd := NewListAccountArticles(lister, time.UTC)
	_, err := cmd.Execute(testContext(), ListAccountArticlesRequest{AccountID: "fake123", Limit: 5})

	require.ErrorIs(t, err, upstreamErr)
	lister.AssertNumberOfCalls(t, "ListArticles", 1)
}

func TestListAccountArticles_Execute_Paging(t *testing.T) {
	all := articles("p", startOfDay, 25)

	cases := []struct {
		name       string
		startDate  string
		limit      int
		pages      map[int][]any
		wantTitles int
	}{
		{
			name:  "unlimited_reads_until_short_page",
			limit: 0,
			pages: map[int][]any{
				0:  all[:20],
				20: all[20:],
			},
			wantTitles: 25,
		},
		{
			name:  "limit_spans_pages",
			limit: 22,
			pages: map[int][]any{
				0:  all[:20],
				20: all[20:],
			},
			wantTitles: 22,
		},
		{
			name:  "limit_filled_by_first_page",
			limit: 20,
			pages: map[int][]any{
				0: all[:20],
			},
			wantTitles: 20,
		},
		{
			name:  "empty_second_page",
			limit: 0,
			pages: map[int][]any{
				0:  all[:20],
				20: {},
			},
			wantTitles: 20,
		},
		{
			name:       "negative_limit_fetches_nothing",
			limit:      -1,
			pages:      map[int][]any{},
			wantTitles: 0,
		},
		{
			name:       "negative_limit_with_start_date",
			startDate:  "2026-01-15",
			limit:      -5,
			pages:      map[int][]any{},
			wantTitles: 0,
		},
		{
			name:      "cutoff_older_than_every_article",
			startDate: "2026-01-15",
			limit:     100,
			pages: map[int][]any{
				0:  all[:20],
				20: all[20:],
			},
			wantTitles: 25,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockArticlePageLister(t)
			for begin, items := range tc.pages {
				lister.EXPECT().
					ListArticles(mock.Anything, "fake123", begin, ArticlePageSize).
					Return(domain.ArticlePage{"articles": items}, nil).
					Once()
			}

			cmd := NewListAccountArticles(lister, time.UTC)
			result, err := cmd.Execute(testContext(), ListAccountArticlesRequest{
				AccountID: "fake123",
				StartDate: tc.startDate,
				Limit:     tc.limit,
			})
			require.NoError(t, err)
			assert.Equal(t, domain.ArticleListStatusOK, result.Status)
			assert.NotNil(t, result.Articles)
			assert.Len(t, result.Articles, tc.wantTitles)
			assert.Equal(t, tc.wantTitles, result.Total)
		})
	}
}

func TestListAccountArticles_Execute_CutoffStopsPaging(t *testing.T) {
	// First page is entirely after the cutoff; the second crosses midnight
	// at b10, so b11 ends the scan and no third page is requested.
	firstPage := articles("a", startOfDay.Add(40*time.Hour), 20)
	secondPage := articles("b", startOfDay.Add(10*time.Hour), 20)

	lister := mocks.NewMockArticlePageLister(t)
	lister.EXPECT().
		ListArticles(mock.Anything, "fake123", 0, ArticlePageSize).
		Return(domain.ArticlePage{"list": firstPage}, nil).
		Once()
	lister.EXPECT().
		ListArticles(mock.Anything, "fake123", 20, ArticlePageSize).
		Return(domain.ArticlePage{"list": secondPage}, nil).
		Once()

	cmd := NewListAccountArticles(lister, time.UTC)
	result, err := cmd.Execute(testContext(), ListAccountArticlesRequest{
		AccountID: "fake123",
		StartDate: "2026-01-16",
		Limit:     100,
	})
	require.NoError(t, err)

	require.Len(t, result.Articles, 31)
	assert.Equal(t, "a0", result.Articles[0].Title())
	assert.Equal(t, "b10", result.Articles[30].Title())
}

func TestListAccountArticles_Execute_FirstItemBeforeCutoff(t *testing.T) {
	lister := mocks.NewMockArticlePageLister(t)
	lister.EXPECT().
		ListArticles(mock.Anything, "fake123", 0, ArticlePageSize).
		Return(domain.ArticlePage{"list": articles("old", startOfDay.Add(-time.Hour), 20)}, nil).
		Once()

	cmd := NewListAccountArticles(lister, time.UTC)
	result, err := cmd.Execute(testContext(), ListAccountArticlesRequest{
		AccountID: "fake123",
		StartDate: "2026-01-16",
		Limit:     5,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Articles)
	assert.NotNil(t, result.Articles)
	assert.Equal(t, 0, result.Total)
}

func TestListAccountArticles_Execute_TimestampFallbacks(t *testing.T) {
	items := []any{
		map[string]any{"title": "no_time"},
		map[string]any{"title": "broken_time", "create_time": "soon"},
		map[string]any{"title": "update_time", "create_time": 0.0, "update_time": float64(startOfDay.Add(time.Hour).Unix())},
		map[string]any{"title": "string_publish_time", "publish_time": fmt.Sprint(startOfDay.Unix())},
		map[string]any{"title": "old", "publish_time": float64(startOfDay.Add(-time.Second).Unix())},
		map[string]any{"title": "after_boundary"},
	}

	lister := mocks.NewMockArticlePageLister(t)
	lister.EXPECT().
		ListArticles(mock.Anything, "fake123", 0, ArticlePageSize).
		Return(domain.ArticlePage{"data": items}, nil).
		Once()

	cmd := NewListAccountArticles(lister, time.UTC)
	result, err := cmd.Execute(testContext(), ListAccountArticlesRequest{
		AccountID: "fake123",
		StartDate: "2026-01-16",
		Limit:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"no_time", "broken_time", "update_time", "string_publish_time"}, titles(result))
}

func TestListAccountArticles_Execute_NoItems(t *testing.T) {
	cases := []struct {
		name string
		page domain.ArticlePage
	}{
		{name: "nil_page", page: nil},
		{name: "unknown_keys", page: domain.ArticlePage{"base_resp": map[string]any{"ret": 200003}}},
		{name: "empty_list", page: domain.ArticlePage{"list": []any{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockArticlePageLister(t)
			lister.EXPECT().
				ListArticles(mock.Anything, "fake123", 0, ArticlePageSize).
				Return(tc.page, nil).
				Once()

			cmd := NewListAccountArticles(lister, time.UTC)
			result, err := cmd.Execute(testContext(), ListAccountArticlesRequest{AccountID: "fake123", Limit: 5})
			require.NoError(t, err)
			assert.Equal(t, domain.NewArticleList(nil), result)
		})
	}
}

func TestParseStartDate_UsesLocation(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*60*60)

	got, err := ParseStartDate("2026-01-16", shanghai)
	require.NoError(t, err)
	assert.Equal(t, startOfDay.Add(-8*time.Hour).Unix(), got.Unix())
}
