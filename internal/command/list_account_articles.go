package command

import (
	"context"
	"fmt"
	"time"

	"github.com/ppx123-web/wechat-article/internal/datasources"
	"github.com/ppx123-web/wechat-article/internal/domain"
)

const (
	// ArticlePageSize is the number of articles requested per upstream page.
	ArticlePageSize = 20

	// DefaultArticleLimit is used by callers that do not specify a limit.
	DefaultArticleLimit = 5

	StartDateLayout = "2006-01-02"
)

var _ Command[ListAccountArticlesRequest, domain.ArticleList] = (*ListAccountArticles)(nil)

// ListAccountArticlesRequest is the request for the ListAccountArticles command.
type ListAccountArticlesRequest struct {
	AccountID string
	// StartDate, when set, restricts results to articles published on or
	// after that day (YYYY-MM-DD).
	StartDate string
	// Limit caps the number of returned articles. Zero means no cap; a
	// negative limit is already reached, so nothing is fetched.
	Limit int
}

// ListAccountArticles pages through an account's articles, newest first,
// until the limit is reached, the upstream runs out of articles, or an
// article older than the start date is seen.
//
// The upstream only supports offset/size paging, so date filtering happens
// here and relies on the upstream returning articles in reverse
// chronological order.
type ListAccountArticles struct {
	Lister   datasources.ArticlePageLister
	Location *time.Location
}

// NewListAccountArticles creates a properly initialized ListAccountArticles command.
// Start dates are interpreted as midnight in loc; nil means the local zone.
func NewListAccountArticles(lister datasources.ArticlePageLister, loc *time.Location) *ListAccountArticles {
	if loc == nil {
		loc = time.Local
	}
	return &ListAccountArticles{
		Lister:   lister,
		Location: loc,
	}
}

// ParseStartDate parses a YYYY-MM-DD day as midnight in loc.
func ParseStartDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(StartDateLayout, s, loc)
	if err != nil {
		return time.Time{}, &domain.ValidationError{
			Field:   "start_date",
			Message: "Invalid start_date format. Use YYYY-MM-DD.",
			Err:     err,
		}
	}
	return t, nil
}

// Execute collects the articles and wraps them in the normalized envelope.
func (c *ListAccountArticles) Execute(
	ctx context.Context,
	req ListAccountArticlesRequest,
) (domain.ArticleList, error) {
	logger := domain.LoggerFromContext(ctx)

	var cutoff *time.Time
	if req.StartDate != "" {
		t, err := ParseStartDate(req.StartDate, c.location())
		if err != nil {
			return domain.ArticleList{}, err
		}
		cutoff = &t
	}

	limitReached := func(n int) bool {
		return req.Limit != 0 && n >= req.Limit
	}

	collected := []domain.Article{}
	begin := 0
	pages := 0

	for !limitReached(len(collected)) {
		page, err := c.Lister.ListArticles(ctx, req.AccountID, begin, ArticlePageSize)
		if err != nil {
			return domain.ArticleList{}, fmt.Errorf("listing articles from offset %d: %w", begin, err)
		}
		pages++

		items := page.Items()
		if len(items) == 0 {
			break
		}

		added := 0
		boundary := false
		for _, item := range items {
			if limitReached(len(collected)) {
				break
			}

			if cutoff != nil && isBeforeCutoff(ctx, item, *cutoff) {
				boundary = true
				break
			}

			collected = append(collected, item)
			added++
		}

		if boundary || added == 0 {
			break
		}

		begin += len(items)

		if len(items) < ArticlePageSize {
			break
		}
	}

	logger.DebugContext(ctx, "listed account articles",
		"accountID", req.AccountID,
		"startDate", req.StartDate,
		"limit", req.Limit,
		"pages", pages,
		"articles", len(collected),
	)

	return domain.NewArticleList(collected), nil
}

func (c *ListAccountArticles) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// isBeforeCutoff reports whether the article was published strictly before
// the cutoff. Articles without a usable timestamp are kept.
func isBeforeCutoff(ctx context.Context, article domain.Article, cutoff time.Time) bool {
	published, present, err := article.Timestamp()
	if !present {
		return false
	}
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "keeping article with unparsable timestamp",
			"title", article.Title(),
			"error", err,
		)
		return false
	}

	return published.Before(cutoff)
}
