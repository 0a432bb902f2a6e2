package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/ppx123-web/wechat-article/internal/command"
	"github.com/ppx123-web/wechat-article/internal/datasources"
	"github.com/ppx123-web/wechat-article/internal/domain"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 200
)

// AccountRSS renders an account's recent articles as an RSS 2.0 feed.
type AccountRSS struct {
	FeedBaseURL string
	Accounts    datasources.FollowedAccountLister
	Articles    command.Command[command.ListAccountArticlesRequest, domain.ArticleList]
	CacheMaxAge time.Duration
}

func (c AccountRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	accountID := mux.Vars(r)["account_id"]
	if accountID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req, err := feedRequestFromQuery(accountID, r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse feed options in query string", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := c.Articles.Execute(ctx, req)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}

		logger.ErrorContext(ctx, "unable to fetch articles for feed", "accountID", accountID, "error", err)
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	feed := &feeds.Feed{
		Title:       c.accountName(r, accountID),
		Link:        &feeds.Link{Href: c.FeedBaseURL + r.URL.Path},
		Description: fmt.Sprintf("Articles published by WeChat public account %s", accountID),
		Created:     time.Now(),
	}

	for _, a := range list.Articles {
		item := &feeds.Item{
			Id:          a.Link(),
			IsPermaLink: "true",
			Title:       a.Title(),
			Link:        &feeds.Link{Href: a.Link()},
			Description: a.Digest(),
		}
		if published, present, err := a.Timestamp(); present && err == nil {
			item.Created = published
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func (c AccountRSS) accountName(r *http.Request, accountID string) string {
	if c.Accounts != nil {
		for _, a := range c.Accounts.ListAccounts(r.Context()) {
			if a.FakeID() == accountID && a.Name != "" {
				return a.Name
			}
		}
	}
	return accountID
}

func feedRequestFromQuery(accountID string, q url.Values) (command.ListAccountArticlesRequest, error) {
	req := command.ListAccountArticlesRequest{
		AccountID: accountID,
		StartDate: q.Get("start_date"),
		Limit:     defaultFeedLimit,
	}

	if q.Has("limit") {
		limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
		if err != nil {
			return req, fmt.Errorf("unable to parse limit from query: %w", err)
		}
		if limit < 1 || limit > maxFeedLimit {
			return req, fmt.Errorf("limit [%d] must be between 1 and %d", limit, maxFeedLimit)
		}
		req.Limit = int(limit)
	}

	return req, nil
}
