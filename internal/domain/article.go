package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Article is an upstream article record. None of its fields are guaranteed,
// so it is kept as the decoded JSON object and read through accessors.
type Article map[string]any

var articleTimestampFields = []string{"create_time", "update_time", "publish_time"}

// Timestamp returns the first present timestamp field. present is false when
// none of the fields is set; err is non-nil when the field is set but is not
// a unix timestamp.
func (a Article) Timestamp() (t time.Time, present bool, err error) {
	for _, field := range articleTimestampFields {
		v, ok := a[field]
		if !ok || isZeroValue(v) {
			continue
		}

		secs, err := unixSeconds(v)
		if err != nil {
			return time.Time{}, true, fmt.Errorf("parsing %s: %w", field, err)
		}
		return time.Unix(secs, 0), true, nil
	}

	return time.Time{}, false, nil
}

func (a Article) Title() string {
	return a.stringField("title")
}

func (a Article) Link() string {
	return a.stringField("link")
}

func (a Article) Digest() string {
	return a.stringField("digest")
}

func (a Article) stringField(name string) string {
	s, _ := a[name].(string)
	return s
}

func isZeroValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case json.Number:
		return x == "" || x == "0"
	case float64:
		return x == 0
	case int64:
		return x == 0
	case int:
		return x == 0
	case bool:
		return !x
	}
	return false
}

func unixSeconds(v any) (int64, error) {
	switch x := v.(type) {
	case json.Number:
		return parseUnixString(x.String())
	case string:
		return parseUnixString(x)
	case float64:
		return int64(x), nil
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	}
	return 0, fmt.Errorf("unsupported timestamp type %T", v)
}

func parseUnixString(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return secs, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid unix timestamp [%s]", s)
	}
	return int64(f), nil
}

// ArticlePage is one decoded page of the upstream article listing.
type ArticlePage map[string]any

var articlePageItemKeys = []string{"list", "articles", "data"}

// Items returns the articles of the page, taken from the first of
// list/articles/data holding a non-empty array.
func (p ArticlePage) Items() []Article {
	for _, key := range articlePageItemKeys {
		raw, ok := p[key].([]any)
		if !ok || len(raw) == 0 {
			continue
		}

		items := make([]Article, 0, len(raw))
		for _, r := range raw {
			obj, _ := r.(map[string]any)
			items = append(items, Article(obj))
		}
		return items
	}

	return nil
}

const ArticleListStatusOK = "ok"

// ArticleList is the normalized envelope returned for article listings.
type ArticleList struct {
	Status   string    `json:"status"`
	Articles []Article `json:"articles"`
	Total    int       `json:"total"`
}

func NewArticleList(articles []Article) ArticleList {
	if articles == nil {
		articles = []Article{}
	}
	return ArticleList{
		Status:   ArticleListStatusOK,
		Articles: articles,
		Total:    len(articles),
	}
}
