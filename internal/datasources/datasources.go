package datasources

import (
	"context"

	"github.com/ppx123-web/wechat-article/internal/domain"
)

type AccountSearcher interface {
	SearchAccount(ctx context.Context, keyword string, begin, size int) (any, error)
}

type ArticlePageLister interface {
	ListArticles(ctx context.Context, accountID string, begin, size int) (domain.ArticlePage, error)
}

type ArticleDownloader interface {
	DownloadArticle(ctx context.Context, articleURL, format string) (string, error)
}

type FollowedAccountLister interface {
	ListAccounts(ctx context.Context) []domain.Account
}

type FollowedAccountAdder interface {
	// AddAccount appends the account unless one with the same ID is already
	// stored. added reports whether the store changed.
	AddAccount(ctx context.Context, account domain.Account) (added bool, err error)
}

type FollowedAccountStore interface {
	FollowedAccountLister
	FollowedAccountAdder
}
