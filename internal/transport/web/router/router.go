package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ppx123-web/wechat-article/internal/command"
	"github.com/ppx123-web/wechat-article/internal/datasources"
	"github.com/ppx123-web/wechat-article/internal/domain"
	"github.com/ppx123-web/wechat-article/internal/transport/web/controller"
)

// MakeRouter serves the MCP endpoint plus the accounts and RSS endpoints.
// With no validators every route is open; otherwise every route except CORS
// preflight requires a caller accepted by one of them.
func MakeRouter(
	logger *slog.Logger,
	mcpHandler http.Handler,
	accounts datasources.FollowedAccountLister,
	articles command.Command[command.ListAccountArticlesRequest, domain.ArticleList],
	rssFeedBaseURL string,
	rssCacheMaxAge time.Duration,
	validators []AuthValidator,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(loggerMiddleware(logger))
	r.Use(corsMiddleware)
	if len(validators) > 0 {
		r.Use(NewAuthMiddleware(validators))
		r.Use(requireAuthMiddleware)
	}

	r.PathPrefix("/mcp").Handler(mcpHandler)

	r.Handle("/v1/accounts", controller.AccountsList{
		Lister: accounts,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/accounts/{account_id}/rss", controller.AccountRSS{
		FeedBaseURL: rssFeedBaseURL,
		Accounts:    accounts,
		Articles:    articles,
		CacheMaxAge: rssCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}

func loggerMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := domain.ContextWithLogger(r.Context(), logger.With("path", r.URL.Path))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
