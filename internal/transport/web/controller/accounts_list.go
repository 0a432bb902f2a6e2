package controller

import (
	"encoding/json"
	"net/http"

	"github.com/ppx123-web/wechat-article/internal/datasources"
	"github.com/ppx123-web/wechat-article/internal/domain"
)

type AccountsList struct {
	Lister datasources.FollowedAccountLister
}

type AccountsListResponse struct {
	Data []domain.Account `json:"data"`
}

func (c AccountsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts := c.Lister.ListAccounts(ctx)
	if accounts == nil {
		accounts = []domain.Account{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(AccountsListResponse{Data: accounts}); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write accounts to response", "error", err)
	}
}
