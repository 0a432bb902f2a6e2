// Package server provides the MCP server implementation.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ppx123-web/wechat-article/internal/command"
	"github.com/ppx123-web/wechat-article/internal/datasources"
	"github.com/ppx123-web/wechat-article/internal/domain"
)

const (
	serverName    = "wechat-article"
	serverVersion = "0.1.0"
)

// ArticleLister produces the article envelope for get_account_articles.
type ArticleLister = command.Command[command.ListAccountArticlesRequest, domain.ArticleList]

// Deps are the collaborators the tools dispatch to.
type Deps struct {
	Accounts   datasources.FollowedAccountStore
	Searcher   datasources.AccountSearcher
	Downloader datasources.ArticleDownloader
	Articles   ArticleLister
	Logger     *slog.Logger
}

// Server is the MCP server exposing the WeChat article tools.
type Server struct {
	accounts   datasources.FollowedAccountStore
	searcher   datasources.AccountSearcher
	downloader datasources.ArticleDownloader
	articles   ArticleLister
	logger     *slog.Logger
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server with the given collaborators.
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		accounts:   deps.Accounts,
		searcher:   deps.Searcher,
		downloader: deps.Downloader,
		articles:   deps.Articles,
		logger:     logger,
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// Run serves MCP over stdin/stdout until ctx is done or stdin closes.
func (s *Server) Run(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	s.logger.InfoContext(ctx, "serving MCP over stdio")
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// HTTPHandler returns a streamable HTTP handler for the same tools.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcpServer)
}

func (s *Server) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcpServer.AddTool(tool, s.withRequestLogger(tool.Name, handler))
}

func (s *Server) registerTools() {
	// list_followed_accounts - Followed accounts from the local file
	s.addTool(mcp.NewTool("list_followed_accounts",
		mcp.WithDescription(
			"List all followed public accounts configured in the JSON file. "+
				"Returns a JSON array of {name, id} objects."),
	), s.handleListFollowedAccounts)

	// add_followed_account - Append to the local file
	s.addTool(mcp.NewTool("add_followed_account",
		mcp.WithDescription("Add a new public account to the followed accounts list."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The name of the account"),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The id (fakeid) of the account"),
		),
	), s.handleAddFollowedAccount)

	// search_public_account - Upstream account search
	s.addTool(mcp.NewTool("search_public_account",
		mcp.WithDescription(
			"Search for a WeChat public account by keyword. "+
				"Useful to find the id (fakeid) of an account if you only have the name."),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Account name or keyword to search for"),
		),
	), s.handleSearchPublicAccount)

	// get_account_articles - Paged, date-filtered article listing
	s.addTool(mcp.NewTool("get_account_articles",
		mcp.WithDescription(
			"Get a list of articles for a specific public account (by id), newest first. "+
				"Returns {status, articles, total}."),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("The unique id (fakeid) of the public account"),
		),
		mcp.WithString("start_date",
			mcp.Description(
				"Only include articles published on or after this date (YYYY-MM-DD). "+
					"When set, all articles since this date are fetched, up to limit."),
		),
		mcp.WithNumber("limit",
			mcp.Description(
				"Max number of articles to return (default: 5, 0 for no limit, "+
					"negative returns no articles). "+
					"When start_date is set this is a hard cap on the total."),
		),
	), s.handleGetAccountArticles)

	// download_article - Article content
	s.addTool(mcp.NewTool("download_article",
		mcp.WithDescription("Download the content of an article, in Markdown format by default."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The article link, as returned in get_account_articles"),
		),
		mcp.WithString("format",
			mcp.Description("Content format: markdown (default), html or text"),
			mcp.Enum(downloadFormats...),
		),
	), s.handleDownloadArticle)
}
