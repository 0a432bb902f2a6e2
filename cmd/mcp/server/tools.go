package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ppx123-web/wechat-article/internal/command"
	"github.com/ppx123-web/wechat-article/internal/domain"
)

const (
	searchPageSize        = 5
	defaultDownloadFormat = "markdown"
)

var downloadFormats = []string{"markdown", "html", "text"}

// withRequestLogger gives each tool call a logger tagged with the tool name
// and a fresh request id.
func (s *Server) withRequestLogger(toolName string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := s.logger.With("tool", toolName, "request_id", uuid.NewString())
		ctx = domain.ContextWithLogger(ctx, logger)

		logger.DebugContext(ctx, "tool call started")
		result, err := next(ctx, request)
		if err != nil {
			logger.ErrorContext(ctx, "tool call failed", "error", err)
		} else if result != nil && result.IsError {
			logger.WarnContext(ctx, "tool call returned error result")
		}

		return result, err
	}
}

func (s *Server) handleListFollowedAccounts(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	accounts := s.accounts.ListAccounts(ctx)
	if accounts == nil {
		accounts = []domain.Account{}
	}

	return formatJSONResult(accounts)
}

func (s *Server) handleAddFollowedAccount(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	id, ok := args["id"].(string)
	if !ok || id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	added, err := s.accounts.AddAccount(ctx, domain.NewAccount(name, id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error adding account: %v", err)), nil
	}
	if !added {
		return mcp.NewToolResultText(fmt.Sprintf("Account %s already exists.", name)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Successfully added account: %s", name)), nil
}

func (s *Server) handleSearchPublicAccount(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	keyword, ok := request.GetArguments()["keyword"].(string)
	if !ok || strings.TrimSpace(keyword) == "" {
		return mcp.NewToolResultError("keyword is required"), nil
	}

	result, err := s.searcher.SearchAccount(ctx, keyword, 0, searchPageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching account: %v", err)), nil
	}

	return formatJSONResult(result)
}

func (s *Server) handleGetAccountArticles(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	accountID, ok := args["account_id"].(string)
	if !ok || accountID == "" {
		return mcp.NewToolResultError("account_id is required"), nil
	}

	req := command.ListAccountArticlesRequest{
		AccountID: accountID,
		Limit:     command.DefaultArticleLimit,
	}
	if startDate, ok := args["start_date"].(string); ok {
		req.StartDate = strings.TrimSpace(startDate)
	}
	if limit, ok := args["limit"].(float64); ok {
		req.Limit = int(limit)
	}

	list, err := s.articles.Execute(ctx, req)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return mcp.NewToolResultError("Error: " + validationErr.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error getting articles: %v", err)), nil
	}

	return formatJSONResult(list)
}

func (s *Server) handleDownloadArticle(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	articleURL, ok := args["url"].(string)
	if !ok || articleURL == "" {
		return mcp.NewToolResultError("url is required"), nil
	}

	format := defaultDownloadFormat
	if f, ok := args["format"].(string); ok && f != "" {
		if !slices.Contains(downloadFormats, f) {
			return mcp.NewToolResultError(
				fmt.Sprintf("format must be one of %s", strings.Join(downloadFormats, ", "))), nil
		}
		format = f
	}

	content, err := s.downloader.DownloadArticle(ctx, articleURL, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error downloading article: %v", err)), nil
	}

	return mcp.NewToolResultText(content), nil
}

// formatJSONResult renders v as indented JSON, leaving non-ASCII and HTML
// characters unescaped.
func formatJSONResult(v any) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}

	return mcp.NewToolResultText(strings.TrimSuffix(buf.String(), "\n")), nil
}
