package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ppx123-web/wechat-article/internal/app"
	"github.com/ppx123-web/wechat-article/internal/command"
	"github.com/ppx123-web/wechat-article/internal/datasources"
	"github.com/ppx123-web/wechat-article/internal/datasources/mptext"
	"github.com/ppx123-web/wechat-article/internal/domain"
	"github.com/spf13/cobra"
)

import _ "github.com/joho/godotenv/autoload"

var (
	flagKeyword string
	flagSince   string
	flagLimit   int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "wechat-verify",
	Short:        "Smoke check the WeChat article API",
	Long:         "wechat-verify searches for a public account, lists its articles since a date and downloads the first one.",
	SilenceUsage: true,
	RunE:         runVerify,
}

func init() {
	rootCmd.Flags().StringVar(&flagKeyword, "keyword", "机器之心", "account name to search for")
	rootCmd.Flags().StringVar(&flagSince, "since", "", "list articles published on or after this date (YYYY-MM-DD, default today)")
	rootCmd.Flags().IntVar(&flagLimit, "limit", 20, "maximum number of articles to list")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log upstream requests")
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	ctx := domain.ContextWithLogger(cmd.Context(), logger)

	since := flagSince
	if since == "" {
		since = time.Now().In(cfg.Location).Format(command.StartDateLayout)
	}

	client := mptext.NewClient(cfg.APIBaseURL, cfg.APIKey)
	v := verifier{
		searcher:   client,
		downloader: client,
		articles:   command.NewListAccountArticles(client, cfg.Location),
		out:        cmd.OutOrStdout(),
	}

	return v.run(ctx, flagKeyword, since, flagLimit)
}

type verifier struct {
	searcher   datasources.AccountSearcher
	downloader datasources.ArticleDownloader
	articles   command.Command[command.ListAccountArticlesRequest, domain.ArticleList]
	out        io.Writer
}

type searchResult struct {
	List []struct {
		FakeID   string `json:"fakeid"`
		Nickname string `json:"nickname"`
	} `json:"list"`
}

func (v verifier) run(ctx context.Context, keyword, since string, limit int) error {
	raw, err := v.searcher.SearchAccount(ctx, keyword, 0, 5)
	if err != nil {
		return fmt.Errorf("searching account: %w", err)
	}

	// Round-trip through JSON to read the fields we need from the opaque response.
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding search result: %w", err)
	}
	var found searchResult
	if err := json.Unmarshal(data, &found); err != nil {
		return fmt.Errorf("decoding search result: %w", err)
	}
	if len(found.List) == 0 {
		return fmt.Errorf("account %q not found", keyword)
	}

	account := found.List[0]
	_, _ = fmt.Fprintf(v.out, "Found account: %s (%s)\n", account.Nickname, account.FakeID)
	_, _ = fmt.Fprintf(v.out, "Fetching articles since %s...\n", since)

	list, err := v.articles.Execute(ctx, command.ListAccountArticlesRequest{
		AccountID: account.FakeID,
		StartDate: since,
		Limit:     limit,
	})
	if err != nil {
		return fmt.Errorf("listing articles: %w", err)
	}

	if list.Total == 0 {
		_, _ = fmt.Fprintf(v.out, "No articles found since %s.\n", since)
		return nil
	}
	_, _ = fmt.Fprintf(v.out, "Found %d articles.\n", list.Total)

	first := list.Articles[0]
	published := "unknown"
	if t, present, err := first.Timestamp(); present && err == nil {
		published = t.UTC().Format(time.RFC3339)
	}
	_, _ = fmt.Fprintf(v.out, "First article: %s (%s)\n", first.Title(), published)

	if first.Link() == "" {
		return nil
	}

	_, _ = fmt.Fprintf(v.out, "Downloading %s...\n", first.Link())
	content, err := v.downloader.DownloadArticle(ctx, first.Link(), "markdown")
	if err != nil {
		return fmt.Errorf("downloading article: %w", err)
	}
	_, _ = fmt.Fprintf(v.out, "Downloaded %d chars.\n", len([]rune(content)))

	return nil
}
