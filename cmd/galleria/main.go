package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mmcdole/galleria/internal/config"
	"github.com/mmcdole/galleria/internal/domain"
	"github.com/mmcdole/galleria/internal/download"
	"github.com/mmcdole/galleria/internal/flickr"
	"github.com/mmcdole/galleria/internal/gallery"
	"github.com/mmcdole/galleria/internal/log"
	"github.com/mmcdole/galleria/internal/search"
	"github.com/mmcdole/galleria/internal/store"
	"github.com/mmcdole/galleria/internal/tui"
	"github.com/mmcdole/galleria/internal/viewer"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func pageFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "page",
		Usage: "page to fetch",
		Value: 1,
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "galleria",
		Usage:   "Browse recent and searched Flickr photos in the terminal",
		Version: Version,
		Action:  runDefault,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("GALLERIA_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "feed",
				Usage:  "Print a page of recent photos as JSON",
				Flags:  []cli.Flag{pageFlag()},
				Action: runFeed,
			},
			{
				Name:      "search",
				Usage:     "Print photos matching a term as JSON",
				ArgsUsage: "TERM",
				Flags:     []cli.Flag{pageFlag()},
				Action:    runSearch,
			},
			{
				Name:  "download",
				Usage: "Save a page of photos to a directory",
				Flags: []cli.Flag{
					pageFlag(),
					&cli.StringFlag{
						Name:  "term",
						Usage: "search term; recent photos when empty",
					},
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "target directory",
						Required: true,
					},
				},
				Action: runDownload,
			},
			{
				Name:  "cache",
				Usage: "Manage the local photo cache",
				Commands: []*cli.Command{
					{
						Name:  "clear",
						Usage: "Forget the cached photos",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "history",
								Usage: "also forget search history",
							},
						},
						Action: runCacheClear,
					},
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("galleria %s\n", Version)
					return nil
				},
			},
		},
	}
}

// app holds the wired components shared by every command
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	store  domain.Store
	client *flickr.Client
	loader *gallery.Loader
}

// setup loads config and wires the stack. Without an API key it prompts
// for one when stdin is a terminal.
func setup(cmd *cli.Command, needAPIKey bool) (*app, error) {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting galleria", "version", Version, "command", cmd.Name)

	if needAPIKey && !cfg.IsConfigured() {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("%w: set flickr.api_key or GALLERIA_FLICKR_API_KEY", domain.ErrMissingAPIKey)
		}
		if err := runSetupFlow(cfg, os.Stdin, os.Stdout); err != nil {
			return nil, err
		}
	}

	st, err := store.Open(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	client := flickr.NewClient(cfg.Flickr, logger)
	return &app{
		cfg:    cfg,
		logger: logger,
		store:  st,
		client: client,
		loader: gallery.NewLoader(client, st, logger),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close cache", "error", err)
	}
	a.logger.Info("shutting down")
}

func runDefault(ctx context.Context, cmd *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runFeed(ctx, cmd)
	}
	return runTUI(ctx, cmd)
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	a, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	history := search.NewHistory(a.store, a.logger)
	launcher := viewer.NewLauncher(a.cfg.Viewer, a.logger)

	model := tui.NewModel(a.loader, launcher, history, tui.Options{
		Columns:    a.cfg.UI.Columns,
		Pagination: a.cfg.UI.Pagination,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	a.logger.Info("starting TUI")

	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Shutdown()
	}
	if err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func runFeed(ctx context.Context, cmd *cli.Command) error {
	return runLoad(ctx, cmd, domain.FeedRequest(pageOf(cmd)))
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	q := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	req := domain.SearchRequest(q)
	req.Page = pageOf(cmd)
	return runLoad(ctx, cmd, req)
}

// runLoad prints one LoadResult as JSON. An EmptyResult is printed and
// also returned as an error so the exit status is non-zero.
func runLoad(ctx context.Context, cmd *cli.Command, req domain.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	a, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	if req.Kind == domain.KindSearch {
		if err := search.NewHistory(a.store, a.logger).Record(req.Term); err != nil {
			a.logger.Warn("failed to record search term", "error", err)
		}
	}

	result, loadErr := a.loader.Load(ctx, req)
	if loadErr != nil && !errors.Is(loadErr, domain.ErrEmptyResult) {
		return loadErr
	}
	if err := writeJSON(os.Stdout, result); err != nil {
		return err
	}
	return loadErr
}

func runDownload(ctx context.Context, cmd *cli.Command) error {
	req := domain.FeedRequest(pageOf(cmd))
	if t := strings.TrimSpace(cmd.String("term")); t != "" {
		req = domain.SearchRequest(t)
		req.Page = pageOf(cmd)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	a, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.loader.Load(ctx, req)
	if err != nil {
		return err
	}
	if result.Stale {
		fmt.Fprintln(os.Stderr, "Network unavailable, downloading cached photos")
	}

	d := download.NewDownloader(a.client, a.cfg.Download.Concurrency, a.logger)
	n, err := d.Save(ctx, result.Records, cmd.String("dir"))
	fmt.Fprintf(os.Stderr, "Saved %d of %d photos to %s\n", n, len(result.Records), cmd.String("dir"))
	return err
}

func runCacheClear(ctx context.Context, cmd *cli.Command) error {
	a, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Delete(gallery.SnapshotKey); err != nil {
		return fmt.Errorf("failed to clear cached photos: %w", err)
	}
	if cmd.Bool("history") {
		if err := search.NewHistory(a.store, a.logger).Clear(); err != nil {
			return fmt.Errorf("failed to clear search history: %w", err)
		}
	}
	fmt.Println("Cache cleared")
	return nil
}

func pageOf(cmd *cli.Command) int {
	if !cmd.IsSet("page") {
		return 1
	}
	return int(cmd.Int("page"))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
