package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/srw3804/daily-birthdays/internal/api"
	"github.com/srw3804/daily-birthdays/internal/births"
	"github.com/srw3804/daily-birthdays/internal/config"
	"github.com/srw3804/daily-birthdays/internal/pipeline"
	"github.com/srw3804/daily-birthdays/internal/publish"
	"github.com/srw3804/daily-birthdays/internal/wiki"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:          "birthdays",
		Short:        "Publish daily lists of living notable people's birthdays",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory for published fragments")
	root.PersistentFlags().StringVar(&cfg.Keyword, "keyword", cfg.Keyword, "nationality keyword filter (empty disables)")
	root.PersistentFlags().StringVar(&cfg.Section, "section", cfg.Section, "section heading to extract")
	root.PersistentFlags().StringVar(&cfg.Format, "format", cfg.Format, "output format: html or markdown")

	root.AddCommand(generateCmd(log, &cfg))
	root.AddCommand(backfillCmd(log, &cfg))
	root.AddCommand(serveCmd(log, &cfg))

	if err := root.Execute(); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func newClient(cfg *config.Config) *wiki.Client {
	return wiki.NewClient(cfg.BaseURL, cfg.UserAgent, cfg.FetchTimeout, cfg.RequestsPerSecond)
}

func newWriter(cfg *config.Config) (*publish.Writer, error) {
	format, err := publish.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return publish.NewWriter(cfg.OutputDir, format), nil
}

// resolveDate applies flag and env overrides on top of today's date.
func resolveDate(cfg *config.Config, monthFlag string, dayFlag int) (string, int, time.Time, error) {
	now := time.Now()
	month := now.Month().String()
	day := now.Day()

	if cfg.MonthOverride != "" {
		month = cfg.MonthOverride
	}
	if cfg.DayOverride > 0 {
		day = cfg.DayOverride
	}
	if monthFlag != "" {
		month = monthFlag
	}
	if dayFlag > 0 {
		day = dayFlag
	}

	canonical, ok := monthByName(month)
	if !ok {
		return "", 0, time.Time{}, fmt.Errorf("unknown month %q", month)
	}
	if day < 1 || day > 31 {
		return "", 0, time.Time{}, fmt.Errorf("day %d out of range", day)
	}
	return canonical, day, now, nil
}

func monthByName(name string) (string, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) {
			return m.String(), true
		}
	}
	return "", false
}

func generateCmd(log *slog.Logger, cfg *config.Config) *cobra.Command {
	var (
		month string
		day   int
		sort  bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and publish the fragment for one date (today by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			monthName, dayNum, now, err := resolveDate(cfg, month, day)
			if err != nil {
				return err
			}
			writer, err := newWriter(cfg)
			if err != nil {
				return err
			}
			client := newClient(cfg)

			log.Info("fetching birthdays", "month", monthName, "day", dayNum, "url", client.PageURL(monthName, dayNum))
			doc, err := client.PageDocument(cmd.Context(), monthName, dayNum)
			if err != nil {
				return err
			}

			entries := births.Extract(doc, births.Options{
				Section:    cfg.Section,
				Date:       now,
				Keyword:    cfg.Keyword,
				SortByYear: sort,
			})
			log.Info("extracted entries", "count", len(entries))

			path, err := writer.Write(monthName, dayNum, entries)
			if err != nil {
				return err
			}
			log.Info("wrote fragment", "path", path, "entries", len(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month name, e.g. September (default: today)")
	cmd.Flags().IntVar(&day, "day", 0, "day of month (default: today)")
	cmd.Flags().BoolVar(&sort, "sort", false, "sort entries by birth year instead of page order")
	return cmd
}

func backfillCmd(log *slog.Logger, cfg *config.Config) *cobra.Command {
	var (
		days    int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Generate fragments for a run of consecutive dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}
			writer, err := newWriter(cfg)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = cfg.WorkerCount
			}

			runner := pipeline.NewRunner(newClient(cfg), writer, log, cfg.Section, cfg.Keyword, workers)
			jobs := runner.Run(cmd.Context(), pipeline.DatesFrom(time.Now(), days))

			failed := 0
			for _, job := range jobs {
				if status, _ := job.State(); status != pipeline.StatusCompleted {
					failed++
				}
			}
			log.Info("backfill finished", "dates", len(jobs), "failed", failed)
			if failed == len(jobs) {
				return fmt.Errorf("all %d dates failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "number of consecutive dates starting today")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (default from WORKER_COUNT)")
	return cmd
}

func serveCmd(log *slog.Logger, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve published fragments and on-demand extraction over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := api.NewServer(newClient(cfg), log, *cfg)

			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 120 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			log.Info("starting birthdays server", "port", cfg.Port)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}
