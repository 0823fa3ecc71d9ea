// Command hindsight analyzes an archived fantasy-football season.
//
// Usage:
//
//	hindsight report --year 2011
//	hindsight report --year 2011 --start-week 3 --end-week 10
//	hindsight whois "Tom Brady" --year 2011
//	hindsight watch --year 2011
//
// The archive root comes from ARCHIVE_DIR and is laid out as
// <root>/<year>/<week>/<game>, one saved quick-box-score page per game.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/omarshaarawi/hindsight/internal/archive"
	"github.com/omarshaarawi/hindsight/internal/config"
	"github.com/omarshaarawi/hindsight/internal/repository/memory"
	"github.com/omarshaarawi/hindsight/internal/scheduler"
	"github.com/omarshaarawi/hindsight/internal/season"
	"github.com/omarshaarawi/hindsight/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	root := &cobra.Command{
		Use:   "hindsight",
		Short: "Actual vs optimal-lineup analysis of an archived fantasy football season",
	}

	root.AddCommand(reportCmd())
	root.AddCommand(whoisCmd())
	root.AddCommand(watchCmd())

	if err := root.Execute(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

type weekRange struct {
	year      int
	startWeek int
	endWeek   int
}

func (w *weekRange) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&w.year, "year", 0, "Season year to analyze (required)")
	cmd.Flags().IntVar(&w.startWeek, "start-week", 0, "First week to include")
	cmd.Flags().IntVar(&w.endWeek, "end-week", 0, "Last week to include")
	_ = cmd.MarkFlagRequired("year")
}

// loadSeason ingests the requested week range and runs the analysis.
func loadSeason(w weekRange) (*season.Season, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sn, err := archive.New(cfg.Archive.Dir).LoadSeason(w.year, w.startWeek, w.endWeek)
	if err != nil {
		return nil, err
	}
	if err := sn.Analyze(); err != nil {
		return nil, err
	}
	return sn, nil
}

func reportCmd() *cobra.Command {
	var w weekRange
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the full season analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			sn, err := loadSeason(w)
			if err != nil {
				return err
			}
			report, err := service.NewReportService(sn).FullReport()
			if err != nil {
				return err
			}
			fmt.Print(report)
			return nil
		},
	}
	w.register(cmd)
	return cmd
}

func whoisCmd() *cobra.Command {
	var w weekRange
	cmd := &cobra.Command{
		Use:   "whois <player name>",
		Short: "Look up a player's season line by (fuzzy) name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sn, err := loadSeason(w)
			if err != nil {
				return err
			}
			summary, err := service.NewReportService(sn).WhoIs(args[0])
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		},
	}
	w.register(cmd)
	return cmd
}

func watchCmd() *cobra.Command {
	var w weekRange
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-analyze the archive on an interval as new weeks are saved",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(w)
		},
	}
	w.register(cmd)
	return cmd
}

func runWatch(w weekRange) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo := memory.NewRepository()
	arch := archive.New(cfg.Archive.Dir)

	refresh := func() error {
		sn, err := arch.LoadSeason(w.year, w.startWeek, w.endWeek)
		if err != nil {
			return err
		}
		if err := sn.Analyze(); err != nil {
			return err
		}
		repo.SaveSeason(sn)
		return nil
	}

	report := func() (string, error) {
		sn, updatedAt := repo.GetSeason()
		if sn == nil {
			return "", fmt.Errorf("no analyzed season stored yet")
		}
		slog.Info("Rendering stored season", "year", sn.Year, "updatedAt", updatedAt)
		return service.NewReportService(sn).FullReport()
	}

	sendMessage := func(msg string) error {
		_, err := fmt.Print(msg)
		return err
	}

	sched, err := scheduler.NewScheduler(cfg.Archive.WatchInterval, refresh, report, sendMessage)
	if err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")
	return nil
}
