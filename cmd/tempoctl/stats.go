package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"tempo/internal/domain/aggregation"
	"tempo/internal/syncclient"
	"tempo/internal/usecase"
	"tempo/internal/util"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const tokenEnv = "TEMPO_TOKEN"

type statsOptions struct {
	apiURL   string
	token    string
	timeZone string
	watch    time.Duration
	maxAge   time.Duration
}

func newStatsCommand() *cobra.Command {
	opts := statsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show today's usage by hour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.token == "" {
				opts.token = os.Getenv(tokenEnv)
			}
			if opts.token == "" {
				return errors.Errorf("--token or %s is required", tokenEnv)
			}

			loc, ok := aggregation.ResolveZone(opts.timeZone)
			if !ok {
				return errors.Errorf("unknown time zone %q", opts.timeZone)
			}

			return runStats(cmd, opts, loc)
		},
	}

	cmd.Flags().StringVar(&opts.apiURL, "api", "http://localhost:8080", "API base URL")
	cmd.Flags().StringVar(&opts.token, "token", "", "access token (defaults to $"+tokenEnv+")")
	cmd.Flags().StringVar(&opts.timeZone, "time-zone", "UTC", "IANA zone that defines today and the hour buckets")
	cmd.Flags().DurationVar(&opts.watch, "watch", 0, "refresh interval; zero prints once")
	cmd.Flags().DurationVar(&opts.maxAge, "max-age", time.Hour, "rebuild the cache from a full fetch after this long")

	return cmd
}

func runStats(cmd *cobra.Command, opts statsOptions, loc *time.Location) error {
	ctx := cmd.Context()
	clock := quartz.NewReal()
	client := syncclient.NewClient(
		syncclient.NewHTTPFetcher(opts.apiURL, opts.token),
		loc,
		syncclient.WithClock(clock),
		syncclient.WithMaxAge(opts.maxAge),
	)

	stats, err := client.Refresh(ctx)
	if err != nil {
		return err
	}
	renderStats(cmd.OutOrStdout(), stats)

	if opts.watch <= 0 {
		return nil
	}

	ticker := clock.NewTicker(opts.watch)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats, err := client.Refresh(ctx)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed: %v\n", err)

				continue
			}
			renderStats(cmd.OutOrStdout(), stats)
		}
	}
}

// renderStats prints one table of hourly activity and one of daily totals with the productivity summary.
func renderStats(w io.Writer, stats *usecase.Stats) {
	appName := func(id uuid.UUID) (string, string) {
		meta, ok := stats.Apps[id]
		if !ok {
			return id.String(), ""
		}

		return meta.Name, string(meta.Category)
	}

	hourly := table.NewWriter()
	hourly.SetOutputMirror(w)
	hourly.SetTitle(fmt.Sprintf("%s (%s)", stats.From, stats.TimeZone))
	hourly.SetStyle(table.StyleLight)
	hourly.AppendHeader(table.Row{"Hour", "App", "Category", "Time", "Segments"})

	hours := make([]int, 0, len(stats.Hourly))
	for hour := range stats.Hourly {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	for _, hour := range hours {
		for _, entry := range stats.Hourly[hour] {
			name, category := appName(entry.AppID)
			hourly.AppendRow(table.Row{
				fmt.Sprintf("%02d:00", hour),
				name,
				category,
				util.FormatMillis(entry.TotalTimeMs),
				len(entry.Timelines),
			})
		}
	}
	hourly.Render()

	daily := table.NewWriter()
	daily.SetOutputMirror(w)
	daily.SetStyle(table.StyleLight)
	daily.AppendHeader(table.Row{"App", "Category", "Platforms", "Total"})

	for _, entry := range stats.Daily {
		name, category := appName(entry.AppID)
		platforms := make([]string, len(entry.Platforms))
		for i, p := range entry.Platforms {
			platforms[i] = p.String()
		}
		daily.AppendRow(table.Row{name, category, strings.Join(platforms, ","), util.FormatMillis(entry.TotalTimeMs)})
	}
	daily.AppendFooter(table.Row{"", "", "Total", util.FormatMillis(stats.Summary.TotalTimeMs)})
	daily.AppendFooter(table.Row{"", "", "Productive", fmt.Sprintf("%s (%d%%)",
		util.FormatMillis(stats.Summary.ProductiveMs), stats.Summary.ProductivityScore)})
	daily.Render()
}
