package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nathanellevy/stackpad/internal/domain/checkin"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Log and review daily check-ins",
}

var checkinLogCmd = &cobra.Command{
	Use:   "log <content>",
	Short: "Log a check-in entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckinLog,
}

var (
	checkinLogType  string
	checkinLogHours float64
)

var checkinListCmd = &cobra.Command{
	Use:   "list",
	Short: "List check-in entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCheckinList,
}

var checkinListTypes []string

var checkinStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show check-in statistics and the current streak",
	Args:  cobra.NoArgs,
	RunE:  runCheckinStats,
}

func init() {
	checkinLogCmd.Flags().StringVarP(&checkinLogType, "type", "t", "progress", "entry type (progress, gotcha, error, tip)")
	checkinLogCmd.Flags().Float64Var(&checkinLogHours, "hours", 0, "hours spent")
	checkinListCmd.Flags().StringSliceVar(&checkinListTypes, "type", nil, "filter by entry type, repeatable")
	checkinCmd.AddCommand(checkinLogCmd)
	checkinCmd.AddCommand(checkinListCmd)
	checkinCmd.AddCommand(checkinStatsCmd)
}

func runCheckinLog(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	entry, err := app.services.Checkins.Create(cmd.Context(), ws.ID, checkin.CreateRequest{
		Type:    checkin.EntryType(checkinLogType),
		Content: args[0],
		Hours:   checkinLogHours,
	})
	if err != nil {
		return err
	}

	fmt.Printf("logged %s check-in %s\n", entry.Type, entry.ID)
	return nil
}

func runCheckinList(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	var opts checkin.ListOptions
	for _, t := range checkinListTypes {
		opts.Types = append(opts.Types, checkin.EntryType(t))
	}

	entries, err := app.services.Checkins.List(cmd.Context(), ws.ID, opts)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tTYPE\tHOURS\tCONTENT")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\n",
			e.ID, e.CreatedAt.Local().Format("Jan 02 15:04"), e.Type, e.Hours, truncate(e.Content, 50))
	}
	return w.Flush()
}

var (
	statHeaderStyle = lipgloss.NewStyle().Bold(true)
	statBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	statDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runCheckinStats(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	snap, err := app.services.Checkins.Stats(cmd.Context(), ws.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, statHeaderStyle.Render(fmt.Sprintf("Check-ins for %s", ws.Name)))
	fmt.Fprintf(out, "total %d, today %d, this week %d, streak %d days, %.1f hours logged\n\n",
		snap.Total, snap.Today, snap.Week, snap.Streak, snap.TotalHours)

	for _, t := range checkin.ValidTypes {
		if n := snap.ByType[t]; n > 0 {
			fmt.Fprintf(out, "  %-10s %d\n", t, n)
		}
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, renderDailyChart(snap.DailyActivity))
	return nil
}

// renderDailyChart draws one bar per day, oldest at the top.
func renderDailyChart(days []checkin.DayBucket) string {
	max := 0
	for _, d := range days {
		if d.Count > max {
			max = d.Count
		}
	}

	var b strings.Builder
	for _, d := range days {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("█", d.Count*20/max)
		}
		if bar == "" && d.Count > 0 {
			bar = "█"
		}
		if bar == "" {
			b.WriteString(fmt.Sprintf("  %s %s\n", d.Label, statDimStyle.Render("·")))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s %d\n", d.Label, statBarStyle.Render(bar), d.Count))
	}
	return b.String()
}
