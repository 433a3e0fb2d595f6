package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nathanellevy/stackpad/internal/domain/pomodoro"
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Log and review pomodoro sessions",
}

var pomodoroLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a finished pomodoro phase",
	Args:  cobra.NoArgs,
	RunE:  runPomodoroLog,
}

var (
	pomodoroLogPhase     string
	pomodoroLogMinutes   int
	pomodoroLogAbandoned bool
)

var pomodoroListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runPomodoroList,
}

var pomodoroTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's completed focus time",
	Args:  cobra.NoArgs,
	RunE:  runPomodoroToday,
}

func init() {
	pomodoroLogCmd.Flags().StringVarP(&pomodoroLogPhase, "phase", "p", "focus", "phase (focus, short_break, long_break)")
	pomodoroLogCmd.Flags().IntVarP(&pomodoroLogMinutes, "minutes", "m", 25, "phase length in minutes")
	pomodoroLogCmd.Flags().BoolVar(&pomodoroLogAbandoned, "abandoned", false, "mark the phase as abandoned")
	pomodoroCmd.AddCommand(pomodoroLogCmd)
	pomodoroCmd.AddCommand(pomodoroListCmd)
	pomodoroCmd.AddCommand(pomodoroTodayCmd)
}

func runPomodoroLog(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	duration := pomodoroLogMinutes * 60
	session, err := app.services.Pomodoros.Log(cmd.Context(), ws.ID, pomodoro.LogRequest{
		Phase:           pomodoro.Phase(pomodoroLogPhase),
		StartedAt:       time.Now().Add(-time.Duration(duration) * time.Second),
		DurationSeconds: duration,
		Completed:       !pomodoroLogAbandoned,
	})
	if err != nil {
		return err
	}

	fmt.Printf("logged %s session %s (%dm)\n", session.Phase, session.ID, pomodoroLogMinutes)
	return nil
}

func runPomodoroList(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	sessions, err := app.services.Pomodoros.List(cmd.Context(), ws.ID, pomodoro.ListOptions{})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tPHASE\tLENGTH\tDONE")
	for _, s := range sessions {
		done := "yes"
		if !s.Completed {
			done = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dm\t%s\n",
			s.ID, s.StartedAt.Local().Format("Jan 02 15:04"), s.Phase, s.DurationSeconds/60, done)
	}
	return w.Flush()
}

func runPomodoroToday(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	summary, err := app.services.Pomodoros.TodaySummary(cmd.Context(), ws.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%d focus sessions today, %dm focused\n",
		summary.FocusSessions, summary.FocusSeconds/60)
	return nil
}
