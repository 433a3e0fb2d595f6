package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nathanellevy/stackpad/internal/config"
	"github.com/nathanellevy/stackpad/internal/domain/activity"
	"github.com/nathanellevy/stackpad/internal/domain/checkin"
	"github.com/nathanellevy/stackpad/internal/domain/note"
	"github.com/nathanellevy/stackpad/internal/domain/pomodoro"
	"github.com/nathanellevy/stackpad/internal/domain/snippet"
	"github.com/nathanellevy/stackpad/internal/domain/todo"
	"github.com/nathanellevy/stackpad/internal/domain/track"
	"github.com/nathanellevy/stackpad/internal/domain/workspace"
	"github.com/nathanellevy/stackpad/internal/mcp"
	"github.com/nathanellevy/stackpad/internal/sqlite"
)

var workspaceFlag string

var rootCmd = &cobra.Command{
	Use:           "stackpad",
	Short:         "stackpad - a personal working-state dashboard",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "workspace ID (defaults to the default workspace)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(workspaceCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(pomodoroCmd)
	rootCmd.AddCommand(snippetCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(draftCmd)
}

// app bundles everything a CLI command needs.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	db       *sqlite.DB
	services mcp.Services
}

func (a *app) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// openApp loads config, opens the database, runs migrations, and wires the
// domain services. Callers must Close the result.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("preparing database path: %w", err)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.RunMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	workspaceRepo := sqlite.NewWorkspaceRepository(db)
	noteRepo := sqlite.NewNoteRepository(db)
	todoRepo := sqlite.NewTodoRepository(db)
	checkinRepo := sqlite.NewCheckinRepository(db)
	pomodoroRepo := sqlite.NewPomodoroRepository(db)
	snippetRepo := sqlite.NewSnippetRepository(db)
	searchRepo := sqlite.NewSearchRepository(db)
	trackRepo := sqlite.NewTrackRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	services := mcp.Services{
		Workspaces: workspace.NewService(workspaceRepo, logger),
		Notes:      note.NewService(noteRepo, activityRepo, logger),
		Todos:      todo.NewService(todoRepo, activityRepo, logger),
		Checkins:   checkin.NewService(checkinRepo, activityRepo, logger),
		Pomodoros:  pomodoro.NewService(pomodoroRepo, activityRepo, logger),
		Snippets:   snippet.NewService(snippetRepo, searchRepo, activityRepo, logger),
		Tracks:     track.NewService(trackRepo, activityRepo, logger),
		Activity:   activity.NewService(activityRepo, logger),
	}

	return &app{cfg: cfg, logger: logger, db: db, services: services}, nil
}

// resolveWorkspace returns the workspace the command should operate on: the
// --workspace flag when set, otherwise the default workspace.
func (a *app) resolveWorkspace(cmd *cobra.Command) (*workspace.Workspace, error) {
	ctx := cmd.Context()
	if workspaceFlag != "" {
		return a.services.Workspaces.Get(ctx, workspaceFlag)
	}
	return a.services.Workspaces.GetDefault(ctx)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
