package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

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
	"github.com/nathanellevy/stackpad/internal/transport"
)

// TestServer bundles an HTTP test server with the services behind it so tests
// can hit the JSON-RPC surface and inspect state through the services.
type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Services mcp.Services
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

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
		Workspaces: workspace.NewService(workspaceRepo, nil),
		Notes:      note.NewService(noteRepo, activityRepo, nil),
		Todos:      todo.NewService(todoRepo, activityRepo, nil),
		Checkins:   checkin.NewService(checkinRepo, activityRepo, nil),
		Pomodoros:  pomodoro.NewService(pomodoroRepo, activityRepo, nil),
		Snippets:   snippet.NewService(snippetRepo, searchRepo, activityRepo, nil),
		Tracks:     track.NewService(trackRepo, activityRepo, nil),
		Activity:   activity.NewService(activityRepo, nil),
	}

	handler := mcp.NewHandler(services)
	server := httptest.NewServer(transport.NewServer(handler))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Services: services,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
