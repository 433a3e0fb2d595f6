package functional_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nathanellevy/stackpad/internal/testserver"
)

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      any             `json:"id,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// rpcCall posts a JSON-RPC request to /mcp. workspaceID, when set, is sent
// as the Stackpad-Workspace header the way an HTTP client scopes requests.
func rpcCall(t *testing.T, ts *testserver.TestServer, workspaceID, method string, params any) rpcResponse {
	t.Helper()

	payload := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"id":      1,
	}
	if params != nil {
		payload["params"] = params
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/mcp", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if workspaceID != "" {
		req.Header.Set("Stackpad-Workspace", workspaceID)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(bodyBytes))
	}

	var result rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// callTool invokes a tool method and decodes the result into out.
func callTool(t *testing.T, ts *testserver.TestServer, workspaceID, method string, params, out any) {
	t.Helper()

	resp := rpcCall(t, ts, workspaceID, method, params)
	require.Nil(t, resp.Error, "RPC error: %v", resp.Error)
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Result, out))
	}
}

func createWorkspace(t *testing.T, ts *testserver.TestServer, name string) string {
	t.Helper()

	var ws struct {
		ID string `json:"id"`
	}
	callTool(t, ts, "", "create_workspace", map[string]any{"name": name}, &ws)
	require.NotEmpty(t, ws.ID)
	return ws.ID
}

func TestFunctional_Health(t *testing.T) {
	ts := testserver.New(t)

	resp, err := http.Get(ts.Server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFunctional_NoteBoardFlow(t *testing.T) {
	ts := testserver.New(t)
	wsID := createWorkspace(t, ts, "Desk")

	var created struct {
		ID     string `json:"id"`
		Color  string `json:"color"`
		Pinned bool   `json:"pinned"`
	}
	callTool(t, ts, wsID, "create_note", map[string]any{"content": "water the plants"}, &created)
	require.Equal(t, "yellow", created.Color)
	require.False(t, created.Pinned)

	callTool(t, ts, wsID, "create_note", map[string]any{"content": "call the landlord", "color": "pink"}, nil)

	var updated struct {
		ID     string `json:"id"`
		Pinned bool   `json:"pinned"`
	}
	callTool(t, ts, wsID, "update_note", map[string]any{"id": created.ID, "pinned": true}, &updated)
	require.True(t, updated.Pinned)

	var listed struct {
		Notes []struct {
			ID      string `json:"id"`
			Content string `json:"content"`
		} `json:"notes"`
	}
	callTool(t, ts, wsID, "list_notes", nil, &listed)
	require.Len(t, listed.Notes, 2)
	require.Equal(t, created.ID, listed.Notes[0].ID, "pinned note should list first")

	callTool(t, ts, wsID, "delete_note", map[string]any{"id": created.ID}, nil)
	callTool(t, ts, wsID, "list_notes", nil, &listed)
	require.Len(t, listed.Notes, 1)
}

func TestFunctional_WorkspaceScoping(t *testing.T) {
	ts := testserver.New(t)
	deskID := createWorkspace(t, ts, "Desk")
	labID := createWorkspace(t, ts, "Lab")

	callTool(t, ts, deskID, "create_note", map[string]any{"content": "desk note"}, nil)
	callTool(t, ts, labID, "create_note", map[string]any{"content": "lab note"}, nil)

	var listed struct {
		Notes []struct {
			Content string `json:"content"`
		} `json:"notes"`
	}
	callTool(t, ts, deskID, "list_notes", nil, &listed)
	require.Len(t, listed.Notes, 1)
	require.Equal(t, "desk note", listed.Notes[0].Content)

	// A workspace_id parameter overrides the transport header.
	callTool(t, ts, deskID, "list_notes", map[string]any{"workspace_id": labID}, &listed)
	require.Len(t, listed.Notes, 1)
	require.Equal(t, "lab note", listed.Notes[0].Content)

	// No header and no parameter falls back to the default workspace,
	// the oldest one in the store.
	callTool(t, ts, "", "list_notes", nil, &listed)
	require.Len(t, listed.Notes, 1)
	require.Equal(t, "desk note", listed.Notes[0].Content)
}

func TestFunctional_TodoFlow(t *testing.T) {
	ts := testserver.New(t)
	wsID := createWorkspace(t, ts, "Desk")

	var first struct {
		ID string `json:"id"`
	}
	callTool(t, ts, wsID, "add_todo", map[string]any{"content": "write release notes"}, &first)
	callTool(t, ts, wsID, "add_todo", map[string]any{"content": "tag the release"}, nil)

	var toggled struct {
		Done        bool    `json:"done"`
		CompletedAt *string `json:"completed_at"`
	}
	callTool(t, ts, wsID, "toggle_todo", map[string]any{"id": first.ID}, &toggled)
	require.True(t, toggled.Done)
	require.NotNil(t, toggled.CompletedAt)

	var open struct {
		Todos []struct {
			Content string `json:"content"`
		} `json:"todos"`
	}
	callTool(t, ts, wsID, "list_todos", map[string]any{"done": false}, &open)
	require.Len(t, open.Todos, 1)
	require.Equal(t, "tag the release", open.Todos[0].Content)

	var cleared struct {
		Removed int `json:"removed"`
	}
	callTool(t, ts, wsID, "clear_completed_todos", nil, &cleared)
	require.Equal(t, 1, cleared.Removed)
}

func TestFunctional_CheckinStats(t *testing.T) {
	ts := testserver.New(t)
	wsID := createWorkspace(t, ts, "Desk")

	callTool(t, ts, wsID, "log_checkin", map[string]any{"type": "progress", "content": "shipped the parser", "hours": 2.5}, nil)
	callTool(t, ts, wsID, "log_checkin", map[string]any{"type": "gotcha", "content": "sqlite FTS wants external content tables"}, nil)

	var stats struct {
		Total         int               `json:"total"`
		Today         int               `json:"today"`
		Week          int               `json:"week"`
		Streak        int               `json:"streak"`
		TotalHours    float64           `json:"total_hours"`
		ByType        map[string]int    `json:"by_type"`
		DailyActivity []json.RawMessage `json:"daily_activity"`
	}
	callTool(t, ts, wsID, "get_checkin_stats", nil, &stats)
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 2, stats.Today)
	require.Equal(t, 2, stats.Week)
	require.Equal(t, 1, stats.Streak)
	require.InDelta(t, 2.5, stats.TotalHours, 0.001)
	require.Equal(t, 1, stats.ByType["progress"])
	require.Equal(t, 1, stats.ByType["gotcha"])
	require.Len(t, stats.DailyActivity, 7)
}

func TestFunctional_SnippetSearch(t *testing.T) {
	ts := testserver.New(t)
	wsID := createWorkspace(t, ts, "Desk")

	callTool(t, ts, wsID, "create_snippet", map[string]any{
		"title":    "prune docker",
		"command":  "docker system prune -af",
		"language": "shell",
	}, nil)
	callTool(t, ts, wsID, "create_snippet", map[string]any{
		"title":   "pretty json",
		"command": "jq . payload.json",
	}, nil)

	var found struct {
		Results []struct {
			Snippet struct {
				Title string `json:"title"`
			} `json:"snippet"`
		} `json:"results"`
	}
	callTool(t, ts, wsID, "search_snippets", map[string]any{"query": "docker"}, &found)
	require.Len(t, found.Results, 1)
	require.Equal(t, "prune docker", found.Results[0].Snippet.Title)
}

func TestFunctional_Playlist(t *testing.T) {
	ts := testserver.New(t)
	wsID := createWorkspace(t, ts, "Desk")

	callTool(t, ts, wsID, "add_track", map[string]any{"title": "lofi", "video": "dQw4w9WgXcQ"}, nil)
	callTool(t, ts, wsID, "add_track", map[string]any{"title": "jazz", "video": "https://youtu.be/9bZkp7q19f0"}, nil)

	var listed struct {
		Tracks []struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			Position int    `json:"position"`
		} `json:"tracks"`
	}
	callTool(t, ts, wsID, "list_tracks", nil, &listed)
	require.Len(t, listed.Tracks, 2)
	require.Equal(t, 1, listed.Tracks[0].Position)

	callTool(t, ts, wsID, "move_track", map[string]any{"id": listed.Tracks[1].ID, "position": 1}, nil)
	callTool(t, ts, wsID, "list_tracks", nil, &listed)
	require.Equal(t, "jazz", listed.Tracks[0].Title)
}

func TestFunctional_DraftMessage(t *testing.T) {
	ts := testserver.New(t)

	var drafted struct {
		Original string `json:"original"`
		Tone     string `json:"tone"`
		Result   string `json:"result"`
	}
	callTool(t, ts, "", "draft_message", map[string]any{
		"text": "hey, I'm gonna need the report",
		"tone": "professional",
	}, &drafted)
	require.Equal(t, "professional", drafted.Tone)
	require.Equal(t, "hey, I'm gonna need the report", drafted.Original)
	require.Equal(t, "Hello, I'm going to need the report", drafted.Result)
}

func TestFunctional_ToolsList(t *testing.T) {
	ts := testserver.New(t)

	var catalog struct {
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"tools"`
	}
	callTool(t, ts, "", "tools/list", nil, &catalog)
	require.Greater(t, len(catalog.Tools), 25)

	names := make(map[string]bool, len(catalog.Tools))
	for _, tool := range catalog.Tools {
		require.NotEmpty(t, tool.Description)
		names[tool.Name] = true
	}
	require.True(t, names["create_workspace"])
	require.True(t, names["get_checkin_stats"])
	require.True(t, names["draft_message"])
}

func TestFunctional_Errors(t *testing.T) {
	ts := testserver.New(t)
	wsID := createWorkspace(t, ts, "Desk")

	resp := rpcCall(t, ts, wsID, "delete_note", map[string]any{"id": "missing"})
	require.NotNil(t, resp.Error)
	require.Contains(t, resp.Error.Message, "NOTE_NOT_FOUND")

	resp = rpcCall(t, ts, wsID, "no_such_tool", nil)
	require.NotNil(t, resp.Error)
	require.Contains(t, resp.Error.Message, "unknown method")

	resp = rpcCall(t, ts, "", "draft_message", map[string]any{"text": "hi", "tone": "sarcastic"})
	require.NotNil(t, resp.Error)
	require.Contains(t, resp.Error.Message, "UNKNOWN_TONE")
}
