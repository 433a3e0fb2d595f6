package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type testHandler struct {
	method      string
	workspaceID string
}

func (h *testHandler) Handle(_ context.Context, workspaceID, method string, params json.RawMessage) (any, error) {
	h.method = method
	h.workspaceID = workspaceID
	return map[string]string{"workspace": workspaceID}, nil
}

func TestHTTPServer_MCP(t *testing.T) {
	handler := &testHandler{}
	server := httptest.NewServer(NewServer(handler))
	t.Cleanup(server.Close)

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"list_notes","id":1}`)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/mcp", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(WorkspaceHeader, "ws1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "list_notes", handler.method)
	require.Equal(t, "ws1", handler.workspaceID)
}

func TestHTTPServer_MCP_NoWorkspaceHeader(t *testing.T) {
	handler := &testHandler{}
	server := httptest.NewServer(NewServer(handler))
	t.Cleanup(server.Close)

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"list_todos","id":1}`)
	resp, err := http.Post(server.URL+"/mcp", "application/json", body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "", handler.workspaceID)
}

func TestHTTPServer_Health(t *testing.T) {
	handler := &testHandler{}
	server := httptest.NewServer(NewServer(handler))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
