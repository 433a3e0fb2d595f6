package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const workspaceIDKey contextKey = iota

// WorkspaceHeader is the HTTP header carrying the active workspace ID.
const WorkspaceHeader = "Stackpad-Workspace"

// getWorkspaceID extracts the workspace ID from context.
func getWorkspaceID(ctx context.Context) string {
	v, _ := ctx.Value(workspaceIDKey).(string)
	return v
}

// workspaceMiddleware extracts the workspace ID from the Stackpad-Workspace
// header (HTTP) or request metadata (stdio). Requests without one fall back
// to the default workspace at dispatch time.
func workspaceMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			var workspaceID string

			extra := req.GetExtra()
			if extra != nil && extra.Header != nil {
				workspaceID = extra.Header.Get(WorkspaceHeader)
			}

			// Some notifications carry nil params, and GetMeta on a nil
			// underlying value panics inside the SDK, hence the recover.
			if workspaceID == "" {
				if params := req.GetParams(); params != nil {
					func() {
						defer func() { recover() }()
						if meta := params.GetMeta(); meta != nil {
							if ws, ok := meta["workspace_id"].(string); ok {
								workspaceID = ws
							}
						}
					}()
				}
			}

			if workspaceID != "" {
				ctx = context.WithValue(ctx, workspaceIDKey, workspaceID)
			}

			return next(ctx, method, req)
		}
	}
}
