package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	workspaceProp := map[string]any{
		"type":        "string",
		"description": "Workspace ID (omit to use the default workspace)",
	}
	limitProp := map[string]any{
		"type":        "integer",
		"description": "Maximum number of results",
	}
	offsetProp := map[string]any{
		"type":        "integer",
		"description": "Offset for pagination",
	}

	return []ToolDefinition{
		// Workspaces
		{
			Name:        "create_workspace",
			Description: "Create a new workspace to hold notes, todos, check-ins, snippets, and tracks",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Unique workspace identifier (optional, generated if not provided)",
					},
					"name": map[string]any{
						"type":        "string",
						"description": "Workspace display name",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "Workspace description",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "list_workspaces",
			Description: "List all workspaces with note, todo, and check-in counts",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "get_workspace",
			Description: "Get a workspace by ID, or the default workspace when no ID is given",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Workspace ID (omit to get the default workspace)",
					},
				},
			},
		},
		{
			Name:        "delete_workspace",
			Description: "Delete a workspace and everything stored in it",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Workspace ID",
					},
				},
				"required": []string{"id"},
			},
		},

		// Notes
		{
			Name:        "create_note",
			Description: "Create a sticky note on the board",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"content": map[string]any{
						"type":        "string",
						"description": "Note text",
					},
					"color": map[string]any{
						"type":        "string",
						"description": "Note color (defaults to yellow)",
					},
					"pos_x": map[string]any{
						"type":        "number",
						"description": "Horizontal board position",
					},
					"pos_y": map[string]any{
						"type":        "number",
						"description": "Vertical board position",
					},
				},
				"required": []string{"content"},
			},
		},
		{
			Name:        "update_note",
			Description: "Update a note's content, color, position, or pinned flag. Last write wins.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Note ID",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "New note text",
					},
					"color": map[string]any{
						"type":        "string",
						"description": "New note color",
					},
					"pos_x": map[string]any{
						"type":        "number",
						"description": "New horizontal position",
					},
					"pos_y": map[string]any{
						"type":        "number",
						"description": "New vertical position",
					},
					"pinned": map[string]any{
						"type":        "boolean",
						"description": "Pin or unpin the note",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_note",
			Description: "Delete a note",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Note ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "list_notes",
			Description: "List notes, pinned first, then most recently updated",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
				},
			},
		},

		// Todos
		{
			Name:        "add_todo",
			Description: "Add an open todo item",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"content": map[string]any{
						"type":        "string",
						"description": "Todo text",
					},
				},
				"required": []string{"content"},
			},
		},
		{
			Name:        "toggle_todo",
			Description: "Flip a todo between done and open",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Todo ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_todo",
			Description: "Delete a todo item",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Todo ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "list_todos",
			Description: "List todo items, open items first",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"done": map[string]any{
						"type":        "boolean",
						"description": "Filter by completion state",
					},
					"limit":  limitProp,
					"offset": offsetProp,
				},
			},
		},
		{
			Name:        "clear_completed_todos",
			Description: "Delete every completed todo and report how many were removed",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
				},
			},
		},

		// Check-ins
		{
			Name:        "log_checkin",
			Description: "Log a daily check-in entry (progress, gotcha, error, or tip)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"type": map[string]any{
						"type":        "string",
						"description": "Entry type",
						"enum":        []string{"progress", "gotcha", "error", "tip"},
					},
					"content": map[string]any{
						"type":        "string",
						"description": "What happened",
					},
					"hours": map[string]any{
						"type":        "number",
						"description": "Hours spent (optional, must not be negative)",
					},
				},
				"required": []string{"type", "content"},
			},
		},
		{
			Name:        "delete_checkin",
			Description: "Delete a check-in entry",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Check-in entry ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "list_checkins",
			Description: "List check-in entries, newest first, optionally filtered by type",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"types": map[string]any{
						"type":        "array",
						"description": "Filter by entry types",
						"items": map[string]any{
							"type": "string",
							"enum": []string{"progress", "gotcha", "error", "tip"},
						},
					},
					"limit":  limitProp,
					"offset": offsetProp,
				},
			},
		},
		{
			Name:        "get_checkin_stats",
			Description: "Get derived check-in statistics: totals, per-type counts, a trailing-week histogram, and the current daily streak",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
				},
			},
		},

		// Pomodoro
		{
			Name:        "log_pomodoro",
			Description: "Record a finished pomodoro phase",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"phase": map[string]any{
						"type":        "string",
						"description": "Timer phase",
						"enum":        []string{"focus", "short_break", "long_break"},
					},
					"started_at": map[string]any{
						"type":        "string",
						"description": "Phase start time (ISO 8601, derived from duration when omitted)",
					},
					"duration_seconds": map[string]any{
						"type":        "integer",
						"description": "Phase length in seconds",
					},
					"completed": map[string]any{
						"type":        "boolean",
						"description": "Whether the phase ran to completion",
					},
				},
				"required": []string{"phase", "duration_seconds"},
			},
		},
		{
			Name:        "list_pomodoros",
			Description: "List recorded pomodoro phases, most recent first",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"phase": map[string]any{
						"type":        "string",
						"description": "Filter by phase",
						"enum":        []string{"focus", "short_break", "long_break"},
					},
					"limit":  limitProp,
					"offset": offsetProp,
				},
			},
		},
		{
			Name:        "get_pomodoro_summary",
			Description: "Summarize focus sessions completed since local midnight",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
				},
			},
		},

		// Snippets
		{
			Name:        "create_snippet",
			Description: "Save a shell command or code fragment to the snippet vault",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"title": map[string]any{
						"type":        "string",
						"description": "Snippet title",
					},
					"command": map[string]any{
						"type":        "string",
						"description": "The command or code itself",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "What the snippet does",
					},
					"language": map[string]any{
						"type":        "string",
						"description": "Language tag (e.g. bash, sql, go)",
					},
				},
				"required": []string{"title", "command"},
			},
		},
		{
			Name:        "get_snippet",
			Description: "Get a snippet by ID",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Snippet ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "update_snippet",
			Description: "Update a snippet's title, command, description, or language",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Snippet ID",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "New title",
					},
					"command": map[string]any{
						"type":        "string",
						"description": "New command",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "New description",
					},
					"language": map[string]any{
						"type":        "string",
						"description": "New language tag",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_snippet",
			Description: "Delete a snippet",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Snippet ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "list_snippets",
			Description: "List snippets, most recently updated first, optionally filtered by language",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"language": map[string]any{
						"type":        "string",
						"description": "Filter by language tag",
					},
					"limit":  limitProp,
					"offset": offsetProp,
				},
			},
		},
		{
			Name:        "search_snippets",
			Description: "Full-text search over snippet titles, commands, and descriptions",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"query": map[string]any{
						"type":        "string",
						"description": "Search query text",
					},
					"language": map[string]any{
						"type":        "string",
						"description": "Filter by language tag",
					},
					"limit":  limitProp,
					"offset": offsetProp,
				},
				"required": []string{"query"},
			},
		},

		// Tracks
		{
			Name:        "add_track",
			Description: "Append a YouTube track to the workspace playlist",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"title": map[string]any{
						"type":        "string",
						"description": "Track title",
					},
					"video": map[string]any{
						"type":        "string",
						"description": "YouTube watch URL, youtu.be URL, embed URL, or an 11-character video ID",
					},
				},
				"required": []string{"title", "video"},
			},
		},
		{
			Name:        "remove_track",
			Description: "Remove a track from the playlist and close the position gap",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Track ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "move_track",
			Description: "Move a track to a new 1-based playlist position",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"id": map[string]any{
						"type":        "string",
						"description": "Track ID",
					},
					"position": map[string]any{
						"type":        "integer",
						"description": "Target position, 1-based",
					},
				},
				"required": []string{"id", "position"},
			},
		},
		{
			Name:        "list_tracks",
			Description: "List playlist tracks in order",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
				},
			},
		},

		// Drafting
		{
			Name:        "draft_message",
			Description: "Rewrite a message in a given tone (professional, friendly, assertive, casual)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "Message text to rewrite",
					},
					"tone": map[string]any{
						"type":        "string",
						"description": "Target tone",
						"enum":        []string{"professional", "friendly", "assertive", "casual"},
					},
				},
				"required": []string{"text", "tone"},
			},
		},

		// Activity
		{
			Name:        "get_recent_activity",
			Description: "Get the recent activity feed for a workspace",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"workspace_id": workspaceProp,
					"entity_kind": map[string]any{
						"type":        "string",
						"description": "Filter by entity kind",
						"enum":        []string{"note", "todo", "checkin", "pomodoro", "snippet", "track"},
					},
					"entity_id": map[string]any{
						"type":        "string",
						"description": "Filter by entity ID",
					},
					"type": map[string]any{
						"type":        "string",
						"description": "Filter by activity type",
					},
					"limit": limitProp,
				},
			},
		},
	}
}

// registerTools wires every catalog tool into the SDK server, routing calls
// through the shared handler.
func registerTools(server *sdkmcp.Server, handler *Handler) {
	for _, def := range buildToolCatalog() {
		def := def

		schema, err := toSchema(def.InputSchema)
		if err != nil {
			panic(fmt.Sprintf("invalid input schema for tool %s: %v", def.Name, err))
		}

		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: schema,
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}

			result, err := handler.Handle(ctx, getWorkspaceID(ctx), def.Name, args)
			if err != nil {
				return &sdkmcp.CallToolResult{
					Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: err.Error()}},
					IsError: true,
				}, nil
			}

			payload, err := json.Marshal(result)
			if err != nil {
				return nil, fmt.Errorf("encoding %s result: %w", def.Name, err)
			}

			return &sdkmcp.CallToolResult{
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
			}, nil
		})
	}
}

func toSchema(raw map[string]any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}
