package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `stackpad keeps one person's working state: sticky notes, todos, a snippet
vault, daily check-ins, pomodoro logs, and a music playlist, all grouped by
workspace.

Core concepts:
- Workspace: the scoping unit. Every other entity lives inside exactly one
  workspace. Omit workspace_id and the default workspace is used.
- Check-in: an immutable log entry (progress, gotcha, error, tip) with
  optional hours. Statistics (today/week counts, per-type totals, a
  trailing-week histogram, and the daily streak) are derived on demand from
  the raw entries via get_checkin_stats; nothing is precomputed or stored.
- Snippet: a saved command. search_snippets runs full-text search over
  titles, commands, and descriptions.
- Track: a YouTube playlist entry; positions are contiguous and 1-based.
- draft_message is stateless: it rewrites text in a tone and stores nothing.

Typical flow:
1) get_workspace (no arguments) to find the default workspace.
2) list_notes / list_todos / list_checkins to see current state.
3) Mutate with the create_* / update_* / toggle_* / delete_* tools.
4) get_checkin_stats for streak and histogram data after logging check-ins.

Transport notes:
- HTTP: pass the workspace via the Stackpad-Workspace header.
- Stdio: pass workspace_id as a tool argument (or _meta.workspace_id).
- A workspace_id argument always overrides the transport-level workspace.

Docs:
- stackpad://docs/concepts (entity glossary + invariants)
- stackpad://docs/checkin-stats (how the derived statistics are computed)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "stackpad://docs/concepts",
		Name:        "docs_concepts",
		Title:       "stackpad concepts",
		Description: "Entity glossary and the invariants each tool preserves.",
		Content: `# stackpad concepts

## Workspace

The scoping unit. Deleting a workspace deletes everything inside it. There is
always a default workspace; it is created lazily on first use.

## Notes

Sticky notes with content, color, board position, and a pinned flag. Updates
are last-write-wins: there is no version check and no conflict detection.
Listing returns pinned notes first, then by most recent update.

## Todos

Items are open or done. toggle_todo flips the state and stamps or clears
completed_at. clear_completed_todos removes every done item in one call.

## Check-ins

Append-only apart from deletion. An entry's type is one of progress, gotcha,
error, tip; hours must not be negative. Entries never change after creation,
so statistics derived from them are reproducible.

## Snippets

Saved commands with optional description and language tag. Search is
full-text over title, command, and description.

## Tracks

Playlist positions are contiguous starting at 1. remove_track closes the gap;
move_track reinserts at the requested position and renumbers.
`,
	},
	{
		URI:         "stackpad://docs/checkin-stats",
		Name:        "docs_checkin_stats",
		Title:       "Check-in statistics",
		Description: "How get_checkin_stats derives its numbers from raw entries.",
		Content: `# Check-in statistics

get_checkin_stats recomputes everything from the raw entries at call time.

- Day boundaries are local calendar midnights, never rolling 24-hour windows.
  An entry at 23:59 and one at 00:01 the next day count as different days.
- today counts entries since local midnight.
- week counts today plus the seven preceding calendar days.
- daily_activity is a seven-bucket histogram, oldest day first, labelled with
  the weekday name.
- streak walks backward from today (or from yesterday when today is empty)
  counting consecutive days that have at least one entry.
- total_hours sums the hours field across all entries.

Because entries are immutable, the same entries and the same clock instant
always produce the same snapshot.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
