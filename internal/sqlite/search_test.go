package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nathanellevy/stackpad/internal/domain/snippet"
)

func TestSearchRepository_Search(t *testing.T) {
	db := NewTestDB(t)
	snippets := NewSnippetRepository(db)
	search := NewSearchRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")
	seedSnippet(t, snippets, ws.ID, "s1", "prune docker", "docker system prune -af", "shell")
	seedSnippet(t, snippets, ws.ID, "s2", "docker logs", "docker logs -f app", "shell")
	seedSnippet(t, snippets, ws.ID, "s3", "pretty json", "json.dumps(obj, indent=2)", "python")

	results, err := search.Search(ctx, ws.ID, "docker", snippet.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		require.Contains(t, []string{"s1", "s2"}, r.Snippet.ID)
	}

	results, err = search.Search(ctx, ws.ID, "json", snippet.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "s3", results[0].Snippet.ID)

	results, err = search.Search(ctx, ws.ID, "nothing", snippet.SearchOptions{})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestSearchRepository_WorkspaceIsolation(t *testing.T) {
	db := NewTestDB(t)
	snippets := NewSnippetRepository(db)
	search := NewSearchRepository(db)
	ctx := context.Background()

	ws1 := seedWorkspace(t, db, "ws1")
	ws2 := seedWorkspace(t, db, "ws2")
	seedSnippet(t, snippets, ws1.ID, "s1", "prune docker", "docker system prune", "shell")
	seedSnippet(t, snippets, ws2.ID, "s2", "docker logs", "docker logs -f app", "shell")

	results, err := search.Search(ctx, ws1.ID, "docker", snippet.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "s1", results[0].Snippet.ID)
}

func TestSearchRepository_IndexFollowsMutations(t *testing.T) {
	db := NewTestDB(t)
	snippets := NewSnippetRepository(db)
	search := NewSearchRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")
	seedSnippet(t, snippets, ws.ID, "s1", "prune docker", "docker system prune", "shell")

	sn, err := snippets.Get(ctx, ws.ID, "s1")
	require.NoError(t, err)
	sn.Title = "cleanup containers"
	sn.Command = "podman system prune"
	require.NoError(t, snippets.Update(ctx, ws.ID, sn))

	results, err := search.Search(ctx, ws.ID, "docker", snippet.SearchOptions{})
	require.NoError(t, err)
	require.Empty(t, results, "old text should leave the index on update")

	results, err = search.Search(ctx, ws.ID, "podman", snippet.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.NoError(t, snippets.Delete(ctx, ws.ID, "s1"))
	results, err = search.Search(ctx, ws.ID, "podman", snippet.SearchOptions{})
	require.NoError(t, err)
	require.Empty(t, results, "deleted snippets should leave the index")
}

func TestSearchRepository_LanguageFilter(t *testing.T) {
	db := NewTestDB(t)
	snippets := NewSnippetRepository(db)
	search := NewSearchRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")
	seedSnippet(t, snippets, ws.ID, "s1", "parse json", "jq '.items[]'", "shell")
	seedSnippet(t, snippets, ws.ID, "s2", "parse json", "json.loads(raw)", "python")

	results, err := search.Search(ctx, ws.ID, "json", snippet.SearchOptions{Language: "python"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "s2", results[0].Snippet.ID)
}
