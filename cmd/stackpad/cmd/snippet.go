package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nathanellevy/stackpad/internal/domain/snippet"
)

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Manage the command snippet vault",
}

var snippetAddCmd = &cobra.Command{
	Use:   "add <title> <command>",
	Short: "Store a snippet",
	Args:  cobra.ExactArgs(2),
	RunE:  runSnippetAdd,
}

var (
	snippetAddDescription string
	snippetAddLanguage    string
)

var snippetShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a snippet's full command",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetShow,
}

var snippetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snippets, most recently updated first",
	Args:  cobra.NoArgs,
	RunE:  runSnippetList,
}

var snippetListLanguage string

var snippetSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over title, command and description",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetSearch,
}

var snippetSearchLanguage string

var snippetRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a snippet",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetRemove,
}

func init() {
	snippetAddCmd.Flags().StringVarP(&snippetAddDescription, "description", "d", "", "what the snippet is for")
	snippetAddCmd.Flags().StringVarP(&snippetAddLanguage, "language", "l", "", "language or shell")
	snippetListCmd.Flags().StringVarP(&snippetListLanguage, "language", "l", "", "filter by language")
	snippetSearchCmd.Flags().StringVarP(&snippetSearchLanguage, "language", "l", "", "filter by language")
	snippetCmd.AddCommand(snippetAddCmd)
	snippetCmd.AddCommand(snippetShowCmd)
	snippetCmd.AddCommand(snippetListCmd)
	snippetCmd.AddCommand(snippetSearchCmd)
	snippetCmd.AddCommand(snippetRemoveCmd)
}

func runSnippetAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	sn, err := app.services.Snippets.Create(cmd.Context(), ws.ID, snippet.CreateRequest{
		Title:       args[0],
		Command:     args[1],
		Description: snippetAddDescription,
		Language:    snippetAddLanguage,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created snippet %s\n", sn.ID)
	return nil
}

func runSnippetShow(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	sn, err := app.services.Snippets.Get(cmd.Context(), ws.ID, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("# %s\n", sn.Title)
	if sn.Description != "" {
		fmt.Printf("# %s\n", sn.Description)
	}
	fmt.Println(sn.Command)
	return nil
}

func runSnippetList(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	snippets, err := app.services.Snippets.List(cmd.Context(), ws.ID, snippet.ListOptions{
		Language: snippetListLanguage,
	})
	if err != nil {
		return err
	}

	return printSnippets(cmd, snippets)
}

func runSnippetSearch(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	results, err := app.services.Snippets.Search(cmd.Context(), ws.ID, args[0], snippet.SearchOptions{
		Language: snippetSearchLanguage,
	})
	if err != nil {
		return err
	}

	snippets := make([]snippet.Snippet, 0, len(results))
	for _, r := range results {
		snippets = append(snippets, r.Snippet)
	}
	return printSnippets(cmd, snippets)
}

func runSnippetRemove(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	if err := app.services.Snippets.Delete(cmd.Context(), ws.ID, args[0]); err != nil {
		return err
	}

	fmt.Printf("deleted snippet %s\n", args[0])
	return nil
}

func printSnippets(cmd *cobra.Command, snippets []snippet.Snippet) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLANG\tTITLE\tCOMMAND")
	for _, sn := range snippets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sn.ID, sn.Language, sn.Title, truncate(sn.Command, 50))
	}
	return w.Flush()
}
