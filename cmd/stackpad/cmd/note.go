package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nathanellevy/stackpad/internal/domain/note"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage sticky notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Create a sticky note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteAdd,
}

var noteAddColor string

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, pinned first",
	Args:  cobra.NoArgs,
	RunE:  runNoteList,
}

var noteRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteRemove,
}

var notePinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Pin a note to the top of the board",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotePin,
}

func init() {
	noteAddCmd.Flags().StringVarP(&noteAddColor, "color", "c", "", "note color (defaults to yellow)")
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteRemoveCmd)
	noteCmd.AddCommand(notePinCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	n, err := app.services.Notes.Create(cmd.Context(), ws.ID, note.CreateRequest{
		Content: args[0],
		Color:   noteAddColor,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created note %s\n", n.ID)
	return nil
}

func runNoteList(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	notes, err := app.services.Notes.List(cmd.Context(), ws.ID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPIN\tCOLOR\tCONTENT")
	for _, n := range notes {
		pin := ""
		if n.Pinned {
			pin = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, pin, n.Color, truncate(n.Content, 60))
	}
	return w.Flush()
}

func runNoteRemove(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	if err := app.services.Notes.Delete(cmd.Context(), ws.ID, args[0]); err != nil {
		return err
	}

	fmt.Printf("deleted note %s\n", args[0])
	return nil
}

func runNotePin(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	pinned := true
	n, err := app.services.Notes.Update(cmd.Context(), ws.ID, note.UpdateRequest{
		ID:     args[0],
		Pinned: &pinned,
	})
	if err != nil {
		return err
	}

	fmt.Printf("pinned note %s\n", n.ID)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
