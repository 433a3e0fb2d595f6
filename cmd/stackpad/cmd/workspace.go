package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nathanellevy/stackpad/internal/domain/workspace"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage workspaces",
}

var workspaceCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceCreate,
}

var workspaceCreateDescription string

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces",
	Args:  cobra.NoArgs,
	RunE:  runWorkspaceList,
}

var workspaceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workspace and everything in it",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceDelete,
}

func init() {
	workspaceCreateCmd.Flags().StringVarP(&workspaceCreateDescription, "description", "d", "", "workspace description")
	workspaceCmd.AddCommand(workspaceCreateCmd)
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceDeleteCmd)
}

func runWorkspaceCreate(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.services.Workspaces.Create(cmd.Context(), workspace.CreateRequest{
		Name:        args[0],
		Description: workspaceCreateDescription,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created workspace %s (%s)\n", ws.Name, ws.ID)
	return nil
}

func runWorkspaceList(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	summaries, err := app.services.Workspaces.List(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tNOTES\tOPEN TODOS\tCHECK-INS")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", s.ID, s.Name, s.NoteCount, s.OpenTodos, s.CheckinCount)
	}
	return w.Flush()
}

func runWorkspaceDelete(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.services.Workspaces.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("deleted workspace %s\n", args[0])
	return nil
}
