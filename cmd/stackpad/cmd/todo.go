package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nathanellevy/stackpad/internal/domain/todo"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the todo list",
}

var todoAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Add a todo item",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoAdd,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List todo items, open ones first",
	Args:  cobra.NoArgs,
	RunE:  runTodoList,
}

var (
	todoListOpen = false
	todoListDone = false
)

var todoToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a todo between open and done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoToggle,
}

var todoRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a todo item",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoRemove,
}

var todoClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every completed todo",
	Args:  cobra.NoArgs,
	RunE:  runTodoClear,
}

func init() {
	todoListCmd.Flags().BoolVar(&todoListOpen, "open", false, "only open items")
	todoListCmd.Flags().BoolVar(&todoListDone, "done", false, "only completed items")
	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoToggleCmd)
	todoCmd.AddCommand(todoRemoveCmd)
	todoCmd.AddCommand(todoClearCmd)
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	item, err := app.services.Todos.Add(cmd.Context(), ws.ID, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("added todo %s\n", item.ID)
	return nil
}

func runTodoList(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	var opts todo.ListOptions
	if todoListOpen {
		done := false
		opts.Done = &done
	} else if todoListDone {
		done := true
		opts.Done = &done
	}

	items, err := app.services.Todos.List(cmd.Context(), ws.ID, opts)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATE\tCONTENT")
	for _, item := range items {
		state := "[ ]"
		if item.Done {
			state = "[x]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.ID, state, truncate(item.Content, 60))
	}
	return w.Flush()
}

func runTodoToggle(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	item, err := app.services.Todos.Toggle(cmd.Context(), ws.ID, args[0])
	if err != nil {
		return err
	}

	state := "open"
	if item.Done {
		state = "done"
	}
	fmt.Printf("todo %s is now %s\n", item.ID, state)
	return nil
}

func runTodoRemove(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	if err := app.services.Todos.Delete(cmd.Context(), ws.ID, args[0]); err != nil {
		return err
	}

	fmt.Printf("deleted todo %s\n", args[0])
	return nil
}

func runTodoClear(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	removed, err := app.services.Todos.ClearCompleted(cmd.Context(), ws.ID)
	if err != nil {
		return err
	}

	fmt.Printf("removed %d completed todos\n", removed)
	return nil
}
