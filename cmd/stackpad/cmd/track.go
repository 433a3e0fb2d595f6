package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Manage the YouTube playlist",
}

var trackAddCmd = &cobra.Command{
	Use:   "add <title> <video>",
	Short: "Append a video to the playlist",
	Long:  "Append a video to the playlist. The video argument is a YouTube URL or a bare 11-character video ID.",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackAdd,
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the playlist in order",
	Args:  cobra.NoArgs,
	RunE:  runTrackList,
}

var trackMoveCmd = &cobra.Command{
	Use:   "move <id> <position>",
	Short: "Move a track to a new position",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackMove,
}

var trackRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a track from the playlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackRemove,
}

func init() {
	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackListCmd)
	trackCmd.AddCommand(trackMoveCmd)
	trackCmd.AddCommand(trackRemoveCmd)
}

func runTrackAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	tr, err := app.services.Tracks.Add(cmd.Context(), ws.ID, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("added track %s at position %d\n", tr.ID, tr.Position)
	return nil
}

func runTrackList(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	tracks, err := app.services.Tracks.List(cmd.Context(), ws.ID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tVIDEO\tTITLE")
	for _, tr := range tracks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", tr.Position, tr.ID, tr.VideoID, tr.Title)
	}
	return w.Flush()
}

func runTrackMove(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	position, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid position %q", args[1])
	}

	if err := app.services.Tracks.Move(cmd.Context(), ws.ID, args[0], position); err != nil {
		return err
	}

	fmt.Printf("moved track %s to position %d\n", args[0], position)
	return nil
}

func runTrackRemove(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ws, err := app.resolveWorkspace(cmd)
	if err != nil {
		return err
	}

	if err := app.services.Tracks.Remove(cmd.Context(), ws.ID, args[0]); err != nil {
		return err
	}

	fmt.Printf("removed track %s\n", args[0])
	return nil
}
