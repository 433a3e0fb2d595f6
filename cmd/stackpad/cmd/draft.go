package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nathanellevy/stackpad/internal/domain/draft"
)

var draftCmd = &cobra.Command{
	Use:   "draft <text>",
	Short: "Rewrite a message in a given tone",
	Long:  "Rewrite a message in a given tone. Tones: professional, friendly, assertive, casual.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraft,
}

var draftTone string

func init() {
	draftCmd.Flags().StringVarP(&draftTone, "tone", "t", "professional", "target tone")
}

func runDraft(_ *cobra.Command, args []string) error {
	result, err := draft.Transform(args[0], draft.Tone(draftTone))
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
