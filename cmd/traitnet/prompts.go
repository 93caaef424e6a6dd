package traitnet

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/soundprediction/traitnet/pkg/prompts"
)

var (
	promptsTrait  string
	promptsOutdir string

	promptsCmd = &cobra.Command{
		Use:   "prompts",
		Short: "Generate the literature-curation prompt pack for a trait",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prompts.WritePack(promptsOutdir, promptsTrait); err != nil {
				return err
			}
			abs, err := filepath.Abs(promptsOutdir)
			if err != nil {
				abs = promptsOutdir
			}
			fmt.Println("Prompts written to:", abs)
			return nil
		},
	}
)

func init() {
	promptsCmd.Flags().StringVar(&promptsTrait, "trait", "", "exact trait label used as the single process node (e.g. 'Flowering time')")
	promptsCmd.Flags().StringVar(&promptsOutdir, "outdir", "prompts", "output directory")
	promptsCmd.MarkFlagRequired("trait")

	rootCmd.AddCommand(promptsCmd)
}
