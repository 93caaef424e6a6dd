package traitnet

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soundprediction/traitnet"
	"github.com/soundprediction/traitnet/pkg/config"
	"github.com/soundprediction/traitnet/pkg/logger"
	"github.com/soundprediction/traitnet/pkg/sbgn"
)

var (
	renderNodes string
	renderEdges string
	renderOut   string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Validate the input tables and render an SBGN document",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := runPipeline(renderNodes, renderEdges)
			if err != nil {
				return err
			}

			doc, err := run.RenderSBGN()
			if err != nil {
				return err
			}
			if err := os.WriteFile(renderOut, doc, 0644); err != nil {
				return fmt.Errorf("failed to write SBGN document: %w", err)
			}
			fmt.Println("SBGN written to", renderOut)
			return nil
		},
	}
)

func init() {
	renderCmd.Flags().StringVar(&renderNodes, "nodes", "", "path to nodes.csv (required)")
	renderCmd.Flags().StringVar(&renderEdges, "edges", "", "path to edges.csv (required)")
	renderCmd.Flags().StringVar(&renderOut, "out", "network.sbgn", "output SBGN file")
	renderCmd.MarkFlagRequired("nodes")
	renderCmd.MarkFlagRequired("edges")

	rootCmd.AddCommand(renderCmd)
}

// runPipeline loads config and runs load/normalize/validate for a subcommand.
func runPipeline(nodesPath, edgesPath string) (*traitnet.Result, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	grid := sbgn.Grid{
		OriginX:  cfg.Layout.OriginX,
		OriginY:  cfg.Layout.OriginY,
		SpacingX: cfg.Layout.SpacingX,
		SpacingY: cfg.Layout.SpacingY,
	}
	opts := &traitnet.Options{
		Grid:   &grid,
		Logger: logger.NewDefaultLogger(logger.ParseLevel(cfg.Log.Level)),
	}
	return traitnet.Run(nodesPath, edgesPath, opts)
}
