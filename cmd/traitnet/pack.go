package traitnet

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soundprediction/traitnet/pkg/config"
)

var (
	packNodes string
	packEdges string
	packOut   string

	packCmd = &cobra.Command{
		Use:   "pack",
		Short: "Validate the input tables and write the cleaned bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := runPipeline(packNodes, packEdges)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if _, err := run.WriteBundle(packOut, cfg.Bundle.Parquet); err != nil {
				return err
			}
			fmt.Println("Bundle written to", packOut)
			return nil
		},
	}
)

func init() {
	packCmd.Flags().StringVar(&packNodes, "nodes", "", "path to nodes.csv (required)")
	packCmd.Flags().StringVar(&packEdges, "edges", "", "path to edges.csv (required)")
	packCmd.Flags().StringVar(&packOut, "out", "bundle", "output directory")
	packCmd.Flags().Bool("parquet", false, "also mirror the cleaned tables as Parquet")
	packCmd.MarkFlagRequired("nodes")
	packCmd.MarkFlagRequired("edges")

	viper.BindPFlag("bundle.parquet", packCmd.Flags().Lookup("parquet"))

	rootCmd.AddCommand(packCmd)
}
