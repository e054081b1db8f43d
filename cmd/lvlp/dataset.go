package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlp/problem"
)

func newDatasetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dataset",
		Short: "Print the coefficient table in file format",
		Long:  "Print the table selected by --data, or the built-in dataset, in the ';'-separated format solve reads.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tbl, err := problem.Load(cfg.Data)
			if err != nil {
				return err
			}

			return tbl.WriteCSV(cmd.OutOrStdout())
		},
	}
}
