package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Print the format a file would be imported as",
	Long:  `Print the format guessed from the file extension. The file is not read.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), formats.Detect(args[0]))
		return err
	},
}
