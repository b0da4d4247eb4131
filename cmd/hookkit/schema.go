package main

import (
	"fmt"

	"github.com/kamikazebr/claude-hookkit/internal/schema"
	"github.com/kamikazebr/claude-hookkit/pkg/claude"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:       "schema <event>",
	Short:     "Print the JSON Schema of an event's stdin payload",
	Args:      cobra.ExactArgs(1),
	ValidArgs: allEventNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		event, err := claude.ParseEvent(args[0])
		if err != nil {
			return err
		}
		data, err := schema.JSON(event)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
