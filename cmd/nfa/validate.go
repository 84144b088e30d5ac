package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/nfa/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the definition for consistency",
	Long:  `Reports every unknown state, undeclared symbol and malformed transition in the definition file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		out := cmd.OutOrStdout()

		def, err := schema.LoadFile(file)
		if err != nil {
			return err
		}
		if err := def.Validate(); err != nil {
			for _, e := range schema.ValidationErrors(err) {
				fmt.Fprintf(out, "  - %v\n", e)
			}
			return fmt.Errorf("validation failed: %s", file)
		}

		fmt.Fprintln(out, "Definition is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
