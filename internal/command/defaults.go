package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hierarchyplus/hierarchy-plus/internal/config"
)

// NewDefaultsCmd creates the defaults command
func NewDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the blob (or, with --json, the JSON) of the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := config.DefaultSettings()
			out := cmd.OutOrStdout()

			if jsonOnly(cmd) {
				payload, err := json.MarshalIndent(data, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format settings: %w", err)
				}
				fmt.Fprintln(out, string(payload))
				return nil
			}

			blob, err := config.Encode(codec(), data)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, blob)
			return nil
		},
	}
}
