package command

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hierarchyplus/hierarchy-plus/internal/config"
)

// NewEncodeCmd creates the encode command
func NewEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <json-file|->",
		Short: "Encode settings JSON into a blob. Missing fields keep their defaults.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readJSON(cmd, args[0])
			if err != nil {
				return err
			}

			data := config.DefaultSettings()
			if err := json.Unmarshal(raw, data); err != nil {
				return fmt.Errorf("failed to parse settings JSON: %w", err)
			}

			blob, err := config.Encode(codec(), data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), blob)
			return nil
		},
	}
}

func readJSON(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
