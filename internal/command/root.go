package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hierarchyplus/hierarchy-plus/internal/compress"
)

const AppName = "hplus-settings"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

var errNoInput = errors.New("no input: pass a blob argument or pipe one on stdin")

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Inspect and produce Hierarchy Plus settings blobs",
		Long:          "hplus-settings decodes, encodes and prints the compressed settings blob stored by Hierarchy Plus.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().Bool("json", false, "print only the settings JSON")

	cmd.AddCommand(
		NewDecodeCmd(),
		NewEncodeCmd(),
		NewDefaultsCmd(),
	)
	return cmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd(Version).Execute()
}

// codec is the blob codec shared by every command
func codec() compress.Codec {
	return compress.NewService()
}

// readInput returns args[0], or stdin when no argument or "-" is given
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errNoInput
	}
	return text, nil
}

func jsonOnly(cmd *cobra.Command) bool {
	only, _ := cmd.Flags().GetBool("json")
	return only
}
