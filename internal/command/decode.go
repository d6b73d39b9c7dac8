package command

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hierarchyplus/hierarchy-plus/internal/compress"
	"github.com/hierarchyplus/hierarchy-plus/internal/config"
)

// NewDecodeCmd creates the decode command
func NewDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [blob|-]",
		Short: "Decode a settings blob and print its sections and JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			blob = strings.TrimSpace(blob)

			c := codec()
			data, err := config.Decode(c, blob)
			if err != nil {
				return err
			}
			payload, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to format settings: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOnly(cmd) {
				fmt.Fprintln(out, string(payload))
				return nil
			}

			sections, err := config.DecodeSections(c, blob)
			if err != nil {
				return err
			}
			size, err := compress.UncompressedSize(blob)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Compressed:   %s\n", humanize.Bytes(uint64(len(blob))))
			fmt.Fprintf(out, "Uncompressed: %s\n", humanize.Bytes(uint64(size)))
			fmt.Fprintln(out, "Sections:")
			tags := make([]string, 0, len(sections))
			for tag := range sections {
				tags = append(tags, tag)
			}
			slices.Sort(tags)
			for _, tag := range tags {
				fmt.Fprintf(out, "  %-8s %s\n", tag, humanize.Bytes(uint64(len(sections[tag]))))
			}
			if _, ok := sections[config.MainSection]; !ok {
				fmt.Fprintf(out, "No %s section, showing defaults\n", config.MainSection)
			}
			fmt.Fprintln(out, string(payload))
			return nil
		},
	}
}
