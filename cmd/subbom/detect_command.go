package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subbom/internal/encoding"
	"subbom/internal/workflow"
)

type detectionJSON struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Encoding string `json:"encoding"`
	Label    string `json:"label"`
	Action   string `json:"action"`
}

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "detect [dir]",
		Short: "Report the encoding of each subtitle file without changing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inspections, err := workflow.Inspect(dirArg(args))
			if err != nil {
				return err
			}

			if jsonOutput {
				items := make([]detectionJSON, 0, len(inspections))
				for _, in := range inspections {
					items = append(items, detectionJSON{
						Name:     in.Name,
						Path:     in.Path,
						Size:     in.Size,
						Encoding: in.Encoding.Key(),
						Label:    in.Encoding.String(),
						Action:   actionFor(in.Encoding),
					})
				}
				return writeJSON(cmd, items)
			}

			out := cmd.OutOrStdout()
			if len(inspections) == 0 {
				fmt.Fprintln(out, "No subtitle files detected.")
				return nil
			}
			rows := make([][]string, 0, len(inspections))
			for _, in := range inspections {
				rows = append(rows, []string{
					in.Name,
					in.Encoding.String(),
					strconv.FormatInt(in.Size, 10),
					actionFor(in.Encoding),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Encoding", "Bytes", "Action"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func actionFor(enc encoding.Encoding) string {
	if enc.NeedsConversion() {
		return "convert"
	}
	return "skip"
}
