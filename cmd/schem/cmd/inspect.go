package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bboxCmd = &cobra.Command{
	Use:   "bbox <scene-file>",
	Short: "Show object bounding boxes",
	Long: `Load a scene file and print the bounding box of every object. Objects
with pin labels also report the schematic box that encloses the pins.

Examples:
  schem bbox sheet.sch
  schem bbox --object resistor sheet.sch`,
	Args: cobra.ExactArgs(1),
	RunE: runBBox,
}

func init() {
	rootCmd.AddCommand(bboxCmd)
}

func runBBox(cmd *cobra.Command, args []string) error {
	s, obj, err := loadObject(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, o := range s.Objects {
		if objectName != "" && o != obj {
			continue
		}
		fmt.Fprintf(out, "%s: %d elements, bbox %s\n", o.Name, o.Len(), formatBBox(o.BBox))
		if o.SchemBBox != nil {
			fmt.Fprintf(out, "  schematic bbox %s\n", formatBBox(*o.SchemBBox))
		}
	}
	return nil
}
