package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/schem"
)

var (
	pickAt    string
	pickKinds string
	pickPins  bool

	areaFrom string
	areaTo   string
)

var pickCmd = &cobra.Command{
	Use:   "pick <scene-file>",
	Short: "Select the element nearest to a point",
	Long: `Hit-test a model-space point against the elements of an object. The
tolerance follows the view scale (SCHEM_SCALE and SCHEM_WIRELIM_*).

Examples:
  schem pick sheet.sch --at 12,40
  schem pick sheet.sch --at 12,40 --kinds polygon,arc`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

var areaCmd = &cobra.Command{
	Use:   "area <scene-file>",
	Short: "Select the elements inside a rectangle",
	Long: `List the elements of an object with a control point inside the
rectangle spanned by two model-space corners. Instances are searched
through every nested level.

Examples:
  schem area sheet.sch --from 0,0 --to 100,50`,
	Args: cobra.ExactArgs(1),
	RunE: runArea,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(areaCmd)

	pickCmd.Flags().StringVar(&pickAt, "at", "", "model point x,y")
	pickCmd.Flags().StringVar(&pickKinds, "kinds", "all", "element kinds to consider")
	pickCmd.Flags().BoolVar(&pickPins, "pins", true, "allow pin labels to be selected")
	_ = pickCmd.MarkFlagRequired("at")

	areaCmd.Flags().StringVar(&areaFrom, "from", "", "first corner x,y")
	areaCmd.Flags().StringVar(&areaTo, "to", "", "opposite corner x,y")
	_ = areaCmd.MarkFlagRequired("from")
	_ = areaCmd.MarkFlagRequired("to")
}

func runPick(cmd *cobra.Command, args []string) error {
	at, err := parsePoint(pickAt)
	if err != nil {
		return err
	}
	kinds, err := parseKinds(pickKinds)
	if err != nil {
		return err
	}
	_, obj, err := loadObject(args[0])
	if err != nil {
		return err
	}

	view := cfg.View()
	idx, ok := schem.SelectNearest(obj, at, view, kinds, pickPins)
	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintf(out, "nothing within %.2f of (%d,%d)\n", view.WireLim(), at.X, at.Y)
		return nil
	}
	e := obj.Elements[idx]
	fmt.Fprintf(out, "%d %s distance %.2f\n", idx, e.Kind(), e.Distance(at))
	return nil
}

func runArea(cmd *cobra.Command, args []string) error {
	from, err := parsePoint(areaFrom)
	if err != nil {
		return err
	}
	to, err := parsePoint(areaTo)
	if err != nil {
		return err
	}
	_, obj, err := loadObject(args[0])
	if err != nil {
		return err
	}

	quad := [4]schem.Point{from, schem.Pt(to.X, from.Y), to, schem.Pt(from.X, to.Y)}
	sel := schem.SelectArea(obj, quad)
	out := cmd.OutOrStdout()
	for _, idx := range sel {
		fmt.Fprintf(out, "%d %s\n", idx, obj.Elements[idx].Kind())
	}
	fmt.Fprintf(out, "%d selected\n", len(sel))
	return nil
}
