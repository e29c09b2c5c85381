package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/schem"
)

var (
	editIndex int
	dragFrom  string
	dragTo    string
	manhattan bool

	rotateCenter  string
	rotateDegrees float64
)

var dragCmd = &cobra.Command{
	Use:   "drag <scene-file>",
	Short: "Drag the element point nearest to a position",
	Long: `Start an edit on one element at the editable point nearest to --from,
drag it to --to and commit. The resulting bounding box and the undo
records are printed. The scene file is not modified.

Examples:
  schem drag sheet.sch -i 0 --from 40,20 --to 60,25
  schem drag sheet.sch -i 0 --from 40,20 --to 60,25 --manhattan`,
	Args: cobra.ExactArgs(1),
	RunE: runDrag,
}

var rotateCmd = &cobra.Command{
	Use:   "rotate <scene-file>",
	Short: "Rotate an element about a point",
	Long: `Rotate one element clockwise by --degrees about --center and print the
resulting bounding box. The scene file is not modified.

Examples:
  schem rotate sheet.sch -i 2 --center 0,0 --degrees 90`,
	Args: cobra.ExactArgs(1),
	RunE: runRotate,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	rootCmd.AddCommand(rotateCmd)

	dragCmd.Flags().IntVarP(&editIndex, "index", "i", 0, "element index")
	dragCmd.Flags().StringVar(&dragFrom, "from", "", "model point to pick x,y")
	dragCmd.Flags().StringVar(&dragTo, "to", "", "model point to drag to x,y")
	dragCmd.Flags().BoolVar(&manhattan, "manhattan", false, "keep wire segments axis-aligned (default: SCHEM_MANHATTAN)")
	_ = dragCmd.MarkFlagRequired("from")
	_ = dragCmd.MarkFlagRequired("to")

	rotateCmd.Flags().IntVarP(&editIndex, "index", "i", 0, "element index")
	rotateCmd.Flags().StringVar(&rotateCenter, "center", "0,0", "rotation center x,y")
	rotateCmd.Flags().Float64Var(&rotateDegrees, "degrees", 90, "clockwise angle")
}

func runDrag(cmd *cobra.Command, args []string) error {
	from, err := parsePoint(dragFrom)
	if err != nil {
		return err
	}
	to, err := parsePoint(dragTo)
	if err != nil {
		return err
	}
	_, obj, err := loadObject(args[0])
	if err != nil {
		return err
	}

	undo := &schem.UndoRecorder{}
	session := schem.NewEditSession(obj,
		schem.WithView(cfg.View()),
		schem.WithUndoLog(undo),
		schem.WithManhattan(manhattan || cfg.Manhattan),
	)
	if err := session.BeginEdit(editIndex, from); err != nil {
		return fmt.Errorf("error starting edit: %w", err)
	}
	if err := session.DragTo(to); err != nil {
		_ = session.Cancel()
		return fmt.Errorf("error dragging: %w", err)
	}

	out := cmd.OutOrStdout()
	switch err := session.Finish(); {
	case errors.Is(err, schem.ErrDegenerate):
		fmt.Fprintf(out, "element %d collapsed and was removed\n", editIndex)
	case err != nil:
		return fmt.Errorf("error finishing edit: %w", err)
	}

	for _, r := range undo.Records {
		fmt.Fprintf(out, "undo %s phase %d\n", r.Kind, r.Phase)
	}
	fmt.Fprintf(out, "%s bbox %s\n", obj.Name, formatBBox(obj.BBox))
	return nil
}

func runRotate(cmd *cobra.Command, args []string) error {
	center, err := parsePoint(rotateCenter)
	if err != nil {
		return err
	}
	_, obj, err := loadObject(args[0])
	if err != nil {
		return err
	}
	if err := schem.RotateElement(obj, editIndex, center, rotateDegrees, nil); err != nil {
		return fmt.Errorf("error rotating: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s bbox %s\n", obj.Name, formatBBox(obj.BBox))
	return nil
}
