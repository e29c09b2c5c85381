package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/schem"
	"github.com/gogpu/schem/internal/config"
)

var (
	// Global flags
	verbose    bool
	objectName string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "schem",
	Short: "schem - schematic geometry tools",
	Long: `schem loads scene files describing schematic objects and runs the
geometry engine on them: bounding boxes, hit testing, point editing and
rendering.

View defaults come from SCHEM_* environment variables and can be
overridden per command.

Examples:
  schem bbox sheet.sch                          # Show bounding boxes
  schem render sheet.sch -o sheet.png           # Render the top object
  schem pick sheet.sch --at 12,40               # Select the nearest element
  schem drag sheet.sch -i 0 --from 0,0 --to 30,5 --manhattan`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if verbose || cfg.Verbose {
			schem.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity to stderr")
	rootCmd.PersistentFlags().StringVar(&objectName, "object", "", "object to operate on (default: first object in the file)")
}
