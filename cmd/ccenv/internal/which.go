package internal

import (
	"fmt"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var whichCmd = &cobra.Command{
	Use:   "which NAME...",
	Short: "Locate executables on PATH",
	Long: `Which prints the executable each NAME resolves to. Names containing a
directory separator are checked as given; bare names are searched on PATH.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWhich,
}

func init() {
	rootCmd.AddCommand(whichCmd)
}

func runWhich(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := newResolver(cfg)
	if err != nil {
		return err
	}
	var missing int
	for _, name := range args {
		path, ok := r.Resolve(name)
		if !ok {
			log.Debugf("which: %s not found", name)
			missing++
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d programs not found", missing, len(args))
	}
	return nil
}
