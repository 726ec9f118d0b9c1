package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goplus/ccenv/internal/appbundle"
	"github.com/goplus/ccenv/internal/report"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle NAME",
	Short: "Create an application bundle skeleton",
	Long:  `Bundle creates NAME.app with its Contents/MacOS and Contents/Resources directories under the build directory.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBundle,
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}

func runBundle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	b := appbundle.LayoutOf(cfg.Dirs.Build, args[0])
	report.New(cmd.OutOrStdout(), showBuildCmds).Step("MKDIR", b.Root, []string{"mkdir", "-p", b.MacOS, b.Resources})
	if err := b.Create(); err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}
	return nil
}
