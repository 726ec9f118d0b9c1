package internal

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goplus/ccenv/internal/gtest"
	"github.com/goplus/ccenv/internal/report"
)

var (
	gtestOutput string
	gtestRun    bool
)

var gtestCmd = &cobra.Command{
	Use:   "gtest -o NAME SOURCE...",
	Short: "Build a googletest program",
	Long: `Gtest compiles SOURCE files together with gtest_main.cc and links them
against the static googletest library from the lib directory, once per mode.
Without --run the commands are only reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGtest,
}

func init() {
	gtestCmd.Flags().StringVarP(&gtestOutput, "output", "o", "", "Name of the test program")
	gtestCmd.Flags().BoolVar(&gtestRun, "run", false, "Run the build commands")
	_ = gtestCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(gtestCmd)
}

func runGtest(cmd *cobra.Command, args []string) error {
	be, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	r := report.New(cmd.OutOrStdout(), showBuildCmds)
	if gtestRun && !gtest.Available(be.cfg.Dirs.Lib) {
		return fmt.Errorf("gtest library not found: %s", gtest.StaticLib(be.cfg.Dirs.Lib))
	}
	for _, v := range be.variants {
		p := &gtest.Program{
			Target:  filepath.Join(be.cfg.Dirs.Build, string(v.Mode), gtestOutput),
			Sources: args,
			LibDir:  be.cfg.Dirs.Lib,
		}
		r.Step("CXX", p.Target, p.Command(v))
		if !gtestRun {
			continue
		}
		if err := p.Build(cmd.Context(), v, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
			r.Fail(p.Target, err)
			return err
		}
	}
	return nil
}
