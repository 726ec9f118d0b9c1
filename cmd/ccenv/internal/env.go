package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goplus/ccenv/internal/report"
)

var envProbe bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the build environment",
	Long:  `Env prints the selected compilers and the variables of each requested mode.`,
	Args:  cobra.NoArgs,
	RunE:  runEnv,
}

func init() {
	envCmd.Flags().BoolVar(&envProbe, "probe", false, "Run the compilers to report their versions")
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	be, err := setup(cmd.Context(), envProbe)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	r := report.New(out, showBuildCmds)

	for _, c := range []struct {
		label string
		path  string
		brand fmt.Stringer
		ver   string
	}{
		{"CC", be.toolchain.CC.Path, be.toolchain.CC.Brand, be.toolchain.CC.Version},
		{"CXX", be.toolchain.CXX.Path, be.toolchain.CXX.Brand, be.toolchain.CXX.Version},
	} {
		desc := c.path + " (" + c.brand.String()
		if c.ver != "" {
			desc += " " + c.ver
		}
		r.Field(c.label, desc+")")
	}
	for _, v := range be.variants {
		fmt.Fprintf(out, "\n[%s]\n", v.Mode)
		for _, kv := range v.Vars() {
			k, val, _ := strings.Cut(kv, "=")
			r.Field(k, val)
		}
	}
	return nil
}
