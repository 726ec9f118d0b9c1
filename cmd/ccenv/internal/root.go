package internal

import (
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/goplus/ccenv/internal/toolchain"
)

var (
	modes         = []toolchain.Mode{toolchain.Debug}
	showBuildCmds bool
	configPath    string
	configSets    map[string]string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "ccenv",
	Short: "ccenv sets up C/C++ build environments",
	Long: `ccenv finds the C and C++ compilers installed on this machine and derives
debug and release build environments from them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		} else {
			log.SetOutputLevel(log.Linfo)
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Var(newModesValue(&modes), "modes",
		"A comma separated list of modes. Choose from: "+toolchain.ModeNames()+". Default is debug.")
	flags.BoolVar(&showBuildCmds, "show-build-cmds", false, "Show build commands instead of friendly build messages")
	flags.StringVar(&configPath, "config", "", "Configuration file (default ./ccenv.yaml, then the user config dir)")
	flags.StringToStringVar(&configSets, "set", nil, "Override a configuration key, e.g. --set toolchain.cc=gcc")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
