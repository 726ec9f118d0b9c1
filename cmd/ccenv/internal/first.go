package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var firstCmd = &cobra.Command{
	Use:   "first NAME...",
	Short: "Print the first available executable",
	Long:  `First prints the path of the first NAME, in order, that resolves on PATH.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFirst,
}

func init() {
	rootCmd.AddCommand(firstCmd)
}

func runFirst(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := newResolver(cfg)
	if err != nil {
		return err
	}
	path, ok := r.First(args)
	if !ok {
		return fmt.Errorf("none of %s found", strings.Join(args, ", "))
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
