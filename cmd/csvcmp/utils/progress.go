package utils

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wrgl/csvcmp/pkg/pbar"
)

func SetupProgressBarFlags(flags *pflag.FlagSet) {
	flags.Bool("no-progress", false, "don't display progress bar")
}

// GetProgressBarContainer renders bars to stderr, only when it is a terminal
func GetProgressBarContainer(cmd *cobra.Command) (*pbar.Container, error) {
	noP, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return nil, err
	}
	out := cmd.ErrOrStderr()
	return pbar.NewContainer(out, noP || !IsTerminal(out)), nil
}
