package cmd

import (
	"os"

	liftoff "github.com/dogeorg/liftoff/pkg"
	"github.com/dogeorg/liftoff/pkg/system/network"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	newNetworkScanner = network.NewNetworkScanner
	exitFunc          = os.Exit
)

var rootCmd = &cobra.Command{
	Use:   "liftoff",
	Short: "Count down to liftoff and list the wifi networks in range",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger := logrus.New()
		logger.SetOutput(cmd.ErrOrStderr())
		logger.ExitFunc = exitFunc

		liftoff.Run(newNetworkScanner(logger), cmd.OutOrStdout(), logger)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
