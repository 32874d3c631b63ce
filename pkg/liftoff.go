package liftoff

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Run counts down and then lists the visible networks. A failed scan
// is fatal: it is logged and logger.ExitFunc is called with 1.
func Run(scanner NetworkScanner, out io.Writer, logger *logrus.Logger) {
	Countdown(out)

	if err := ListNetworks(scanner, out); err != nil {
		logger.Fatalf("Could not list wifi networks: %v", err)
	}
}
