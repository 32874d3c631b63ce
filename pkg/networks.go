package liftoff

import (
	"fmt"
	"io"
)

// ListNetworks prints one "SSID: <ssid>" line per scanned network.
// Nothing is printed if the scan fails.
func ListNetworks(scanner NetworkScanner, w io.Writer) error {
	networks, err := scanner.Scan()
	if err != nil {
		return fmt.Errorf("failed to scan for wifi networks: %w", err)
	}

	// Scanner order is kept, duplicates and hidden (empty) SSIDs included.
	for _, network := range networks {
		fmt.Fprintf(w, "SSID: %s\n", network.SSID)
	}

	return nil
}
