package liftoff

// see ./system/ for implementations

// snapshot the wireless networks currently visible
// to the host, in the order the scanner found them.
type NetworkScanner interface {
	Scan() ([]NetworkRecord, error)
}

// NetworkScanner returns these, one per scanned cell.
type NetworkRecord struct {
	SSID       string
	BSSID      string
	Encryption string
	Interface  string
}
