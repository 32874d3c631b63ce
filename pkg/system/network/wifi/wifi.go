package network_wifi

type ScannedWifiNetwork struct {
	SSID       string
	BSSID      string
	Encryption string
	// Link quality normalised to 0..1, zero when the driver does not report it.
	Quality float32
	Signal  string
}

type WifiScanner interface {
	Scan(networkInterface string) ([]ScannedWifiNetwork, error)
}

func NewWifiScanner() WifiScanner {
	return IWListScanner{}
}
