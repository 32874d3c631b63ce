package network

import (
	liftoff "github.com/dogeorg/liftoff/pkg"
	network_wifi "github.com/dogeorg/liftoff/pkg/system/network/wifi"
	"github.com/sirupsen/logrus"
)

func NewNetworkScanner(logger logrus.FieldLogger) liftoff.NetworkScanner {
	return NetworkScannerLinux{
		WifiScanner: network_wifi.NewWifiScanner(),
		log:         logger,
	}
}
