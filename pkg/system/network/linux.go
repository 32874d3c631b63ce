package network

import (
	"errors"
	"fmt"

	liftoff "github.com/dogeorg/liftoff/pkg"
	network_wifi "github.com/dogeorg/liftoff/pkg/system/network/wifi"
	"github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"
)

var _ liftoff.NetworkScanner = &NetworkScannerLinux{}

var ErrNoWifiInterfaces = errors.New("no wireless interfaces found")

type NetworkScannerLinux struct {
	WifiScanner network_wifi.WifiScanner

	listInterfaces func() ([]string, error)
	log            logrus.FieldLogger
}

// Scan runs the wifi scanner on every wireless interface, in the order
// the kernel reports them. One failing interface fails the whole scan.
func (t NetworkScannerLinux) Scan() ([]liftoff.NetworkRecord, error) {
	listInterfaces := t.listInterfaces
	if listInterfaces == nil {
		listInterfaces = listWifiInterfaces
	}

	interfaceNames, err := listInterfaces()
	if err != nil {
		return nil, err
	}

	if len(interfaceNames) == 0 {
		return nil, ErrNoWifiInterfaces
	}

	wifiScanner := t.WifiScanner
	if wifiScanner == nil {
		wifiScanner = network_wifi.NewWifiScanner()
	}

	records := []liftoff.NetworkRecord{}

	for _, interfaceName := range interfaceNames {
		ssids, err := wifiScanner.Scan(interfaceName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan for wifi networks on %s: %w", interfaceName, err)
		}

		if t.log != nil {
			t.log.WithField("interface", interfaceName).Debugf("Found %d wifi networks", len(ssids))
		}

		for _, n := range ssids {
			records = append(records, liftoff.NetworkRecord{
				SSID:       n.SSID,
				BSSID:      n.BSSID,
				Encryption: n.Encryption,
				Interface:  interfaceName,
			})
		}
	}

	return records, nil
}

func listWifiInterfaces() ([]string, error) {
	wifiClient, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi interface client: %w", err)
	}
	defer wifiClient.Close()

	wifiInterfaces, err := wifiClient.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %w", err)
	}

	return wifiInterfaceNames(wifiInterfaces), nil
}

func wifiInterfaceNames(wifiInterfaces []*wifi.Interface) []string {
	names := []string{}
	for _, wifiInterface := range wifiInterfaces {
		// P2P devices and similar have no netdev name and can't be scanned.
		if wifiInterface == nil || wifiInterface.Name == "" {
			continue
		}
		names = append(names, wifiInterface.Name)
	}

	return names
}
