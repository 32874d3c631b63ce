package network_wifi

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

var _ WifiScanner = &IWListScanner{}

var (
	cellRegex       = regexp.MustCompile(`(?m)^\s*Cell \d+ - `)
	ssidRegex       = regexp.MustCompile(`(?m)ESSID:"(.*)"\s*$`)
	addressRegex    = regexp.MustCompile(`Address: ([0-9A-Fa-f:]+)`)
	encryptionRegex = regexp.MustCompile(`Encryption key:(on|off)`)
	wpa2Regex       = regexp.MustCompile(`IE: IEEE 802.11i/WPA2 Version`)
	wpaRegex        = regexp.MustCompile(`IE: WPA Version 1`)
	qualityRegex    = regexp.MustCompile(`Quality[=:](\d+)/(\d+)`)
	signalRegex     = regexp.MustCompile(`Signal level[=:](-?[0-9./]+(?: dBm)?)`)
)

type IWListScanner struct {
	// builds the iwlist command. nil means exec.Command.
	command func(name string, arg ...string) *exec.Cmd
}

func (s IWListScanner) Scan(interfaceName string) ([]ScannedWifiNetwork, error) {
	out, err := s.runIWList(interfaceName)
	if err != nil {
		return nil, err
	}

	return parseIWListOutput(string(out)), nil
}

func (s IWListScanner) runIWList(interfaceName string) ([]byte, error) {
	command := s.command
	if command == nil {
		command = exec.Command
	}

	cmd := command("iwlist", interfaceName, "scan")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("iwlist %s scan: %w: %s", interfaceName, err, strings.TrimSpace(stderr.String()))
	}

	return out.Bytes(), nil
}

func parseIWListOutput(output string) []ScannedWifiNetwork {
	var networks []ScannedWifiNetwork

	// The first chunk is the "<iface> Scan completed" header.
	cells := cellRegex.Split(output, -1)

	for _, cell := range cells[1:] {
		ssid := ssidRegex.FindStringSubmatch(cell)
		address := addressRegex.FindStringSubmatch(cell)

		if len(ssid) < 2 || len(address) < 2 {
			continue
		}

		network := ScannedWifiNetwork{
			SSID:       ssid[1],
			BSSID:      address[1],
			Encryption: parseEncryption(cell),
			Quality:    parseQuality(cell),
		}

		if signal := signalRegex.FindStringSubmatch(cell); len(signal) > 1 {
			network.Signal = signal[1]
		}

		networks = append(networks, network)
	}

	return networks
}

func parseEncryption(cell string) string {
	encryption := encryptionRegex.FindStringSubmatch(cell)
	if len(encryption) < 2 || encryption[1] != "on" {
		return ""
	}

	if wpa2Regex.MatchString(cell) {
		return "WPA2"
	} else if wpaRegex.MatchString(cell) {
		return "WPA"
	}

	return "WEP"
}

func parseQuality(cell string) float32 {
	quality := qualityRegex.FindStringSubmatch(cell)
	if len(quality) < 3 {
		return 0
	}

	value, err := strconv.ParseFloat(quality[1], 32)
	if err != nil {
		return 0
	}
	scale, err := strconv.ParseFloat(quality[2], 32)
	if err != nil || scale == 0 {
		return 0
	}

	return float32(value / scale)
}
