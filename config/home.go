// Package config provides configuration management for Relay Cycler.
// This file handles the home reference record: the fixed geographic
// point relays are ranked against.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yllada/relay-cycler/common"
)

// HomeReference is the distance baseline for relay ranking. It is
// written once by an external setup flow and only ever read here;
// it stays immutable for the duration of an invocation.
type HomeReference struct {
	// Latitude in decimal degrees, [-90, 90].
	Latitude float64 `yaml:"latitude"`
	// Longitude in decimal degrees, [-180, 180].
	Longitude float64 `yaml:"longitude"`
	// CountryCode is the lowercase two-letter code of the home country,
	// used as the candidate country when the VPN is disconnected.
	CountryCode string `yaml:"country_code"`
}

// Validate checks coordinate ranges and the country code.
// Malformed values are a fatal input error, never silently corrected.
func (h *HomeReference) Validate() error {
	if h.Latitude < -90 || h.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", h.Latitude)
	}
	if h.Longitude < -180 || h.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", h.Longitude)
	}
	if strings.TrimSpace(h.CountryCode) == "" {
		return fmt.Errorf("country code is empty")
	}
	return nil
}

// LoadHome reads the home reference record from the config directory.
// A missing file surfaces common.ErrMissingHomeReference so the caller
// can point the user at the setup flow; a malformed record is fatal too.
func LoadHome() (*HomeReference, error) {
	path, err := getHomePath()
	if err != nil {
		return nil, err
	}
	return LoadHomeFile(path)
}

// LoadHomeFile reads and validates a home reference record from path.
func LoadHomeFile(path string) (*HomeReference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrMissingHomeReference
		}
		return nil, common.WrapError(err, "failed to read home reference")
	}

	var home HomeReference
	if err := yaml.Unmarshal(data, &home); err != nil {
		return nil, common.WrapError(common.ErrMissingHomeReference,
			fmt.Sprintf("unreadable home reference %s", path))
	}

	home.CountryCode = strings.ToLower(strings.TrimSpace(home.CountryCode))

	if err := home.Validate(); err != nil {
		return nil, common.WrapError(common.ErrMissingHomeReference,
			fmt.Sprintf("invalid home reference: %v", err))
	}

	return &home, nil
}

func getHomePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", common.ConfigDirName, common.HomeFileName), nil
}
