package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// Capability names what a share plugin can do with a committed batch.
type Capability string

const (
	// CapabilityDeliver uploads the full batch content somewhere.
	CapabilityDeliver Capability = "deliver"
	// CapabilityAnnounce posts a short notice without the content.
	CapabilityAnnounce Capability = "announce"
)

var (
	ErrPluginDisabled    = errors.New("share plugin is disabled")
	ErrChecksumMismatch  = errors.New("share plugin checksum mismatch")
	ErrCapabilityMissing = errors.New("share plugin capability missing")
	ErrPluginTimeout     = errors.New("share plugin timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

type Manifest struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Binary       string       `json:"binary"`
	SHA256       string       `json:"sha256"`
	Enabled      bool         `json:"enabled"`
	Capabilities []Capability `json:"capabilities"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("plugin sha256 must be lowercase 64-char hex")
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("plugin capabilities are required")
	}
	seen := map[Capability]struct{}{}
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if _, ok := seen[capability]; ok {
			return fmt.Errorf("duplicate capability: %s", capability)
		}
		seen[capability] = struct{}{}
	}
	return nil
}

func (c Capability) Validate() error {
	switch c {
	case CapabilityDeliver, CapabilityAnnounce:
		return nil
	default:
		return fmt.Errorf("unknown capability: %s", c)
	}
}

func (m Manifest) HasCapability(capability Capability) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name         string
	Version      string
	Capabilities []Capability
}

// Delivery is one committed batch handed to a plugin.
type Delivery struct {
	Filename string
	Mode     string
	Content  string
	Count    int
}

func (d Delivery) Validate() error {
	if d.Filename == "" {
		return fmt.Errorf("delivery filename is required")
	}
	if d.Content == "" {
		return fmt.Errorf("delivery content is required")
	}
	return nil
}

// Receipt is a plugin's confirmation of where a batch ended up.
type Receipt struct {
	Destination string
	Detail      string
}
