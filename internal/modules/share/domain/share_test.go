package domain_test

import (
	"strings"
	"testing"

	"umusanzu/internal/modules/share/domain"
)

func validManifest() domain.Manifest {
	return domain.Manifest{
		Name:         "drive",
		Version:      "1.0.0",
		Binary:       "/opt/plugins/drive",
		SHA256:       strings.Repeat("a", 64),
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityDeliver},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()

	if err := validManifest().Validate(); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}

	m := validManifest()
	m.SHA256 = "ABC"
	if err := m.Validate(); err == nil {
		t.Fatalf("bad sha256 accepted")
	}

	m = validManifest()
	m.Capabilities = nil
	if err := m.Validate(); err == nil {
		t.Fatalf("empty capabilities accepted")
	}

	m = validManifest()
	m.Capabilities = []domain.Capability{domain.CapabilityDeliver, domain.CapabilityDeliver}
	if err := m.Validate(); err == nil {
		t.Fatalf("duplicate capability accepted")
	}

	m = validManifest()
	m.Capabilities = []domain.Capability{"upload"}
	if err := m.Validate(); err == nil {
		t.Fatalf("unknown capability accepted")
	}
}

func TestManifestHasCapability(t *testing.T) {
	t.Parallel()

	m := validManifest()
	if !m.HasCapability(domain.CapabilityDeliver) {
		t.Fatalf("deliver capability missing")
	}
	if m.HasCapability(domain.CapabilityAnnounce) {
		t.Fatalf("announce capability reported without being declared")
	}
}

func TestDeliveryValidate(t *testing.T) {
	t.Parallel()

	d := domain.Delivery{Filename: "New_Pairs_x.csv", Content: "header\n"}
	if err := d.Validate(); err != nil {
		t.Fatalf("valid delivery rejected: %v", err)
	}
	if err := (domain.Delivery{Content: "x"}).Validate(); err == nil {
		t.Fatalf("missing filename accepted")
	}
	if err := (domain.Delivery{Filename: "x"}).Validate(); err == nil {
		t.Fatalf("missing content accepted")
	}
}
