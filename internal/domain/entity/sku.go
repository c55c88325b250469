package entity

// SKU is a catalogue entry mapping an industry to a manufacturing process.
// Read-only reference data, seeded by cmd/seed_skus.
type SKU struct {
	ID          string
	Industry    string // e.g. "automotive", "aerospace"
	ProcessName string // e.g. "injection_molding"
	Description string
}
