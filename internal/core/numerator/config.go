package numerator

import "fmt"

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g. "PED", "SALE")
	Prefix string

	// PadWidth is the minimum number width (default 3)
	PadWidth int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:   prefix,
		PadWidth: 3,
	}
}

// Format renders a counter value as a document number.
func (c Config) Format(value int64) string {
	width := c.PadWidth
	if width <= 0 {
		width = 3
	}
	return fmt.Sprintf("%s-%0*d", c.Prefix, width, value)
}
