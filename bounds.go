package genni

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidRange is returned for a range with Min > Max or a negative bound.
	ErrInvalidRange = errors.New("invalid range")
	// ErrWidth is returned when a bound has more digits than its half allows.
	ErrWidth = errors.New("bound exceeds digit width")
)

// Range is an inclusive integer interval.
type Range struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// Len is the number of integers in r.
func (r Range) Len() int64 {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Bounds restricts the four half magnitudes the search enumerates.
type Bounds struct {
	XR Range `yaml:"xr"`
	YR Range `yaml:"yr"`
	XL Range `yaml:"xl"`
	YL Range `yaml:"yl"`
}

// DefaultBounds is the full search space.
func DefaultBounds() Bounds {
	return Bounds{
		XR: Range{0, 999},
		YR: Range{0, 999},
		XL: Range{10_000, 99_999},
		YL: Range{1_000, 9_999},
	}
}

// Validate checks ordering, sign and digit width of every range.
func (b Bounds) Validate() error {
	for _, c := range []struct {
		name  string
		r     Range
		width int
	}{
		{"xr", b.XR, WidthXR},
		{"yr", b.YR, WidthYR},
		{"xl", b.XL, WidthXL},
		{"yl", b.YL, WidthYL},
	} {
		if c.r.Min < 0 || c.r.Min > c.r.Max {
			return fmt.Errorf("%s [%d,%d]: %w", c.name, c.r.Min, c.r.Max, ErrInvalidRange)
		}
		if !fits(c.r.Max, c.width) {
			return fmt.Errorf("%s max %d wider than %d digits: %w", c.name, c.r.Max, c.width, ErrWidth)
		}
	}
	return nil
}

// LoadBounds decodes YAML bounds from r. Ranges missing from the document
// keep their DefaultBounds values.
func LoadBounds(r io.Reader) (Bounds, error) {
	b := DefaultBounds()
	if err := yaml.NewDecoder(r).Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return Bounds{}, fmt.Errorf("decode bounds: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}
