package model

// EncErrorPolicy controls how transcoding errors are handled while decoding
// the input byte buffer.
type EncErrorPolicy int

const (
	EncReplace EncErrorPolicy = iota
	EncStrict
	EncIgnore
)

// Options is the full set of tunables accepted by the driver. Zero-value
// fields are filled in from DefaultOptions by the driver before validation,
// so callers only need to set the fields they want to override.
type Options struct {
	LengthLow          int
	LengthHigh         int
	StopwordsLow       float64
	StopwordsHigh      float64
	MaxLinkDensity     float64
	MaxHeadingDistance int
	NoHeadings         bool

	Encoding        string
	DefaultEncoding string
	EncErrors       EncErrorPolicy
}

// DefaultOptions returns the tunable defaults from the original jusText
// distribution.
func DefaultOptions() Options {
	return Options{
		LengthLow:          70,
		LengthHigh:         200,
		StopwordsLow:       0.30,
		StopwordsHigh:      0.32,
		MaxLinkDensity:     0.2,
		MaxHeadingDistance: 200,
		NoHeadings:         false,
		DefaultEncoding:    "utf-8",
		EncErrors:          EncReplace,
	}
}

// WithDefaults returns a copy of opts with every zero-valued numeric field
// replaced by the corresponding default. NoHeadings has no meaningful zero
// value to detect (false is both the zero value and the default), so it is
// passed through unchanged.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.LengthLow == 0 {
		o.LengthLow = d.LengthLow
	}
	if o.LengthHigh == 0 {
		o.LengthHigh = d.LengthHigh
	}
	if o.StopwordsLow == 0 {
		o.StopwordsLow = d.StopwordsLow
	}
	if o.StopwordsHigh == 0 {
		o.StopwordsHigh = d.StopwordsHigh
	}
	if o.MaxLinkDensity == 0 {
		o.MaxLinkDensity = d.MaxLinkDensity
	}
	if o.MaxHeadingDistance == 0 {
		o.MaxHeadingDistance = d.MaxHeadingDistance
	}
	if o.DefaultEncoding == "" {
		o.DefaultEncoding = d.DefaultEncoding
	}
	return o
}

// Validate checks that every tunable is within sensible range, returning an
// *InvalidOptionsError for the first violation found.
func (o Options) Validate() error {
	switch {
	case o.LengthLow < 0:
		return &InvalidOptionsError{"LengthLow", "must be >= 0"}
	case o.LengthHigh < 0:
		return &InvalidOptionsError{"LengthHigh", "must be >= 0"}
	case o.LengthHigh < o.LengthLow:
		return &InvalidOptionsError{"LengthHigh", "must be >= LengthLow"}
	case o.StopwordsLow < 0 || o.StopwordsLow > 1:
		return &InvalidOptionsError{"StopwordsLow", "must be in [0,1]"}
	case o.StopwordsHigh < 0 || o.StopwordsHigh > 1:
		return &InvalidOptionsError{"StopwordsHigh", "must be in [0,1]"}
	case o.StopwordsHigh < o.StopwordsLow:
		return &InvalidOptionsError{"StopwordsHigh", "must be >= StopwordsLow"}
	case o.MaxLinkDensity < 0 || o.MaxLinkDensity > 1:
		return &InvalidOptionsError{"MaxLinkDensity", "must be in [0,1]"}
	case o.MaxHeadingDistance < 0:
		return &InvalidOptionsError{"MaxHeadingDistance", "must be >= 0"}
	}
	return nil
}
