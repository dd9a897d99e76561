// Package model holds the data types shared across the jusText pipeline
// stages (cleaner, segmenter, classifier, reviser). It exists so those
// stages can depend on a common vocabulary without importing the driver
// package that composes them.
package model

// Class is the label attached to a Paragraph. The context-free classifier
// produces all four values; the context-sensitive reviser only ever
// produces Good or Bad.
type Class int

const (
	Bad Class = iota
	Good
	Short
	NearGood
)

func (c Class) String() string {
	switch c {
	case Good:
		return "good"
	case Bad:
		return "bad"
	case Short:
		return "short"
	case NearGood:
		return "neargood"
	default:
		return "unknown"
	}
}

// MarshalJSON renders a Class as its string name rather than the underlying
// int, so callers of Extract over JSON (the CLI, the preview server) see
// "good"/"bad" instead of an opaque 0/1.
func (c Class) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// Paragraph is a single unit of output, enriched progressively by the
// pipeline stages. All fields are declared up front (rather than split
// across per-stage types) since every stage after segmentation only adds
// to the same record, and the whole slice is handed back to the caller.
type Paragraph struct {
	// Set by the segmenter.
	Text            string
	DOMPath         string
	WordCount       int
	LinkedCharCount int
	TagCount        int // weak hint, not consulted by classification; kept for parity

	// Set by the context-free classifier.
	StopwordCount   int
	StopwordDensity float64
	LinkDensity     float64
	Heading         bool
	CFClass         Class

	// Set by the context-free classifier, mutated by the context-sensitive
	// reviser. Starts out equal to CFClass.
	Class Class
}
