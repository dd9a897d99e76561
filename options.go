package justext

import "github.com/go-justext/justext/internal/model"

// EncErrorPolicy controls how transcoding errors are handled while decoding
// an []byte input.
type EncErrorPolicy = model.EncErrorPolicy

const (
	EncReplace = model.EncReplace
	EncStrict  = model.EncStrict
	EncIgnore  = model.EncIgnore
)

// Options configures Extract. The zero value is valid: every zero-valued
// numeric field is filled in from DefaultOptions before use.
type Options = model.Options

// DefaultOptions returns the tunable defaults from the original jusText
// distribution: LengthLow=70, LengthHigh=200, StopwordsLow=0.30,
// StopwordsHigh=0.32, MaxLinkDensity=0.2, MaxHeadingDistance=200,
// NoHeadings=false, DefaultEncoding="utf-8", EncErrors=EncReplace.
func DefaultOptions() Options {
	return model.DefaultOptions()
}
