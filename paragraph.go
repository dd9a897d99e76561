package justext

import "github.com/go-justext/justext/internal/model"

// Class is the label attached to a Paragraph. ClassGood and ClassBad are
// the only values that survive to the final, caller-visible Paragraph.Class
// field; ClassShort and ClassNearGood only ever appear as CFClass, the
// context-free classifier's intermediate verdict.
type Class = model.Class

const (
	ClassBad      = model.Bad
	ClassGood     = model.Good
	ClassShort    = model.Short
	ClassNearGood = model.NearGood
)

// Paragraph is one unit of output: a contiguous text block delimited by the
// segmenter's boundary rules, enriched by the classifier and reviser.
type Paragraph = model.Paragraph
