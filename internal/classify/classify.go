// Package classify implements stage C of the pipeline: the context-free
// classifier that assigns each paragraph a cfclass from its own measurable
// features, independent of its neighbours.
package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-justext/justext/internal/model"
)

var (
	headingPathPattern = regexp.MustCompile(`(^h\d|\.h\d)`)
	selectPathPattern  = regexp.MustCompile(`(^select|\.select)`)
)

// Stoplist is the set of tokens compared against a paragraph's
// whitespace-split words. Matching is exact and case-sensitive: callers
// supply tokens in the casing they want matched.
type Stoplist map[string]struct{}

// Classify computes stopword/link-density features and assigns CFClass (and
// an initial Class equal to it) for every paragraph in place. opts is
// assumed to already have defaults applied and to have passed Validate.
func Classify(paragraphs []model.Paragraph, stoplist Stoplist, opts model.Options) {
	for i := range paragraphs {
		classifyOne(&paragraphs[i], stoplist, opts)
	}
}

func classifyOne(p *model.Paragraph, stoplist Stoplist, opts model.Options) {
	length := utf8.RuneCountInString(p.Text)

	stopwordCount := 0
	for _, word := range strings.Fields(p.Text) {
		if _, ok := stoplist[word]; ok {
			stopwordCount++
		}
	}
	p.StopwordCount = stopwordCount

	if p.WordCount > 0 {
		p.StopwordDensity = float64(stopwordCount) / float64(p.WordCount)
		if length > 0 {
			p.LinkDensity = float64(p.LinkedCharCount) / float64(length)
		} else {
			p.LinkDensity = 0
		}
	} else {
		p.StopwordDensity = 0
		p.LinkDensity = 0
	}

	p.Heading = !opts.NoHeadings && headingPathPattern.MatchString(p.DOMPath)

	switch {
	case p.LinkDensity > opts.MaxLinkDensity:
		p.CFClass = model.Bad
	case strings.ContainsRune(p.Text, '©') || strings.Contains(p.Text, "&copy"):
		p.CFClass = model.Bad
	case selectPathPattern.MatchString(p.DOMPath):
		p.CFClass = model.Bad
	case length < opts.LengthLow:
		if p.LinkedCharCount > 0 {
			p.CFClass = model.Bad
		} else {
			p.CFClass = model.Short
		}
	case p.StopwordDensity >= opts.StopwordsHigh:
		if length > opts.LengthHigh {
			p.CFClass = model.Good
		} else {
			p.CFClass = model.NearGood
		}
	case p.StopwordDensity >= opts.StopwordsLow:
		p.CFClass = model.NearGood
	default:
		p.CFClass = model.Bad
	}

	p.Class = p.CFClass
}
