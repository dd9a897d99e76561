// Package justext extracts the main textual content from an HTML page,
// returning an ordered sequence of paragraphs each labelled good (body
// text) or bad (boilerplate: navigation, ads, legal notices, link lists).
//
// Extract composes five stages: decoding the input to text, cleaning the
// parsed DOM, segmenting it into paragraphs, a context-free classifier, and
// a context-sensitive reviser. See the package's design notes for details
// on each stage; callers only need Extract (or ExtractString), Options,
// and a stop-list.
package justext

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/go-justext/justext/internal/classify"
	"github.com/go-justext/justext/internal/clean"
	"github.com/go-justext/justext/internal/decode"
	"github.com/go-justext/justext/internal/model"
	"github.com/go-justext/justext/internal/revise"
	"github.com/go-justext/justext/internal/segment"
)

// Extract classifies the paragraphs of an HTML document given as raw bytes.
// The bytes are decoded to text per opts (explicit encoding, sniffed <meta
// charset>, UTF-8, then opts.DefaultEncoding) before parsing.
func Extract(input []byte, stoplist map[string]struct{}, opts Options) ([]Paragraph, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	text, err := decode.Decode(input, opts)
	if err != nil {
		return nil, err
	}

	return extractText(text, stoplist, opts)
}

// ExtractString classifies the paragraphs of an HTML document already
// decoded to text by the caller. No byte-decoding stage runs.
func ExtractString(input string, stoplist map[string]struct{}, opts Options) ([]Paragraph, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return extractText(input, stoplist, opts)
}

func extractText(text string, stoplist map[string]struct{}, opts Options) ([]Paragraph, error) {
	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, &model.ParseFailureError{Err: err}
	}

	clean.Clean(root)
	paragraphs := segment.Segment(root)
	classify.Classify(paragraphs, classify.Stoplist(stoplist), opts)
	revise.Revise(paragraphs, opts.MaxHeadingDistance)

	return paragraphs, nil
}
