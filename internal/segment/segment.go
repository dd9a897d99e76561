// Package segment implements stage B of the pipeline: walking a cleaned
// HTML tree as a stream of start/end/text events and emitting paragraph
// records at block-tag boundaries.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/go-justext/justext/internal/decode"
	"github.com/go-justext/justext/internal/model"
)

// ParagraphTags are the block-level tags that terminate the paragraph
// currently being assembled, both on open and on close.
var ParagraphTags = map[string]struct{}{
	"blockquote": {}, "caption": {}, "center": {}, "col": {}, "colgroup": {},
	"dd": {}, "div": {}, "dl": {}, "dt": {}, "fieldset": {}, "form": {},
	"legend": {}, "optgroup": {}, "option": {}, "p": {}, "pre": {},
	"table": {}, "td": {}, "textarea": {}, "tfoot": {}, "th": {}, "thead": {},
	"tr": {}, "ul": {}, "li": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func normalizeWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// buffer is the paragraph currently being assembled.
type buffer struct {
	domPath         string
	textNodes       []string
	wordCount       int
	linkedCharCount int
	tagCount        int
}

// segmenter carries the state threaded through the synthetic event stream:
// the ancestor name stack, link-scope depth, the "was the previous
// start-event a bare <br>" flag, and the paragraph currently being built.
type segmenter struct {
	domStack   []string
	linkDepth  int
	lastWasBr  bool
	buf        buffer
	paragraphs []model.Paragraph
}

// Segment walks root and returns the paragraphs it contains, in document
// order.
func Segment(root *html.Node) []model.Paragraph {
	s := &segmenter{}
	s.startNewParagraph()
	s.walk(root)
	s.startNewParagraph() // end-of-document boundary
	return s.paragraphs
}

func (s *segmenter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		s.text(n.Data)
		return
	case html.ElementNode:
		s.startElement(n.Data)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.walk(c)
		}
		s.endElement(n.Data)
		return
	default:
		// DocumentNode, DoctypeNode, CommentNode (comments are already
		// stripped by the cleaner, but tolerate any that slip through):
		// no start/end/text event of our own, just recurse into children.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.walk(c)
		}
	}
}

func (s *segmenter) startElement(name string) {
	s.domStack = append(s.domStack, name)

	_, isParagraphTag := ParagraphTags[name]
	doubleBreak := name == "br" && s.lastWasBr

	if isParagraphTag || doubleBreak {
		if name == "br" {
			// the <br><br> separator itself is not counted as a tag
			// within the paragraph it closes.
			s.buf.tagCount--
		}
		s.startNewParagraph()
		return
	}

	s.lastWasBr = name == "br"
	if name == "a" {
		s.linkDepth++
	}
	s.buf.tagCount++
}

func (s *segmenter) endElement(name string) {
	s.domStack = s.domStack[:len(s.domStack)-1]

	if _, ok := ParagraphTags[name]; ok {
		s.startNewParagraph()
	}
	if name == "a" && s.linkDepth > 0 {
		s.linkDepth--
	}
}

func (s *segmenter) text(content string) {
	if isBlank(content) {
		return
	}
	text := normalizeWhitespace(decode.PostProcessEntities(content))
	s.buf.textNodes = append(s.buf.textNodes, text)
	s.buf.wordCount += len(strings.Fields(text))
	if s.linkDepth > 0 {
		s.buf.linkedCharCount += utf8.RuneCountInString(text)
	}
	s.lastWasBr = false
}

// startNewParagraph finalizes the current buffer (if it holds any text)
// into a Paragraph, appends it to the output, and starts a fresh buffer
// rooted at the current DOM path.
func (s *segmenter) startNewParagraph() {
	if len(s.buf.textNodes) > 0 {
		text := strings.TrimSpace(normalizeWhitespace(strings.Join(s.buf.textNodes, "")))
		if text != "" {
			s.paragraphs = append(s.paragraphs, model.Paragraph{
				Text:            text,
				DOMPath:         s.buf.domPath,
				WordCount:       s.buf.wordCount,
				LinkedCharCount: s.buf.linkedCharCount,
				TagCount:        s.buf.tagCount,
			})
		}
	}
	s.buf = buffer{domPath: strings.Join(s.domStack, ".")}
}
