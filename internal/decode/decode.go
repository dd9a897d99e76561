// Package decode implements stage F: turning an input byte buffer into
// text for the HTML parser, with charset sniffing and the legacy
// Windows-1252 entity remap described by the external interface spec.
package decode

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/go-justext/justext/internal/model"
)

// charsetMetaPattern mirrors the historical jusText regex for sniffing a
// declared charset out of a <meta> tag, before any HTML parsing happens.
var charsetMetaPattern = regexp.MustCompile(`(?i)<meta[^>]+charset=["']?([^'"/>\s]+)`)

// metaScanWindow bounds how much of the document is scanned for a charset
// declaration; real-world <meta charset> tags always appear early in <head>.
const metaScanWindow = 1024

// Decode converts data to text following, in order: an explicit opts.Encoding,
// a sniffed <meta charset> declaration, UTF-8, then opts.DefaultEncoding.
// The first strategy that yields a valid decode (per opts.EncErrors) wins;
// exhausting every strategy returns a *model.DecodeFailureError.
func Decode(data []byte, opts model.Options) (string, error) {
	if opts.Encoding != "" {
		s, err := decodeWith(data, opts.Encoding, opts.EncErrors)
		if err != nil {
			return "", &model.DecodeFailureError{Tried: []string{opts.Encoding}, Err: err}
		}
		return s, nil
	}

	var tried []string

	if name := sniffCharset(data); name != "" {
		tried = append(tried, name)
		if s, err := decodeWith(data, name, opts.EncErrors); err == nil {
			return s, nil
		}
		// declared encoding unknown or failed to decode - proceed as if
		// it hadn't been declared at all.
	}

	tried = append(tried, "utf-8")
	if s, err := decodeWith(data, "utf-8", opts.EncErrors); err == nil {
		return s, nil
	}

	def := opts.DefaultEncoding
	if def == "" {
		def = "utf-8"
	}
	tried = append(tried, def)
	s, err := decodeWith(data, def, opts.EncErrors)
	if err != nil {
		return "", &model.DecodeFailureError{Tried: tried, Err: err}
	}
	return s, nil
}

func sniffCharset(data []byte) string {
	window := data
	if len(window) > metaScanWindow {
		window = window[:metaScanWindow]
	}
	m := charsetMetaPattern.FindSubmatch(window)
	if m == nil {
		return ""
	}
	return string(m[1])
}

func decodeWith(data []byte, name string, policy model.EncErrorPolicy) (string, error) {
	if isUTF8Name(name) {
		return applyPolicy(string(data), utf8.ValidString(string(data)), policy)
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", name, err)
	}

	decoded, err := decodeBytes(enc, data)
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", name, err)
	}
	// x/text decoders substitute U+FFFD for malformed input rather than
	// failing outright; treat its presence as "not valid" for policy
	// purposes so EncStrict still has teeth, and drop the substitutions under
	// EncIgnore.
	valid := !strings.ContainsRune(decoded, utf8.RuneError)
	if !valid && policy == model.EncIgnore {
		return strings.ReplaceAll(decoded, string(utf8.RuneError), ""), nil
	}
	return applyPolicy(decoded, valid, policy)
}

// decodeBytes runs data through enc's decoder via transform.String, the
// general entry point for feeding a non-UTF-8 *encoding.Decoder (itself a
// transform.Transformer) a whole buffer at once rather than streaming it.
func decodeBytes(enc encoding.Encoding, data []byte) (string, error) {
	decoded, _, err := transform.String(enc.NewDecoder(), string(data))
	return decoded, err
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

func applyPolicy(s string, valid bool, policy model.EncErrorPolicy) (string, error) {
	if valid {
		return s, nil
	}
	switch policy {
	case model.EncStrict:
		return "", fmt.Errorf("invalid byte sequence for declared encoding")
	case model.EncIgnore:
		return strings.ToValidUTF8(s, ""), nil
	default: // EncReplace
		return strings.ToValidUTF8(s, "�"), nil
	}
}

// legacyEntityRemap maps the Windows-1252 control-range code points that
// commonly arise from numeric character references in the U+0080..U+009F
// range being decoded literally instead of via the CP1252 mapping browsers
// actually use for them.
var legacyEntityRemap = map[rune]rune{
	0x83: 'ƒ', 0x84: '„', 0x85: '…', 0x86: '†', 0x87: '‡',
	0x88: 'ˆ', 0x89: '‰', 0x8a: 'Š', 0x8b: '‹', 0x8c: 'Œ',
	0x91: '‘', 0x92: '’', 0x93: '“', 0x94: '”',
	0x95: '•', 0x96: '–', 0x97: '—', 0x98: '˜', 0x99: '™',
	0x9a: 'š', 0x9b: '›', 0x9c: 'œ', 0x9f: 'Ÿ',
}

// PostProcessEntities remaps the legacy Windows-1252 control characters in
// legacyEntityRemap to the Unicode code points they were intended to
// represent. It must run after HTML entity decoding (i.e. on text already
// produced by the HTML parser), since that's where a numeric reference like
// &#133; first turns into the raw U+0085 control character.
func PostProcessEntities(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := legacyEntityRemap[r]; ok {
			b.WriteRune(rep)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
