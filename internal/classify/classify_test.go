package classify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-justext/justext/internal/model"
)

func defaultOpts() model.Options {
	return model.DefaultOptions()
}

func TestClassify_WordCountZero_DensitiesAreZero(t *testing.T) {
	ps := []model.Paragraph{{Text: "...", WordCount: 0, LinkedCharCount: 0}}
	Classify(ps, nil, defaultOpts())
	assert.Zero(t, ps[0].StopwordDensity)
	assert.Zero(t, ps[0].LinkDensity)
}

func TestClassify_LinkDensityAboveMax_IsBad(t *testing.T) {
	ps := []model.Paragraph{{
		Text:            strings.Repeat("a", 100),
		WordCount:       10,
		LinkedCharCount: 30, // 0.3 > default max_link_density 0.2
	}}
	Classify(ps, nil, defaultOpts())
	assert.Equal(t, model.Bad, ps[0].CFClass)
}

func TestClassify_CopyrightMarker_IsBad(t *testing.T) {
	text := "© 2024 Acme Corp, all rights reserved across every jurisdiction we operate in today"
	ps := []model.Paragraph{{Text: text, WordCount: len(strings.Fields(text))}}
	Classify(ps, nil, defaultOpts())
	assert.Equal(t, model.Bad, ps[0].CFClass)
}

func TestClassify_LiteralCopyEntity_IsBad(t *testing.T) {
	text := "&copy 2024 some long enough text to pass the short-paragraph length threshold easily"
	ps := []model.Paragraph{{Text: text, WordCount: len(strings.Fields(text))}}
	Classify(ps, nil, defaultOpts())
	assert.Equal(t, model.Bad, ps[0].CFClass)
}

func TestClassify_SelectDomPath_IsBad(t *testing.T) {
	text := strings.Repeat("option text ", 20)
	ps := []model.Paragraph{{Text: text, DOMPath: "body.form.select", WordCount: len(strings.Fields(text))}}
	Classify(ps, nil, defaultOpts())
	assert.Equal(t, model.Bad, ps[0].CFClass)
}

func TestClassify_ShortUnlinked_IsShort(t *testing.T) {
	ps := []model.Paragraph{{Text: "Short.", WordCount: 1}}
	Classify(ps, nil, defaultOpts())
	assert.Equal(t, model.Short, ps[0].CFClass)
}

func TestClassify_ShortLinked_IsBad(t *testing.T) {
	ps := []model.Paragraph{{Text: "Short.", WordCount: 1, LinkedCharCount: 6}}
	Classify(ps, nil, defaultOpts())
	assert.Equal(t, model.Bad, ps[0].CFClass)
}

func TestClassify_LengthIsRuneCountNotByteCount(t *testing.T) {
	// Every "é" is one code point but two bytes, so 40 of them is a
	// 40-character paragraph (correctly under length_low=70, hence Short)
	// that a byte-counting implementation would instead see as an 80-byte
	// paragraph (over length_low, falling through to the stopword-density
	// branches and landing on Bad instead of Short).
	opts := defaultOpts()
	text := strings.Repeat("é", 40)
	require.Less(t, utf8.RuneCountInString(text), opts.LengthLow)
	require.GreaterOrEqual(t, len(text), opts.LengthLow)

	ps := []model.Paragraph{{Text: text, WordCount: 1, LinkedCharCount: 0}}
	Classify(ps, nil, opts)
	assert.Equal(t, model.Short, ps[0].CFClass)
}

func TestClassify_Heading_RespectsNoHeadings(t *testing.T) {
	ps := []model.Paragraph{{Text: "Title", WordCount: 1, DOMPath: "body.h2"}}
	opts := defaultOpts()
	opts.NoHeadings = true
	Classify(ps, nil, opts)
	assert.False(t, ps[0].Heading)
}

func TestClassify_Heading_MatchesNestedPath(t *testing.T) {
	ps := []model.Paragraph{
		{Text: "Title", WordCount: 1, DOMPath: "body.h2"},
		{Text: "Title", WordCount: 1, DOMPath: "body.div.h3.span"},
		{Text: "Title", WordCount: 1, DOMPath: "body.header"},
	}
	Classify(ps, nil, defaultOpts())
	require.True(t, ps[0].Heading)
	require.True(t, ps[1].Heading)
	require.False(t, ps[2].Heading)
}

func TestClassify_StopwordDecisionLadder(t *testing.T) {
	const wordCount = 110 // at 4 chars/word incl. space, ~440 chars, over length_high=200
	words := make([]string, wordCount)
	for i := range words {
		words[i] = "w" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26))
	}
	text := strings.Join(words, " ")
	require.Greater(t, len(text), 200)

	tests := []struct {
		name          string
		stopwordRatio float64 // fraction of (distinct) words that are stopwords
		want          model.Class
	}{
		{"below stopwords_low is bad", 0.1, model.Bad},
		{"between low and high is neargood", 0.31, model.NearGood},
		{"at/above high and long is good", 0.5, model.Good},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := int(float64(len(words)) * tt.stopwordRatio)
			stoplist := Stoplist{}
			for i := 0; i < n; i++ {
				stoplist[words[i]] = struct{}{}
			}
			ps := []model.Paragraph{{Text: text, WordCount: len(words)}}
			Classify(ps, stoplist, defaultOpts())
			assert.Equal(t, tt.want, ps[0].CFClass)
		})
	}
}
