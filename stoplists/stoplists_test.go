package stoplists

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-justext/justext/internal/model"
)

func TestAvailable_ListsBuiltinLanguages(t *testing.T) {
	got := Available()
	assert.Contains(t, got, "english")
	assert.Contains(t, got, "german")
	assert.Contains(t, got, "french")
}

func TestLoad_EnglishContainsCommonStopwords(t *testing.T) {
	words, err := Load("english")
	require.NoError(t, err)
	assert.Contains(t, words, "the")
	assert.Contains(t, words, "and")
	_, hasBlank := words[""]
	assert.False(t, hasBlank)
}

func TestLoad_UnknownTagReturnsTypedError(t *testing.T) {
	_, err := Load("klingon")
	require.Error(t, err)
	var unknown *model.UnknownStoplistError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "klingon", unknown.Tag)
}

func TestMustLoad_PanicsOnUnknownTag(t *testing.T) {
	assert.Panics(t, func() { MustLoad("klingon") })
}
