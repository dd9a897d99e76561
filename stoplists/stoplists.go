// Package stoplists embeds the built-in stop-word lists shipped with this
// module and exposes them to callers who don't want to supply their own.
package stoplists

import (
	"bufio"
	"embed"
	"sort"
	"strings"

	"github.com/go-justext/justext/internal/model"
)

//go:embed *.txt
var files embed.FS

// Available returns the language tags of the built-in stop-lists, sorted.
func Available() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if tag, ok := strings.CutSuffix(name, ".txt"); ok {
			names = append(names, tag)
		}
	}
	sort.Strings(names)
	return names
}

// Load returns the stop-word set for the given language tag (e.g. "english"),
// matching a file embedded as "<tag>.txt". It returns a
// *model.UnknownStoplistError if no such list is built in.
func Load(tag string) (map[string]struct{}, error) {
	data, err := files.ReadFile(tag + ".txt")
	if err != nil {
		return nil, &model.UnknownStoplistError{Tag: tag}
	}

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words[line] = struct{}{}
	}
	return words, nil
}

// MustLoad is like Load but panics on an unknown tag. It exists for package
// init-time use where the tag is a compile-time constant known to be valid.
func MustLoad(tag string) map[string]struct{} {
	words, err := Load(tag)
	if err != nil {
		panic(err)
	}
	return words
}
