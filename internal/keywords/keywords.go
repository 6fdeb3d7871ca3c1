package keywords

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

type file struct {
	Keywords []string `json:"keywords"`
}

// Set is an immutable keyword list matched case-insensitively against transcripts.
type Set struct {
	raw    []string
	lookup map[string]struct{}
}

func New(words ...string) *Set {
	s := &Set{
		raw:    slices.Clone(words),
		lookup: make(map[string]struct{}, len(words)),
	}

	for _, w := range words {
		s.lookup[strings.ToLower(w)] = struct{}{}
	}

	return s
}

// Load reads a JSON document of the form {"keywords": [...]}.
func Load(path string) (_ *Set, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keywords file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	var doc file
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode keywords file %q: %w", path, err)
	}

	return New(doc.Keywords...), nil
}

func (s *Set) Len() int {
	return len(s.lookup)
}

// List returns the keywords as written in the source file, sorted.
func (s *Set) List() []string {
	list := slices.Clone(s.raw)
	slices.Sort(list)

	if list == nil {
		return []string{}
	}

	return list
}

// Detect returns the lowercased keywords found in text, unique, in order of first appearance.
func (s *Set) Detect(text string) []string {
	found := []string{}
	if len(s.lookup) == 0 {
		return found
	}

	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, ok := s.lookup[token]; ok && !slices.Contains(found, token) {
			found = append(found, token)
		}
	}

	return found
}
