// Package wordlist loads the dictionary passphrase words are drawn from.
//
// The source format is a Hunspell .dic file: an optional count line
// followed by one entry per line, each entry optionally carrying affix
// flags after a '/'. Entries are filtered down to short, common,
// lower-case words with their diacritics removed, so every word can be
// typed on a plain keyboard.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MinWordLength = 4
	MaxWordLength = 10
)

var ErrNoWords = errors.New("word list contains no usable words")

//go:embed cy_GB.dic
var embedded string

var defaultList = mustParse(embedded)

// List is an immutable, ordered set of distinct words. It is safe for
// concurrent use.
type List struct {
	words []string
}

// New returns a List holding a copy of words, used as given.
func New(words []string) *List {
	return &List{words: append([]string(nil), words...)}
}

// Default returns the embedded Welsh word list.
func Default() *List {
	return defaultList
}

// Len returns the number of words.
func (l *List) Len() int {
	return len(l.words)
}

// At returns the word at index i.
func (l *List) At(i int) string {
	return l.words[i]
}

// Words returns a copy of all words in order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Load reads and filters the Hunspell dictionary at path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing word list %s: %w", path, err)
	}
	return l, nil
}

// Parse reads a Hunspell dictionary from r and keeps the entries that pass
// the word filters. Words that become identical once their diacritics are
// removed are kept only once.
func Parse(r io.Reader) (*List, error) {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	seen := make(map[string]struct{})
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word, ok := processLine(scanner.Text())
		if !ok {
			continue
		}
		folded, _, err := transform.String(fold, word)
		if err != nil {
			return nil, fmt.Errorf("removing diacritics from %q: %w", word, err)
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		words = append(words, folded)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	return &List{words: words}, nil
}

// processLine extracts the word from a dictionary line and reports whether
// it is usable.
func processLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	// The count header and numeric entries start with a digit.
	if first, _ := utf8.DecodeRuneInString(line); unicode.IsDigit(first) {
		return "", false
	}

	word, _, _ := strings.Cut(line, "/")
	word = norm.NFC.String(strings.TrimSpace(word))

	n := utf8.RuneCountInString(word)
	if n < MinWordLength || n > MaxWordLength {
		return "", false
	}
	// Capitalised entries are proper nouns.
	if first, _ := utf8.DecodeRuneInString(word); unicode.IsUpper(first) {
		return "", false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			return "", false
		}
	}

	return word, true
}

func mustParse(s string) *List {
	l, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("wordlist: embedded dictionary: %v", err))
	}
	return l
}
