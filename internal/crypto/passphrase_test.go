package crypto

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"
	"unicode"
	"unicode/utf8"

	"pgregory.net/rapid"

	"github.com/cyfrinair/cyfrinair-go/internal/wordlist"
)

func newTestPassphraseGenerator(t *testing.T, opts PassphraseOptions) *PassphraseGenerator {
	t.Helper()
	g, err := NewPassphraseGenerator(&opts, wordlist.Default())
	if err != nil {
		t.Fatalf("NewPassphraseGenerator() unexpected error: %v", err)
	}
	return g
}

func TestNewPassphraseGenerator(t *testing.T) {
	valid := DefaultPassphraseOptions()

	tests := []struct {
		name    string
		opts    *PassphraseOptions
		words   *wordlist.List
		wantErr error
	}{
		{name: "default options", opts: &valid, words: wordlist.Default()},
		{name: "space separator", opts: &PassphraseOptions{Words: 2, Separator: ' '}, words: wordlist.Default()},
		{name: "tilde separator", opts: &PassphraseOptions{Words: 2, Separator: '~'}, words: wordlist.Default()},
		{name: "nil options", opts: nil, words: wordlist.Default(), wantErr: ErrMissingOptions},
		{name: "zero words", opts: &PassphraseOptions{Words: 0, Separator: '-'}, words: wordlist.Default(), wantErr: ErrInvalidWordCount},
		{name: "negative words", opts: &PassphraseOptions{Words: -3, Separator: '-'}, words: wordlist.Default(), wantErr: ErrInvalidWordCount},
		{name: "null separator", opts: &PassphraseOptions{Words: 4, Separator: 0}, words: wordlist.Default(), wantErr: ErrInvalidSeparator},
		{name: "control separator", opts: &PassphraseOptions{Words: 4, Separator: '\t'}, words: wordlist.Default(), wantErr: ErrInvalidSeparator},
		{name: "delete separator", opts: &PassphraseOptions{Words: 4, Separator: 0x7f}, words: wordlist.Default(), wantErr: ErrInvalidSeparator},
		{name: "non-ascii separator", opts: &PassphraseOptions{Words: 4, Separator: 'ŵ'}, words: wordlist.Default(), wantErr: ErrInvalidSeparator},
		{name: "unknown casing", opts: &PassphraseOptions{Words: 4, Separator: '-', Casing: Casing(9)}, words: wordlist.Default(), wantErr: ErrInvalidCasing},
		{name: "unknown digit placement", opts: &PassphraseOptions{Words: 4, Separator: '-', DigitPlacement: DigitPlacement(-1)}, words: wordlist.Default(), wantErr: ErrInvalidDigitPlacement},
		{name: "nil word list", opts: &valid, words: nil, wantErr: ErrEmptyWordList},
		{name: "empty word list", opts: &valid, words: wordlist.New(nil), wantErr: ErrEmptyWordList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewPassphraseGenerator(tt.opts, tt.words)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewPassphraseGenerator() error = %v, want %v", err, tt.wantErr)
				}
				if g != nil {
					t.Error("NewPassphraseGenerator() should return nil generator on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPassphraseGenerator() unexpected error: %v", err)
			}
		})
	}
}

func TestPassphraseOptionErrorsAreInvalidOptions(t *testing.T) {
	for _, err := range []error{ErrInvalidWordCount, ErrInvalidSeparator, ErrInvalidCasing, ErrInvalidDigitPlacement} {
		if !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("%v does not match ErrInvalidOptions", err)
		}
	}
}

func TestGeneratePassphraseWordCount(t *testing.T) {
	for _, n := range []int{1, 2, 4, 6, 8, 10, 12, 14} {
		g := newTestPassphraseGenerator(t, PassphraseOptions{Words: n, Separator: '-'})
		phrases, err := g.Generate(1)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if got := len(strings.Split(phrases[0], "-")); got != n {
			t.Errorf("passphrase %q has %d words, want %d", phrases[0], got, n)
		}
	}
}

func TestGeneratePassphraseSeparator(t *testing.T) {
	g := newTestPassphraseGenerator(t, PassphraseOptions{Words: 5, Separator: '+', DigitPlacement: DigitNone})
	phrases, err := g.Generate(10)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	for _, p := range phrases {
		if strings.HasPrefix(p, "+") || strings.HasSuffix(p, "+") {
			t.Errorf("passphrase %q has a leading or trailing separator", p)
		}
		if strings.Count(p, "+") != 4 {
			t.Errorf("passphrase %q should contain 4 separators", p)
		}
	}
}

func TestGeneratePassphraseCasing(t *testing.T) {
	t.Run("upper", func(t *testing.T) {
		g := newTestPassphraseGenerator(t, PassphraseOptions{Words: 6, Separator: '-', Casing: CasingUpper, DigitPlacement: DigitNone})
		phrases, err := g.Generate(20)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for _, p := range phrases {
			for _, w := range strings.Split(p, "-") {
				if !isTitle(w) {
					t.Errorf("word %q in %q is not title case", w, p)
				}
			}
		}
	})

	t.Run("lower", func(t *testing.T) {
		g := newTestPassphraseGenerator(t, PassphraseOptions{Words: 6, Separator: '-', Casing: CasingLower, DigitPlacement: DigitNone})
		phrases, err := g.Generate(20)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for _, p := range phrases {
			if p != strings.ToLower(p) {
				t.Errorf("passphrase %q is not lower case", p)
			}
		}
	})

	t.Run("random", func(t *testing.T) {
		g := newTestPassphraseGenerator(t, PassphraseOptions{Words: 10, Separator: '-', Casing: CasingRandom, DigitPlacement: DigitNone})
		phrases, err := g.Generate(20)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		var upper, lower int
		for _, p := range phrases {
			for _, w := range strings.Split(p, "-") {
				switch {
				case isTitle(w):
					upper++
				case w == strings.ToLower(w):
					lower++
				default:
					t.Errorf("word %q is neither title nor lower case", w)
				}
			}
		}
		if upper == 0 || lower == 0 {
			t.Errorf("random casing over 200 words gave %d title and %d lower", upper, lower)
		}
	})
}

func TestGeneratePassphraseDigits(t *testing.T) {
	tests := []struct {
		name      string
		placement DigitPlacement
		words     int
		want      int
	}{
		{name: "once", placement: DigitOnce, words: 5, want: 1},
		{name: "once single word", placement: DigitOnce, words: 1, want: 1},
		{name: "none", placement: DigitNone, words: 5, want: 0},
		{name: "every word", placement: DigitEveryWord, words: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestPassphraseGenerator(t, PassphraseOptions{Words: tt.words, Separator: '-', DigitPlacement: tt.placement})
			phrases, err := g.Generate(30)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, p := range phrases {
				if got := countDigits(p); got != tt.want {
					t.Errorf("passphrase %q has %d digits, want %d", p, got, tt.want)
				}
			}
		})
	}
}

func TestGeneratePassphraseLowerEveryWordScenario(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+[0-9]_[a-z]+[0-9]_[a-z]+[0-9]$`)
	g := newTestPassphraseGenerator(t, PassphraseOptions{Words: 3, Separator: '_', Casing: CasingLower, DigitPlacement: DigitEveryWord})

	phrases, err := g.Generate(50)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	dictionary := make(map[string]bool)
	for _, w := range wordlist.Default().Words() {
		dictionary[w] = true
	}
	for _, p := range phrases {
		if !pattern.MatchString(p) {
			t.Errorf("passphrase %q does not match %s", p, pattern)
			continue
		}
		for _, w := range strings.Split(p, "_") {
			if word := w[:len(w)-1]; !dictionary[word] {
				t.Errorf("word %q is not in the dictionary", word)
			}
		}
	}
}

func TestGeneratePassphraseProperties(t *testing.T) {
	separators := []rune{'-', '_', '.', '+', '~', ' ', '#'}
	rapid.Check(t, func(t *rapid.T) {
		opts := PassphraseOptions{
			Words:          rapid.IntRange(1, 12).Draw(t, "words"),
			Separator:      rapid.SampledFrom(separators).Draw(t, "separator"),
			Casing:         rapid.SampledFrom([]Casing{CasingUpper, CasingLower, CasingRandom}).Draw(t, "casing"),
			DigitPlacement: rapid.SampledFrom([]DigitPlacement{DigitOnce, DigitNone, DigitEveryWord}).Draw(t, "digit"),
		}

		g, err := NewPassphraseGenerator(&opts, wordlist.Default())
		if err != nil {
			t.Fatalf("NewPassphraseGenerator() unexpected error: %v", err)
		}
		phrases, err := g.Generate(1)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}

		words := strings.Split(phrases[0], string(opts.Separator))
		if len(words) != opts.Words {
			t.Fatalf("passphrase %q has %d words, want %d", phrases[0], len(words), opts.Words)
		}

		want := 0
		switch opts.DigitPlacement {
		case DigitOnce:
			want = 1
		case DigitEveryWord:
			want = opts.Words
		}
		if got := countDigits(phrases[0]); got != want {
			t.Fatalf("passphrase %q has %d digits, want %d", phrases[0], got, want)
		}
	})
}

func TestGeneratePassphraseDeterministicSource(t *testing.T) {
	opts := PassphraseOptions{Words: 3, Separator: '-', Casing: CasingRandom, DigitPlacement: DigitOnce}
	g, err := NewPassphraseGenerator(&opts, wordlist.New([]string{"cariad", "bywyd"}))
	if err != nil {
		t.Fatalf("NewPassphraseGenerator() unexpected error: %v", err)
	}
	g.src = NewSource(zeroReader{})

	phrases, err := g.Generate(1)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if want := "Cariad0-Cariad-Cariad"; phrases[0] != want {
		t.Errorf("passphrase = %q, want %q", phrases[0], want)
	}
}

func TestGeneratePassphraseWelshTitleCase(t *testing.T) {
	opts := PassphraseOptions{Words: 1, Separator: '-', Casing: CasingUpper, DigitPlacement: DigitNone}
	g, err := NewPassphraseGenerator(&opts, wordlist.New([]string{"llawenydd"}))
	if err != nil {
		t.Fatalf("NewPassphraseGenerator() unexpected error: %v", err)
	}

	phrases, err := g.Generate(1)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if phrases[0] != "Llawenydd" {
		t.Errorf("passphrase = %q, want %q", phrases[0], "Llawenydd")
	}
}

func TestGeneratePassphraseQuantity(t *testing.T) {
	g := newTestPassphraseGenerator(t, DefaultPassphraseOptions())

	phrases, err := g.Generate(7)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(phrases) != 7 {
		t.Errorf("Generate(7) returned %d passphrases", len(phrases))
	}

	for _, q := range []int{0, MaxQuantity + 1} {
		counter := &countingReader{}
		g.src = NewSource(counter)
		if _, err := g.Generate(q); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Generate(%d) error = %v, want %v", q, err, ErrInvalidQuantity)
		}
		if counter.n != 0 {
			t.Errorf("Generate(%d) read %d random bytes before rejecting", q, counter.n)
		}
	}
}

func TestGeneratePassphraseSourceError(t *testing.T) {
	g := newTestPassphraseGenerator(t, DefaultPassphraseOptions())
	boom := errors.New("entropy unavailable")
	g.src = NewSource(iotest.ErrReader(boom))

	if _, err := g.Generate(1); !errors.Is(err, boom) {
		t.Errorf("Generate() error = %v, want wrapping %v", err, boom)
	}
}

func isTitle(w string) bool {
	first, size := utf8.DecodeRuneInString(w)
	rest := w[size:]
	return unicode.IsUpper(first) && rest == strings.ToLower(rest)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
