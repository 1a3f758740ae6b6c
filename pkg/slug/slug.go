package slug

import (
	"crypto/rand"
	"hash/fnv"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// suffixCharset is the alphabet for random suffixes.
const suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// asciiFold maps letters that NFD decomposition cannot reduce to ASCII.
var asciiFold = map[rune]string{
	'ß': "ss", 'æ': "ae", 'Æ': "AE",
	'ø': "o", 'Ø': "O",
	'œ': "oe", 'Œ': "OE",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "TH",
	'ł': "l", 'Ł': "L",
}

// Make converts the input into a URL-safe slug. It never fails; see the
// package documentation for the transformation rules and available options.
func Make(input string, opts ...Option) string {
	o := options{separator: "-", lowercase: true}
	for _, opt := range opts {
		opt(&o)
	}

	s := applyReplacements(input, o.replacements)
	if o.strip != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.strip, r) {
				return -1
			}
			return r
		}, s)
	}
	s = foldDiacritics(s)
	if o.lowercase {
		s = strings.ToLower(s)
	}

	result := joinWords(s, o.separator)

	if o.suffixLength > 0 {
		suffix := randomSuffix(input, o.suffixLength)
		if o.maxLength > 0 {
			allowed := o.maxLength - o.suffixLength - len([]rune(o.separator))
			result = truncate(result, allowed, o.separator)
		}
		if result == "" {
			return suffix
		}
		return result + o.separator + suffix
	}

	if o.maxLength > 0 {
		result = truncate(result, o.maxLength, o.separator)
	}
	return result
}

// applyReplacements substitutes custom replacements, longest key first so
// overlapping keys like "C++" and "+" behave predictably.
func applyReplacements(s string, repl map[string]string) string {
	if len(repl) == 0 {
		return s
	}
	keys := make([]string, 0, len(repl))
	for k := range repl {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		s = strings.ReplaceAll(s, k, repl[k])
	}
	return s
}

// foldDiacritics decomposes accented characters and drops the combining
// marks, leaving the ASCII base letter (é → e). Letters without a
// decomposition are handled by the asciiFold table.
func foldDiacritics(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if repl, ok := asciiFold[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// joinWords keeps ASCII alphanumerics and collapses every run of other
// characters into a single separator. Leading and trailing separators are
// never emitted.
func joinWords(s, sep string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	wrote := false
	for _, r := range s {
		isWord := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isWord {
			if wrote {
				pending = true
			}
			continue
		}
		if pending {
			b.WriteString(sep)
			pending = false
		}
		b.WriteRune(r)
		wrote = true
	}
	return b.String()
}

// truncate limits s to n runes and trims any separator the cut landed on.
func truncate(s string, n int, sep string) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > n {
		s = string(runes[:n])
	}
	for strings.HasSuffix(s, sep) {
		s = strings.TrimSuffix(s, sep)
	}
	return s
}

// randomSuffix draws n characters from suffixCharset using crypto/rand.
// If the system entropy source fails, it falls back to a deterministic
// FNV-derived sequence seeded by the input so Make never errors.
func randomSuffix(seed string, n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		h := fnv.New64a()
		h.Write([]byte(seed))
		sum := h.Sum64()
		for i := range b {
			b[i] = byte(sum)
			sum = sum*1099511628211 + uint64(i) + 1
		}
	}
	for i := range b {
		b[i] = suffixCharset[int(b[i])%len(suffixCharset)]
	}
	return string(b)
}
