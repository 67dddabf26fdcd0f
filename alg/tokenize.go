package alg

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v2"
)

// Tokenizer splits a document into lowercase terms.
type Tokenizer interface {
	Tokenize(text string) []string
}

// ProseTokenizer uses the prose tokenizer, keeping tokens with at least two
// letters or digits. Punctuation comes out as separate tokens and is dropped,
// but hyphenated words, URLs and abbreviations stay whole.
type ProseTokenizer struct{}

func (ProseTokenizer) Tokenize(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	tokens := doc.Tokens()
	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		term := strings.ToLower(token.Text)
		if isTerm(term) {
			terms = append(terms, term)
		}
	}
	return terms
}

func isTerm(token string) bool {
	n := 0
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
			if n == 2 {
				return true
			}
		}
	}
	return false
}

// Runs of two or more word characters, the same terms scikit-learn's
// default token pattern produces.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// WordTokenizer splits on anything that is not a letter, digit or underscore.
// It is the default.
type WordTokenizer struct{}

func (WordTokenizer) Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

type stopWordTokenizer struct {
	lang string
	next Tokenizer
}

func (s stopWordTokenizer) Tokenize(text string) []string {
	return s.next.Tokenize(stopwords.CleanString(text, s.lang, false))
}

// WithStopWords removes the stop words of lang (ISO 639-1 code) before
// handing the text to next.
func WithStopWords(lang string, next Tokenizer) Tokenizer {
	return stopWordTokenizer{lang: lang, next: next}
}

// NewTokenizer returns the tokenizer registered under name ("word", the
// default, or "prose"), wrapped with stop-word removal when lang is not empty.
func NewTokenizer(name, lang string) (Tokenizer, error) {
	var t Tokenizer
	switch name {
	case "", "word":
		t = WordTokenizer{}
	case "prose":
		t = ProseTokenizer{}
	default:
		return nil, fmt.Errorf("unknown tokenizer %q (want word or prose)", name)
	}

	if lang != "" {
		t = WithStopWords(lang, t)
	}
	return t, nil
}
