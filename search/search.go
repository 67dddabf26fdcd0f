package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abiiranathan/pdfdedup/alg"
	"github.com/abiiranathan/pdfdedup/logging"
)

var (
	// ErrPathNotFound is returned when the folder to scan does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrInsufficientData is returned by FindSimilar when fewer than two
	// documents have text. It ends a run cleanly; it is not a failure.
	ErrInsufficientData = errors.New("not enough PDF files with extractable text")
)

// Document is a PDF and the text extracted from it.
type Document struct {
	Path string
	Text string
}

// SimilarPair is an unordered pair of documents. I < J are the corpus
// indexes of First and Second, so each pair is reported once.
type SimilarPair struct {
	First  string  `json:"first" yaml:"first"`
	Second string  `json:"second" yaml:"second"`
	Score  float64 `json:"score" yaml:"score"`
	I      int     `json:"i" yaml:"i"`
	J      int     `json:"j" yaml:"j"`
}

// String renders the pair the way it is printed to the user.
func (p SimilarPair) String() string {
	return fmt.Sprintf("%s and %s are %.2f%% similar.", p.First, p.Second, p.Score*100)
}

// FindSimilar scores every pair of documents against a TF-IDF model fitted on
// all of them and returns the pairs scoring at least threshold, ordered by
// first index then second index.
// Documents with blank text are ignored; with fewer than two left the result is
// ErrInsufficientData.
func FindSimilar(docs []Document, threshold float64, tokenizer alg.Tokenizer) ([]SimilarPair, error) {
	corpus := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.Text) != "" {
			corpus = append(corpus, doc)
		}
	}

	if len(corpus) < 2 {
		return nil, ErrInsufficientData
	}

	texts := make([]string, len(corpus))
	for i, doc := range corpus {
		texts[i] = doc.Text
	}

	vectorizer := alg.NewVectorizer(tokenizer)
	matrix := alg.SimilarityMatrix(vectorizer.FitTransform(texts))
	logging.Log.Debugf("Built TF-IDF model: %d documents, %d terms", len(corpus), vectorizer.VocabularySize())

	var pairs []SimilarPair
	for i := 0; i < len(corpus); i++ {
		for j := i + 1; j < len(corpus); j++ {
			if matrix[i][j] >= threshold {
				pairs = append(pairs, SimilarPair{
					First:  corpus[i].Path,
					Second: corpus[j].Path,
					Score:  matrix[i][j],
					I:      i,
					J:      j,
				})
			}
		}
	}
	return pairs, nil
}
