package alg

import (
	"math"
	"sort"
)

// Vector is a sparse term-weight vector.
type Vector map[string]float64

// Vectorizer builds TF-IDF vectors over a whole corpus at once.
// Document frequencies are shared by all documents of one FitTransform call,
// so the same text can score differently against different corpora.
type Vectorizer struct {
	Tokenizer Tokenizer

	idf map[string]float64
}

func NewVectorizer(tokenizer Tokenizer) *Vectorizer {
	if tokenizer == nil {
		tokenizer = WordTokenizer{}
	}
	return &Vectorizer{Tokenizer: tokenizer}
}

// CalculateTF counts how many times each term occurs.
func CalculateTF(terms []string) map[string]float64 {
	tf := make(map[string]float64, len(terms))
	for _, term := range terms {
		tf[term]++
	}
	return tf
}

// FitTransform learns the corpus IDF from texts and returns one L2-normalised
// vector per text, in input order. A text without terms yields an empty vector.
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
func (v *Vectorizer) FitTransform(texts []string) []Vector {
	counts := make([]map[string]float64, len(texts))
	df := make(map[string]int)

	for i, text := range texts {
		tf := CalculateTF(v.Tokenizer.Tokenize(text))
		counts[i] = tf
		for term := range tf {
			df[term]++
		}
	}

	n := float64(len(texts))
	v.idf = make(map[string]float64, len(df))
	for term, d := range df {
		v.idf[term] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([]Vector, len(texts))
	for i, tf := range counts {
		vec := make(Vector, len(tf))
		for term, count := range tf {
			vec[term] = count * v.idf[term]
		}
		vectors[i] = normalize(vec)
	}
	return vectors
}

// IDF returns the weight learned for term by the last FitTransform.
func (v *Vectorizer) IDF(term string) (float64, bool) {
	w, ok := v.idf[term]
	return w, ok
}

// VocabularySize is the number of distinct terms seen by the last FitTransform.
func (v *Vectorizer) VocabularySize() int {
	return len(v.idf)
}

func normalize(vec Vector) Vector {
	norm := magnitude(vec)
	if norm == 0 {
		return vec
	}
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

// sortedTerms returns the terms of vec in lexical order. Every sum over a
// vector walks this order so that scores are identical from run to run.
func sortedTerms(vec Vector) []string {
	terms := make([]string, 0, len(vec))
	for term := range vec {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

func magnitude(vec Vector) float64 {
	return sortedVector(vec).norm()
}

// sorted is a vector laid out in term order.
type sorted struct {
	terms   []string
	weights []float64
}

func sortedVector(vec Vector) sorted {
	terms := sortedTerms(vec)
	weights := make([]float64, len(terms))
	for i, term := range terms {
		weights[i] = vec[term]
	}
	return sorted{terms: terms, weights: weights}
}

func (s sorted) norm() float64 {
	sum := 0.0
	for _, w := range s.weights {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// dot merges the two term lists, so the shared terms are summed in the
// same order whichever argument comes first.
func dot(a, b sorted) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		switch {
		case a.terms[i] < b.terms[j]:
			i++
		case a.terms[i] > b.terms[j]:
			j++
		default:
			sum += a.weights[i] * b.weights[j]
			i++
			j++
		}
	}
	return sum
}

func cosine(a, b sorted, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot(a, b) / (normA * normB)
}

// CalculateCosineSimilarity calculates the cosine similarity between two vectors.
// It is 0 when either vector is empty.
func CalculateCosineSimilarity(v1, v2 Vector) float64 {
	a, b := sortedVector(v1), sortedVector(v2)
	return cosine(a, b, a.norm(), b.norm())
}

// Scores this close to 1 are reported as exactly 1.
const epsilon = 1e-9

// SimilarityMatrix returns the symmetric matrix of pairwise cosine
// similarities, clamped to [0, 1]. The diagonal is 1 for every non-empty vector.
func SimilarityMatrix(vectors []Vector) [][]float64 {
	n := len(vectors)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	layout := make([]sorted, n)
	norms := make([]float64, n)
	for i, vec := range vectors {
		layout[i] = sortedVector(vec)
		norms[i] = layout[i].norm()
	}

	for i := 0; i < n; i++ {
		if len(vectors[i]) > 0 {
			matrix[i][i] = 1
		}
		for j := i + 1; j < n; j++ {
			score := clamp(cosine(layout[i], layout[j], norms[i], norms[j]))
			matrix[i][j] = score
			matrix[j][i] = score
		}
	}
	return matrix
}

func clamp(score float64) float64 {
	switch {
	case score >= 1-epsilon:
		return 1
	case score < 0:
		return 0
	}
	return score
}
