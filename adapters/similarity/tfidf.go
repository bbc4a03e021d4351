package similarity

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyVocabulary is returned when neither string has a token left after stop-word removal
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop words")

// Vectors holds the weighted term vectors of one string pair over their shared vocabulary
type Vectors struct {
	Vocabulary []string
	A          []float64
	B          []float64
}

// Vectorizer builds TF-IDF vectors for a pair of strings. The vocabulary and document
// frequencies come only from the two strings given to FitTransform, so weights of one
// pair never depend on another.
type Vectorizer struct{}

// NewVectorizer creates a vectorizer
func NewVectorizer() *Vectorizer {
	return &Vectorizer{}
}

// FitTransform tokenizes a and b, builds their joint vocabulary and returns
// term count times smoothed inverse document frequency for each side.
// An empty side yields a zero vector.
func (v *Vectorizer) FitTransform(a, b string) (Vectors, error) {
	docs := [2]map[string]int{countTerms(Tokenize(a)), countTerms(Tokenize(b))}

	df := make(map[string]int)
	for _, counts := range docs {
		for term := range counts {
			df[term]++
		}
	}
	if len(df) == 0 {
		return Vectors{}, ErrEmptyVocabulary
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	n := float64(len(docs))
	out := Vectors{
		Vocabulary: vocab,
		A:          make([]float64, len(vocab)),
		B:          make([]float64, len(vocab)),
	}
	for i, term := range vocab {
		idf := math.Log((1+n)/(1+float64(df[term]))) + 1
		out.A[i] = float64(docs[0][term]) * idf
		out.B[i] = float64(docs[1][term]) * idf
	}
	return out, nil
}

func countTerms(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
