package similarity

import (
	"fmt"

	"accuracycheck/internal/errors"

	"gonum.org/v1/gonum/floats"
)

// Scorer computes the cosine similarity of two normalized strings.
// It reuses one Vectorizer and must not be shared between goroutines.
type Scorer struct {
	vectorizer *Vectorizer
}

// NewScorer creates a scorer backed by a fresh vectorizer
func NewScorer() *Scorer {
	return &Scorer{vectorizer: NewVectorizer()}
}

// Score returns a similarity in [0, 1]. If either string is empty the result is 0
// and no vectors are built.
func (s *Scorer) Score(a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, nil
	}
	vecs, err := s.vectorizer.FitTransform(a, b)
	if err != nil {
		return 0, errors.Computation(fmt.Sprintf("vectorize %q / %q", truncate(a), truncate(b)), err)
	}
	return Cosine(vecs.A, vecs.B), nil
}

// Cosine returns dot(a, b) / (|a| |b|) clamped to [0, 1]. A zero vector scores 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	sim := floats.Dot(a, b) / (na * nb)
	switch {
	case sim < 0:
		return 0
	case sim > 1:
		return 1
	}
	return sim
}

func truncate(s string) string {
	const max = 40
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
