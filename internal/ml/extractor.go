// Package ml implements the department classification pipeline: feature
// extraction, a maximum-entropy classifier, the train/evaluate protocol and
// the prediction engine.
package ml

import (
	"math"
	"strings"
	"unicode"

	"github.com/rmachado-dev/staffcast/internal/domain"
)

// tokenize lowercases text and splits it on anything that is not a letter
// or a digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// FitExtractor builds the extractor vocabulary from the training corpus
// only. Feature indices are assigned in first-seen order, so the same corpus
// always produces the same state.
func FitExtractor(examples []domain.TrainingExample) domain.ExtractorState {
	vocab := make(map[string]int)
	for _, ex := range examples {
		for _, term := range tokenize(ex.Text) {
			if _, found := vocab[term]; !found {
				vocab[term] = len(vocab)
			}
		}
	}
	return domain.ExtractorState{Vocabulary: vocab}
}

// Transform converts text into an L2-normalized term-frequency vector of
// fixed length len(state.Vocabulary). It never fails: empty or fully
// out-of-vocabulary text yields the zero vector.
func Transform(state domain.ExtractorState, text string) []float64 {
	vec := make([]float64, len(state.Vocabulary))
	for _, term := range tokenize(text) {
		if idx, found := state.Vocabulary[term]; found {
			vec[idx]++
		}
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
