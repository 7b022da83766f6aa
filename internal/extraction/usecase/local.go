package usecase

import (
	"fmt"

	"caretask/internal/extraction"
	"caretask/internal/model"
	"caretask/pkg/airesponse"
	"caretask/pkg/classifier"
	"caretask/pkg/textnorm"
)

const (
	minSentenceLen = 10
	localNote      = " (Note: Using local processing due to API unavailability)"
)

// runLocal is the network-independent fallback. A panic anywhere in the
// heuristics is reported as ErrLocalPipeline and no partial result escapes.
func (uc *implUseCase) runLocal(rawInput string) (res model.ExtractionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = model.ExtractionResult{}
			err = fmt.Errorf("%w: %v", extraction.ErrLocalPipeline, r)
		}
	}()

	tasks := uc.assemble(rawInput, localDrafts(rawInput))
	return model.ExtractionResult{
		Tasks:      tasks,
		Summary:    synthesizeSummary(tasks) + localNote,
		Confidence: localConfidence(len(tasks)),
		Source:     model.SourceLocal,
	}, nil
}

// localDrafts picks actionable sentences. A sentence joining several
// actions ("take my pills and call Anna") is split into clauses, but only
// when every clause carries an action of its own and is long enough to
// stand alone; otherwise the sentence is kept whole.
func localDrafts(rawInput string) []draft {
	var out []draft
	for _, sentence := range textnorm.SplitSentences(rawInput) {
		if len(sentence) < minSentenceLen || !classifier.HasActionKeyword(sentence) {
			continue
		}

		parts := []string{sentence}
		if clauses := textnorm.SplitClauses(sentence); len(clauses) > 1 && allStandalone(clauses) {
			parts = clauses
		}

		for _, p := range parts {
			out = append(out, draft{
				candidate:     airesponse.Candidate{Text: p},
				extractedFrom: sentence,
			})
		}
	}
	return out
}

func allStandalone(clauses []string) bool {
	for _, c := range clauses {
		if len(c) < minSentenceLen || !classifier.HasActionKeyword(c) {
			return false
		}
	}
	return true
}
