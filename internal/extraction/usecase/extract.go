package usecase

import (
	"context"
	"strings"

	"caretask/internal/extraction"
	"caretask/internal/model"
	"caretask/pkg/airesponse"
)

type outcomeKind int

const (
	remoteSuccess outcomeKind = iota
	remoteFailure
)

// remoteOutcome is the tagged result of the single remote attempt.
type remoteOutcome struct {
	kind   outcomeKind
	result airesponse.Result
	err    error
}

// Extract runs one remote attempt and falls back to the local pipeline on
// any failure.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (model.ExtractionResult, error) {
	if strings.TrimSpace(input.RawInput) == "" {
		return model.ExtractionResult{}, extraction.ErrEmptyInput
	}

	outcome := uc.callRemote(ctx, input.RawInput)
	return uc.dispatch(ctx, input.RawInput, outcome)
}

// callRemote never returns an error; failures are folded into the outcome.
func (uc *implUseCase) callRemote(ctx context.Context, rawInput string) remoteOutcome {
	if uc.remote == nil {
		return remoteOutcome{kind: remoteFailure, err: extraction.ErrRemoteUnavailable}
	}

	rctx, cancel := context.WithTimeout(ctx, uc.opts.RemoteTimeout)
	defer cancel()

	payload, err := uc.remote.Process(rctx, rawInput)
	if err != nil {
		return remoteOutcome{kind: remoteFailure, err: &extraction.RemoteError{Provider: uc.remote.Name(), Err: err}}
	}

	res, err := airesponse.Adapt(payload)
	if err != nil {
		return remoteOutcome{kind: remoteFailure, err: &extraction.RemoteError{Provider: uc.remote.Name(), Err: err}}
	}

	return remoteOutcome{kind: remoteSuccess, result: res}
}

// dispatch is the only place that decides between the remote and local paths.
func (uc *implUseCase) dispatch(ctx context.Context, rawInput string, outcome remoteOutcome) (model.ExtractionResult, error) {
	switch outcome.kind {
	case remoteSuccess:
		uc.l.Debugf(ctx, "uc.Extract remote shape=%s candidates=%d", outcome.result.Shape, len(outcome.result.Candidates))
		return uc.fromRemote(rawInput, outcome.result), nil
	default:
		if uc.remote != nil {
			uc.l.Warnf(ctx, "uc.Extract remote failed, using local pipeline: %v", outcome.err)
		}
		res, err := uc.runLocal(rawInput)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Extract runLocal: %v", err)
			return model.ExtractionResult{}, err
		}
		return res, nil
	}
}

func (uc *implUseCase) fromRemote(rawInput string, res airesponse.Result) model.ExtractionResult {
	drafts := make([]draft, 0, len(res.Candidates))
	for _, c := range res.Candidates {
		drafts = append(drafts, draft{candidate: c, extractedFrom: rawInput})
	}

	tasks := uc.assemble(rawInput, drafts)
	summary := res.Summary
	if summary == "" {
		summary = synthesizeSummary(tasks)
	}

	return model.ExtractionResult{
		Tasks:      tasks,
		Summary:    summary,
		Confidence: remoteConfidence(len(tasks)),
		Source:     model.SourceRemote,
	}
}
