package usecase

import (
	"caretask/internal/extraction"
	"caretask/internal/model"
	"caretask/pkg/log"
)

// implUseCase is the private implementation of extraction.UseCase.
// It holds no per-call state and is safe for concurrent use.
type implUseCase struct {
	l      log.Logger
	remote extraction.Remote
	opts   extraction.Options
	newID  func() string
}

// New creates the extraction engine. remote may be nil, in which case every
// call runs the local pipeline.
func New(l log.Logger, remote extraction.Remote, opts extraction.Options) extraction.UseCase {
	if opts.RemoteTimeout <= 0 {
		opts.RemoteTimeout = extraction.DefaultRemoteTimeout
	}
	if opts.MaxTasks <= 0 {
		opts.MaxTasks = extraction.DefaultMaxTasks
	}
	return &implUseCase{
		l:      l,
		remote: remote,
		opts:   opts,
		newID:  model.NewTaskID,
	}
}
