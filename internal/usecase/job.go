package usecase

import "context"

// JobOptions tune how the scheduler treats a job.
type JobOptions struct {
	// RunOnInit runs the job once when the scheduler starts
	RunOnInit bool
	// StopOnError unschedules the job after its first failure
	StopOnError bool
}

// Job is a named unit of scheduled work.
type Job struct {
	Name    string
	Spec    string
	Run     func(ctx context.Context) error
	Options JobOptions
}
