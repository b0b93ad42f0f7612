package jobs

import (
	"image"
	"time"

	"github.com/inkwave/inkwave/internal/imaging"
)

// Kind classifies what a job produces.
type Kind string

const (
	// KindDiffusion is a full image generation job
	KindDiffusion Kind = "Diffusion"

	// KindControl generates a control layer from the current image
	KindControl Kind = "Control"

	// KindUpscale is an upscaling job
	KindUpscale Kind = "Upscale"

	// KindLivePreview is a low-latency preview generation
	KindLivePreview Kind = "LivePreview"
)

// State is the lifecycle phase of a job.
type State string

const (
	// StateQueued means the job is waiting for the backend
	StateQueued State = "Queued"

	// StateExecuting means the backend is working on the job
	StateExecuting State = "Executing"

	// StateFinished means the job completed and its results are available
	StateFinished State = "Finished"

	// StateCancelled means the job was cancelled before completion
	StateCancelled State = "Cancelled"

	// StateError means the job failed
	StateError State = "Error"
)

// String returns the string representation of State.
func (s State) String() string {
	return string(s)
}

// IsDone returns true if the job can no longer change.
func (s State) IsDone() bool {
	return s == StateFinished || s == StateCancelled || s == StateError
}

// Job is one unit of work sent to the generation backend.
type Job struct {
	ID        string
	Kind      Kind
	State     State
	Prompt    string
	Bounds    imaging.Extent
	Timestamp time.Time
	Results   []image.Image
	LastError string
}

// DisplayPrompt returns the prompt, or a placeholder for empty prompts.
func (j *Job) DisplayPrompt() string {
	if j.Prompt == "" {
		return "<no prompt>"
	}
	return j.Prompt
}

// Selection identifies one result image of one job. A zero Selection means
// nothing is selected.
type Selection struct {
	JobID string
	Index int
}

// IsValid returns true if the selection points at a job.
func (s Selection) IsValid() bool {
	return s.JobID != ""
}
