package jobs

import (
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/imaging"
)

// Queue tracks the jobs a document has sent to the generation backend and
// notifies the UI as they move through their lifecycle.
type Queue struct {
	jobs []*Job

	// CountChanged fires with the number of queued jobs whenever a job is
	// added or leaves the queued state.
	CountChanged *binding.Signal[int]

	// JobFinished fires when a job reaches a done state.
	JobFinished *binding.Signal[*Job]

	// Trimmed fires with the number of jobs dropped by Trim.
	Trimmed *binding.Signal[int]

	// Selection is the result image currently selected in the history.
	Selection *binding.Property[Selection]
}

// NewQueue creates an empty job queue.
func NewQueue() *Queue {
	return &Queue{
		CountChanged: binding.NewSignal[int](),
		JobFinished:  binding.NewSignal[*Job](),
		Trimmed:      binding.NewSignal[int](),
		Selection:    binding.NewProperty(Selection{}),
	}
}

// Add enqueues a new job and returns it.
func (q *Queue) Add(kind Kind, prompt string, bounds imaging.Extent) *Job {
	job := &Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		State:     StateQueued,
		Prompt:    prompt,
		Bounds:    bounds,
		Timestamp: time.Now(),
	}
	q.jobs = append(q.jobs, job)
	q.CountChanged.Emit(q.Count(StateQueued))
	return job
}

// Find returns the job with the given ID.
func (q *Queue) Find(id string) (*Job, bool) {
	for _, job := range q.jobs {
		if job.ID == id {
			return job, true
		}
	}
	return nil, false
}

// All returns the jobs in submission order.
func (q *Queue) All() []*Job {
	result := make([]*Job, len(q.jobs))
	copy(result, q.jobs)
	return result
}

// Count returns the number of jobs in the given state.
func (q *Queue) Count(state State) int {
	count := 0
	for _, job := range q.jobs {
		if job.State == state {
			count++
		}
	}
	return count
}

// AnyExecuting returns true if the backend is working on a job.
func (q *Queue) AnyExecuting() bool {
	return q.Count(StateExecuting) > 0
}

// SetState moves a job to a new state and emits the matching notifications.
func (q *Queue) SetState(id string, state State) error {
	job, ok := q.Find(id)
	if !ok {
		return fmt.Errorf("jobs: unknown job %s", id)
	}
	if job.State.IsDone() {
		return fmt.Errorf("jobs: job %s already %s", id, job.State)
	}
	job.State = state
	q.CountChanged.Emit(q.Count(StateQueued))
	if state.IsDone() {
		q.JobFinished.Emit(job)
	}
	return nil
}

// Finish stores the results of a job and marks it finished.
func (q *Queue) Finish(id string, results []image.Image) error {
	job, ok := q.Find(id)
	if !ok {
		return fmt.Errorf("jobs: unknown job %s", id)
	}
	job.Results = results
	return q.SetState(id, StateFinished)
}

// Fail marks a job failed with the given message.
func (q *Queue) Fail(id string, message string) error {
	job, ok := q.Find(id)
	if !ok {
		return fmt.Errorf("jobs: unknown job %s", id)
	}
	job.LastError = message
	return q.SetState(id, StateError)
}

// CancelActive cancels the job the backend is currently executing.
func (q *Queue) CancelActive() {
	q.cancelWhere(func(j *Job) bool { return j.State == StateExecuting })
}

// CancelQueued cancels all jobs still waiting in the queue.
func (q *Queue) CancelQueued() {
	q.cancelWhere(func(j *Job) bool { return j.State == StateQueued })
}

// CancelAll cancels every job that is not already done.
func (q *Queue) CancelAll() {
	q.cancelWhere(func(j *Job) bool { return !j.State.IsDone() })
}

func (q *Queue) cancelWhere(pred func(*Job) bool) {
	for _, job := range q.jobs {
		if pred(job) {
			job.State = StateCancelled
			q.JobFinished.Emit(job)
		}
	}
	q.CountChanged.Emit(q.Count(StateQueued))
}

// SelectResult selects one result image; Deselect clears the selection.
func (q *Queue) SelectResult(jobID string, index int) {
	q.Selection.Set(Selection{JobID: jobID, Index: index})
}

// Deselect clears the current result selection.
func (q *Queue) Deselect() {
	q.Selection.Set(Selection{})
}

// SelectedResult returns the image the current selection points at.
func (q *Queue) SelectedResult() (image.Image, bool) {
	sel := q.Selection.Get()
	if !sel.IsValid() {
		return nil, false
	}
	job, ok := q.Find(sel.JobID)
	if !ok || sel.Index < 0 || sel.Index >= len(job.Results) {
		return nil, false
	}
	return job.Results[sel.Index], true
}

// Trim drops the oldest finished jobs until at most limit finished jobs
// remain, then notifies observers of the history. Unfinished jobs are never
// dropped; a selection pointing at a dropped job is cleared.
func (q *Queue) Trim(limit int) {
	finished := 0
	for _, job := range q.jobs {
		if job.State.IsDone() {
			finished++
		}
	}
	if finished <= limit {
		return
	}
	dropped := finished - limit
	kept := q.jobs[:0]
	for _, job := range q.jobs {
		if job.State.IsDone() && finished > limit {
			finished--
			continue
		}
		kept = append(kept, job)
	}
	q.jobs = kept

	if sel := q.Selection.Get(); sel.IsValid() {
		if _, ok := q.Find(sel.JobID); !ok {
			q.Selection.Set(Selection{})
		}
	}
	q.Trimmed.Emit(dropped)
}
