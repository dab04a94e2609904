package cron

import "context"

// Job is a unit of scheduled maintenance work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Registry holds the jobs a worker executes each cycle, in registration
// order. Nil jobs are dropped at registration.
type Registry struct {
	jobs []Job
}

func NewRegistry(jobs ...Job) *Registry {
	reg := &Registry{}
	for _, job := range jobs {
		reg.Register(job)
	}
	return reg
}

func (r *Registry) Register(job Job) {
	if job == nil {
		return
	}
	r.jobs = append(r.jobs, job)
}

// Jobs returns a copy so callers cannot reorder the schedule.
func (r *Registry) Jobs() []Job {
	out := make([]Job, len(r.jobs))
	copy(out, r.jobs)
	return out
}
