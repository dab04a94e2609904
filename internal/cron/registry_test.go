package cron

import (
	"context"
	"testing"
)

type noopJob struct {
	name string
}

func (j *noopJob) Name() string              { return j.name }
func (j *noopJob) Run(context.Context) error { return nil }

func TestRegistryPreservesOrderAndDropsNil(t *testing.T) {
	first := &noopJob{name: "first"}
	second := &noopJob{name: "second"}

	reg := NewRegistry(first, nil)
	reg.Register(second)
	reg.Register(nil)

	jobs := reg.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0] != first || jobs[1] != second {
		t.Fatal("jobs returned out of registration order")
	}

	jobs[0] = nil
	if reg.Jobs()[0] == nil {
		t.Fatal("Jobs leaked the internal slice")
	}
}
