// Package scheduler implements a fixed-size worker pool returning cancellable tasks.
//
// The pool owns N long-lived workers that drain one shared FIFO queue. Work is
// submitted with Exec and returns a Task that can be waited on, cancelled, and
// asked for its result exactly once.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                              Pool                                   │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 0   │      │   Worker 1   │      │  Worker N-1  │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         │       next() (first available worker)     │               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │                                     │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                 Message Queue (mutex + cond)            │        │
//	│  │  [job1] [job2] [job3] ... [terminate] [terminate]       │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                               │                                     │
//	│                        Exec(p, job)                                 │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Jobs and Tasks
//
// A job receives a CancelCheck and returns (R, bool). The boolean is false
// when the job has no usable result:
//
//	task := scheduler.Exec(pool, func(cancelled scheduler.CancelCheck) ([]int64, bool) {
//	    var out []int64
//	    for _, line := range lines {
//	        if cancelled() {
//	            return nil, false
//	        }
//	        out = append(out, parse(line))
//	    }
//	    return out, true
//	})
//
//	values, ok := task.Get()
//
// Task methods:
//   - Cancel(): sets the task's cancel flag unless the job already finished
//   - Wait(): blocks until the job finished running
//   - Done(): channel closed when the job finished, for use in select
//   - Get(): Wait, then take the result; the value is handed out only once
//   - Err(): ErrCancelled or ErrJobPanicked when a finished job has no result
//
// # Cancellation
//
// Cancellation is cooperative. The flag is monotone and is only observed when
// the job calls its CancelCheck. A queued job and a running job look the same
// from the task: both are "not finished".
//
//	┌──────────┐  worker picks it up  ┌──────────┐   job returns   ┌──────────┐
//	│  Queued  │ ───────────────────► │ Running  │ ──────────────► │ Finished │
//	└──────────┘                      └──────────┘                 └──────────┘
//	     │ Cancel()                        │ Cancel()
//	     ▼                                 ▼
//	 runs later, sees            job sees cancelled() == true
//	 cancelled() == true         at its next checkpoint
//
// # Shutdown
//
// Close():
//
//  1. Marks the pool closing (Exec now returns finished, cancelled tasks)
//  2. Appends one terminate message per worker behind the queued jobs
//  3. Cancels every task still tracked by the pool
//  4. Waits for all workers to exit
//
// Queued jobs still run before the terminate messages are reached, but they
// see their cancel flag already set. Close is idempotent.
//
// # Panic Recovery
//
// A panicking job does not take its worker down. The task finishes without a
// result and Err() wraps ErrJobPanicked.
package scheduler
