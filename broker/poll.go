// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package broker

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Default polling cadence for AwaitPublish.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultPollTimeout  = 60 * time.Second
)

// ErrPollTimeout is returned when a publish job does not reach a terminal
// state within the polling window.
var ErrPollTimeout = errors.New("publish job polling timed out")

// JobFailedError is returned when the broker reports a publish job as failed.
type JobFailedError struct {
	JobID  string
	Reason string
}

// Error implements the error interface.
func (e *JobFailedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("publish job %s failed", e.JobID)
	}
	return fmt.Sprintf("publish job %s failed: %s", e.JobID, e.Reason)
}

// PollOptions parameterizes AwaitPublish. Zero values fall back to the
// package defaults.
type PollOptions struct {
	// Interval is the delay between successive job observations.
	Interval time.Duration
	// Timeout bounds the whole polling loop. When it elapses without the
	// job reaching a terminal state, AwaitPublish fails with ErrPollTimeout
	// rather than retrying forever.
	Timeout time.Duration
}

// AwaitPublish polls a publish job until it resolves.
//
// A publish has exactly two observable phases: pending, identified by the
// job id from PublishReceipt, and resolved, the JobStatus returned here.
// A failed job resolves to a *JobFailedError; an exhausted window resolves
// to ErrPollTimeout. Transient GetJob errors do not abort the loop, since
// the broker is allowed to flake mid-poll, but the last one is attached to
// the timeout error for diagnosis.
func AwaitPublish(ctx context.Context, gateway Gateway, jobID string, opts PollOptions) (*JobStatus, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastErr error
	for {
		status, err := gateway.GetJob(ctx, jobID)
		switch {
		case err != nil:
			lastErr = err
		case status.State == JobCompleted:
			return status, nil
		case status.State == JobFailed:
			return nil, &JobFailedError{JobID: jobID, Reason: status.Error}
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil, ctx.Err()
			}
			if lastErr != nil {
				return nil, fmt.Errorf("%w: job %s (last poll error: %v)", ErrPollTimeout, jobID, lastErr)
			}
			return nil, fmt.Errorf("%w: job %s", ErrPollTimeout, jobID)
		case <-ticker.C:
		}
	}
}
