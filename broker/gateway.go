// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package broker

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

import (
	"context"

	"github.com/skillmesh/skillmesh-core/manifest"
)

// ListFilter narrows a broker skill listing.
type ListFilter struct {
	// Query is a free-text name/keyword filter.
	Query string
	// Category restricts results to one skill category.
	Category string
	// Tag restricts results to entries carrying the tag.
	Tag string
	// Limit caps the number of returned entries. Zero means broker default.
	Limit int
	// Featured restricts results to broker-featured entries.
	Featured bool
}

// ListResult is the broker listing envelope.
type ListResult struct {
	Skills []manifest.SkillManifest `json:"skills"`
}

// Quote is the broker's priced offer to publish a manifest.
type Quote struct {
	// QuoteID references this offer in a subsequent Publish call.
	QuoteID string `json:"quoteId"`
	// Cost is the quoted publish cost in the broker's settlement token.
	Cost float64 `json:"cost"`
}

// PublishReceipt acknowledges an asynchronous publish. The job starts in
// the pending state; AwaitPublish polls it to resolution.
type PublishReceipt struct {
	JobID string `json:"jobId"`
}

// JobState is the observable state of a broker publish job.
type JobState string

const (
	// JobPending means the broker has accepted the publish but not finished it.
	JobPending JobState = "pending"
	// JobCompleted means the publish finished successfully.
	JobCompleted JobState = "completed"
	// JobFailed means the broker gave up on the publish.
	JobFailed JobState = "failed"
)

// JobStatus is one observation of a publish job.
type JobStatus struct {
	JobID string   `json:"jobId"`
	State JobState `json:"state"`
	// TopicID is the address the broker assigned, set once completed.
	TopicID string `json:"topic_id,omitempty"`
	// Error carries the broker's failure reason when State is JobFailed.
	Error string `json:"error,omitempty"`
}

// Gateway mirrors publish, list and quote operations against a remote
// registry service. It is used opportunistically: any failure here is
// treated by the orchestration layer as "gateway unavailable" and answered
// from the local catalog instead. The local catalog never depends on the
// gateway for correctness.
type Gateway interface {
	// ListSkills lists skills known to the broker, narrowed by the filter.
	ListSkills(ctx context.Context, filter ListFilter) (*ListResult, error)

	// QuotePublish asks the broker to price publishing the manifest.
	QuotePublish(ctx context.Context, m *manifest.SkillManifest) (*Quote, error)

	// Publish submits the manifest under a previously obtained quote.
	// Completion is asynchronous; poll the returned job to resolution.
	Publish(ctx context.Context, m *manifest.SkillManifest, quoteID string) (*PublishReceipt, error)

	// GetJob returns the current state of a publish job.
	GetJob(ctx context.Context, jobID string) (*JobStatus, error)
}
