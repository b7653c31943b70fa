// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillmesh/skillmesh-core/broker"
	"github.com/skillmesh/skillmesh-core/catalog"
	"github.com/skillmesh/skillmesh-core/discovery"
	"github.com/skillmesh/skillmesh-core/ledger"
	"github.com/skillmesh/skillmesh-core/logging"
	"github.com/skillmesh/skillmesh-core/manifest"
	"github.com/skillmesh/skillmesh-core/topic"
)

// Source labels where a discovery response was answered from.
type Source string

const (
	// SourceLocal means the response came from the in-memory catalog only.
	SourceLocal Source = "local"
	// SourceBroker means broker results were merged into the response.
	SourceBroker Source = "broker"
)

// ErrNoResolver is returned by ResolveOnChain when no ledger resolver was
// configured on the service.
var ErrNoResolver = errors.New("no ledger resolver configured")

// PublishResult reports the outcome of a publish.
type PublishResult struct {
	// Skill is the record stored in the local catalog.
	Skill *manifest.PublishedSkill `json:"skill"`
	// BrokerJobID identifies the broker mirror job when one was started.
	// Empty when no gateway is configured or the broker was unavailable;
	// either way the local publish already succeeded.
	BrokerJobID string `json:"broker_job_id,omitempty"`
}

// DiscoveryResult is a discovery response labeled with its data source.
type DiscoveryResult struct {
	discovery.Result
	Source Source `json:"source"`
}

// Service is the registry facade: one explicitly constructed instance owning
// its catalog, with optional broker and ledger collaborators injected at
// construction. There is no package-level state; lifecycle is the caller's.
type Service struct {
	catalog  *catalog.Catalog
	engine   *discovery.Engine
	gateway  broker.Gateway
	resolver ledger.Resolver
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCatalog uses an existing catalog instead of a fresh one, e.g. one
// restored from a snapshot.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		s.catalog = c
	}
}

// WithGateway enables opportunistic mirroring of publish and discovery
// through the given broker gateway.
func WithGateway(g broker.Gateway) Option {
	return func(s *Service) {
		s.gateway = g
	}
}

// WithResolver enables on-chain manifest resolution.
func WithResolver(r ledger.Resolver) Option {
	return func(s *Service) {
		s.resolver = r
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// NewService creates a registry service.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		s.catalog = catalog.New()
	}
	if s.logger == nil {
		s.logger = logging.New()
	}
	s.engine = discovery.NewEngine(s.catalog)

	return s
}

// Catalog returns the service's catalog for direct reads, e.g. ListAll or
// snapshotting.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Publish validates the manifest and stores it in the local catalog, then
// mirrors it to the broker when a gateway is configured.
//
// An invalid manifest fails fast with the full violation list and writes
// nothing. A broker failure never fails the publish: the local record is
// already stored, the failure is logged, and BrokerJobID stays empty.
// No catalog lock is held during broker calls.
func (s *Service) Publish(ctx context.Context, m *manifest.SkillManifest, publisher string) (*PublishResult, error) {
	record, err := s.catalog.Upsert(m, publisher)
	if err != nil {
		return nil, err
	}

	result := &PublishResult{Skill: record}

	if s.gateway == nil {
		return result, nil
	}

	jobID, err := s.mirrorPublish(ctx, m)
	if err != nil {
		s.logger.Warn("broker unavailable, publish stored locally only",
			"topic_id", record.TopicID,
			"error", err)
		return result, nil
	}

	result.BrokerJobID = jobID
	s.logger.Info("publish mirrored to broker",
		"topic_id", record.TopicID,
		"job_id", jobID)
	return result, nil
}

// mirrorPublish runs the broker quote-then-publish flow.
func (s *Service) mirrorPublish(ctx context.Context, m *manifest.SkillManifest) (string, error) {
	quote, err := s.gateway.QuotePublish(ctx, m)
	if err != nil {
		return "", fmt.Errorf("quoting publish: %w", err)
	}

	receipt, err := s.gateway.Publish(ctx, m, quote.QuoteID)
	if err != nil {
		return "", fmt.Errorf("submitting publish: %w", err)
	}

	return receipt.JobID, nil
}

// Discover evaluates a free-text query. When a gateway is configured the
// broker's results are merged with the local catalog's (local entries first,
// broker-only entries after, deduplicated by derived address) and the
// response is labeled SourceBroker. When the broker is unreachable, or no
// gateway is configured, the response is local-only and labeled SourceLocal.
func (s *Service) Discover(ctx context.Context, query string) *DiscoveryResult {
	local := s.engine.Discover(query)

	if s.gateway == nil {
		return &DiscoveryResult{Result: *local, Source: SourceLocal}
	}

	remote, err := s.gateway.ListSkills(ctx, broker.ListFilter{Query: query})
	if err != nil {
		s.logger.Warn("broker unavailable, serving local discovery results",
			"query", query,
			"error", err)
		return &DiscoveryResult{Result: *local, Source: SourceLocal}
	}

	merged := mergeResults(local, remote)
	merged.Query = query
	return &DiscoveryResult{Result: *merged, Source: SourceBroker}
}

// mergeResults appends broker entries that the local catalog does not
// already hold. Broker manifests carry no catalog record, so one is
// synthesized with the deterministic address; its publisher is the manifest
// author since the broker does not expose the publishing account.
func mergeResults(local *discovery.Result, remote *broker.ListResult) *discovery.Result {
	skills := make([]*manifest.PublishedSkill, 0, len(local.Skills)+len(remote.Skills))
	seen := make(map[string]struct{}, len(local.Skills))

	for _, record := range local.Skills {
		skills = append(skills, record)
		seen[record.TopicID] = struct{}{}
	}

	for i := range remote.Skills {
		m := remote.Skills[i]
		id := topic.DeriveAddress(m.Name, m.Version)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		skills = append(skills, &manifest.PublishedSkill{
			Manifest:  m,
			TopicID:   id,
			Publisher: m.Author,
			Status:    manifest.StatusPublished,
		})
	}

	return &discovery.Result{Skills: skills, Total: len(skills)}
}

// ResolveOnChain fetches a manifest anchored on the ledger, independent of
// the local catalog. Absence is (nil, false, nil); a malformed address or a
// failed lookup is an error. The catalog is never consulted or locked here.
func (s *Service) ResolveOnChain(ctx context.Context, address string, sequenceNumber uint64) (*manifest.SkillManifest, bool, error) {
	if s.resolver == nil {
		return nil, false, ErrNoResolver
	}
	if !topic.IsValid(address) {
		return nil, false, fmt.Errorf("malformed topic address %q", address)
	}

	m, found, err := s.resolver.Resolve(ctx, address, sequenceNumber)
	if err != nil {
		return nil, false, fmt.Errorf("resolving %s: %w", address, err)
	}
	return m, found, nil
}
