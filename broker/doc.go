// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package broker talks to the remote registry service that mirrors publish,
list and quote operations.

The broker is an opportunistic collaborator: a registry built on this module
keeps working when it is down. Callers hold a Gateway, and every Gateway
failure (timeout, auth, malformed response) means the same thing to the
orchestration layer: answer from the local catalog instead.

# Publishing

A broker publish is a quote-then-publish flow whose completion is
asynchronous:

	quote, err := gw.QuotePublish(ctx, m)
	receipt, err := gw.Publish(ctx, m, quote.QuoteID)

	// The job is now pending. Poll it to resolution.
	status, err := broker.AwaitPublish(ctx, gw, receipt.JobID, broker.PollOptions{
	    Interval: 2 * time.Second,
	    Timeout:  time.Minute,
	})

AwaitPublish never retries past its window; an unresolved job surfaces as
ErrPollTimeout and a broker-side failure as *JobFailedError.

# HTTP client

Client implements Gateway over plain HTTP with JSON bodies. It hard-codes no
credential scheme: auth is whatever headers the caller configures with
WithHeader, which validates names and values against RFC 7230 before they
ever reach a request.
*/
package broker
