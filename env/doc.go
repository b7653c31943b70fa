// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

// Package env abstracts environment variable access behind a small Reader
// interface so configuration can be injected in tests. Production code uses
// OSReader; tests use MapReader.
package env
