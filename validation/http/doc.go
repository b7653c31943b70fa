// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

// Package http validates HTTP header names/values and service base URLs
// before they are used in outbound requests. The broker client runs every
// configured header and its base URL through these checks so that a
// configuration mistake cannot become header injection.
package http
