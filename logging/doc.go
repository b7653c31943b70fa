// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package logging creates pre-configured structured loggers for skillmesh
components.

Everything in this module logs through [log/slog]; this package only fixes
the defaults so every component emits the same shape:

	logger := logging.New()                          // JSON, INFO, stderr
	logger = logging.New(logging.WithFormat(logging.FormatText))
	logger = logging.FromEnv(&env.OSReader{})        // env-driven setup

Libraries in this module take a *slog.Logger via options and never install
global state.
*/
package logging
