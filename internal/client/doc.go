// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the campus API.
//
// [App] parses a subcommand (register, login, me, users, version) and runs it
// against the server through an [adapter.ServerAdapter], printing results to
// its output writer.
package client
