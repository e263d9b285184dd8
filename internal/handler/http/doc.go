// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the campus API.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, panic recovery and bearer-token authentication are handled
// here before requests are delegated to the service layer. Every failure is
// rendered as {"error": "<message>"} through a single error mapping table.
package http
