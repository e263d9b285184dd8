// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NotAvailable stands in for build values the linker did not set.
const NotAvailable = "N/A"

// BuildInfo describes the running server binary. It is the JSON body of
// GET /api/version/ when the client accepts application/json.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo returns a BuildInfo with every empty value replaced by
// [NotAvailable].
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", b.Version, b.Date, b.Commit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
