// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-campus-api/models"
)

// parseListOptions reads page, limit, sort and populate from the query
// string. Missing, malformed or non-positive numbers fall back to defaults;
// any sort other than "desc" is ascending.
func parseListOptions(query url.Values) models.ListOptions {
	return models.ListOptions{
		Page:          positiveIntOr(query.Get("page"), models.DefaultPage),
		Limit:         positiveIntOr(query.Get("limit"), models.DefaultLimit),
		SortDesc:      strings.EqualFold(query.Get("sort"), "desc"),
		IncludeCourse: includesCourse(query),
	}
}

// includesCourse reports whether populate lists Course. The value is a
// comma-separated list and may be repeated.
func includesCourse(query url.Values) bool {
	for _, value := range query["populate"] {
		for _, relation := range strings.Split(value, ",") {
			switch strings.TrimSpace(relation) {
			case "Course", "course":
				return true
			}
		}
	}
	return false
}

func positiveIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
