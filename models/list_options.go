// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Defaults applied when the query string carries no usable pagination values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListOptions controls pagination, ordering and eager loading for resource
// listings. It is produced by the HTTP layer from the query string.
type ListOptions struct {
	// Page is the 1-based page number.
	Page int

	// Limit is the page size.
	Limit int

	// SortDesc orders results by creation time descending when true.
	SortDesc bool

	// IncludeCourse requests the related course to be loaded.
	IncludeCourse bool
}

// Offset returns the number of rows to skip for the current page.
func (o ListOptions) Offset() int {
	if o.Page < 1 {
		return 0
	}
	return (o.Page - 1) * o.Limit
}
