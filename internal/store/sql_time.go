// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timestamp scans a timestamp column into a [time.Time]. Drivers that parse
// timestamps hand over a time.Time already; sqlite returns text for columns
// without a declared type, such as the ones produced by RETURNING.
type timestamp struct {
	dest *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.dest = time.Time{}
		return nil
	case time.Time:
		*ts.dest = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.dest = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}
