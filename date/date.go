// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package date parses calendar dates, clock times, and zone offsets from
// the front of chop views.
//
// The accepted forms are a subset of RFC 3339: dates are y-m-d (or y/m/d
// with a consistent separator), times are h:m:s with an optional
// fractional second, and zone offsets are "Z" or ±hh:mm. Each parser
// consumes its prefix from the view and leaves trailing input in place;
// on failure the view is unchanged.
package date

import (
	"time"

	"github.com/creachadair/chop"
)

// A YMD is a calendar date.
type YMD struct {
	Year, Month, Day int
}

// An HMS is a clock time with fractional seconds.
type HMS struct {
	Hour, Min int
	Sec       float64
}

// An Offset is a time zone offset from UTC. For negative offsets both
// fields are negative, so the offset in minutes is always 60*Hour+Min.
type Offset struct {
	Hour, Min int
}

// ParseYMD consumes a calendar date of the form y-m-d or y/m/d from the
// front of v. The two separators must agree, the month must be in 1..12,
// and the day in 1..31.
func ParseYMD(v *chop.View) (YMD, error) {
	save := *v
	y, err := chop.Int(v)
	if err != nil {
		return YMD{}, err
	}
	if v.IsEmpty() || (v.Front() != '-' && v.Front() != '/') {
		off := v.Span().Pos
		*v = save
		return YMD{}, chop.Errorf(off, chop.ErrMalformed, "invalid year-month separator")
	}
	sep := v.Front()
	*v = v.Drop(1)

	m, err := dateField(v, 1, 12, "month")
	if err != nil {
		*v = save
		return YMD{}, err
	}
	if err := v.Eat(sep); err != nil {
		off := v.Span().Pos
		*v = save
		return YMD{}, chop.Errorf(off, chop.ErrMalformed, "invalid month-day separator")
	}
	d, err := dateField(v, 1, 31, "day")
	if err != nil {
		*v = save
		return YMD{}, err
	}
	return YMD{Year: int(y), Month: m, Day: d}, nil
}

// ParseHMS consumes a clock time of the form h:m:s from the front of v.
// The seconds field may carry a decimal fraction.
func ParseHMS(v *chop.View) (HMS, error) {
	save := *v
	h, err := dateField(v, 0, 23, "hour")
	if err != nil {
		return HMS{}, err
	}
	if err := v.Eat(':'); err != nil {
		off := v.Span().Pos
		*v = save
		return HMS{}, chop.Errorf(off, chop.ErrMalformed, "invalid hour:minute separator")
	}
	m, err := dateField(v, 0, 59, "minute")
	if err != nil {
		*v = save
		return HMS{}, err
	}
	if err := v.Eat(':'); err != nil {
		off := v.Span().Pos
		*v = save
		return HMS{}, chop.Errorf(off, chop.ErrMalformed, "invalid minute:second separator")
	}
	s, err := chop.Float(v)
	if err != nil || s < 0 || s >= 61 { // allow a leap second
		off := v.Span().Pos
		*v = save
		return HMS{}, chop.Errorf(off, chop.ErrMalformed, "invalid seconds")
	}
	return HMS{Hour: h, Min: m, Sec: s}, nil
}

// ParseOffset consumes a zone offset from the front of v: either "Z" for
// UTC or a signed ±hh:mm pair.
func ParseOffset(v *chop.View) (Offset, error) {
	if !v.IsEmpty() && v.Front() == 'Z' {
		*v = v.Drop(1)
		return Offset{}, nil
	}
	save := *v
	if v.IsEmpty() || (v.Front() != '+' && v.Front() != '-') {
		return Offset{}, chop.Errorf(v.Span().Pos, chop.ErrMalformed, "offset must start with + or -")
	}
	neg := v.Front() == '-'
	*v = v.Drop(1)

	h, err := dateField(v, 0, 23, "offset hour")
	if err != nil {
		*v = save
		return Offset{}, err
	}
	if err := v.Eat(':'); err != nil {
		off := v.Span().Pos
		*v = save
		return Offset{}, chop.Errorf(off, chop.ErrMalformed, "invalid hour:minute offset separator")
	}
	m, err := dateField(v, 0, 59, "offset minute")
	if err != nil {
		*v = save
		return Offset{}, err
	}
	if neg {
		h, m = -h, -m
	}
	return Offset{Hour: h, Min: m}, nil
}

// ParseTime consumes a full timestamp from the front of v: a date, a "T"
// or space separator, a clock time, and an optional zone offset. A
// missing offset is taken as UTC.
func ParseTime(v *chop.View) (time.Time, error) {
	save := *v
	ymd, err := ParseYMD(v)
	if err != nil {
		return time.Time{}, err
	}
	if v.IsEmpty() || (v.Front() != 'T' && v.Front() != 't' && v.Front() != ' ') {
		off := v.Span().Pos
		*v = save
		return time.Time{}, chop.Errorf(off, chop.ErrMalformed, "missing date-time separator")
	}
	*v = v.Drop(1)

	hms, err := ParseHMS(v)
	if err != nil {
		*v = save
		return time.Time{}, err
	}
	loc := time.UTC
	if !v.IsEmpty() {
		switch v.Front() {
		case 'Z', '+', '-':
			zone, err := ParseOffset(v)
			if err != nil {
				*v = save
				return time.Time{}, err
			}
			if sec := zone.Hour*3600 + zone.Min*60; sec != 0 {
				loc = time.FixedZone("", sec)
			}
		}
	}
	sec := int(hms.Sec)
	nsec := int((hms.Sec - float64(sec)) * 1e9)
	return time.Date(ymd.Year, time.Month(ymd.Month), ymd.Day, hms.Hour, hms.Min, sec, nsec, loc), nil
}

// dateField consumes a decimal field and range-checks it. On failure v
// is unchanged.
func dateField(v *chop.View, lo, hi int, label string) (int, error) {
	save := *v
	off := v.Span().Pos
	z, err := chop.Int(v)
	if err != nil {
		return 0, err
	}
	if z < int64(lo) || z > int64(hi) {
		*v = save
		return 0, chop.Errorf(off, chop.ErrMalformed, "%s %d out of range", label, z)
	}
	return int(z), nil
}
