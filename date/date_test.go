// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package date_test

import (
	"testing"
	"time"

	"github.com/creachadair/chop"
	"github.com/creachadair/chop/date"
	"github.com/stretchr/testify/require"
)

func TestParseYMD(t *testing.T) {
	tests := []struct {
		input string
		want  date.YMD
		rest  string
	}{
		{"2024-08-25", date.YMD{Year: 2024, Month: 8, Day: 25}, ""},
		{"2024/08/25x", date.YMD{Year: 2024, Month: 8, Day: 25}, "x"},
		{"999-1-1", date.YMD{Year: 999, Month: 1, Day: 1}, ""},
		{"2024-12-31T10:00", date.YMD{Year: 2024, Month: 12, Day: 31}, "T10:00"},
	}
	for _, test := range tests {
		v := chop.String(test.input)
		got, err := date.ParseYMD(&v)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.want, got, "input %q", test.input)
		require.True(t, v.EqualString(test.rest), "remainder %q, want %q", v.Text(), test.rest)
	}

	t.Run("Invalid", func(t *testing.T) {
		bad := []string{
			"",
			"abc",
			"2024",
			"2024-08",    // missing day
			"2024-13-01", // month out of range
			"2024-00-01",
			"2024-08-32", // day out of range
			"2024-08-00",
			"2024/08-25", // mixed separators
			"2024.08.25", // unsupported separator
		}
		for _, input := range bad {
			v := chop.String(input)
			_, err := date.ParseYMD(&v)
			require.Error(t, err, "input %q", input)
			require.True(t, v.EqualString(input), "input %q: view %q, want unchanged", input, v.Text())
		}
	})
}

func TestParseHMS(t *testing.T) {
	tests := []struct {
		input string
		want  date.HMS
		rest  string
	}{
		{"10:30:05", date.HMS{Hour: 10, Min: 30, Sec: 5}, ""},
		{"0:0:0", date.HMS{}, ""},
		{"23:59:60", date.HMS{Hour: 23, Min: 59, Sec: 60}, ""}, // leap second
		{"10:30:05.25Z", date.HMS{Hour: 10, Min: 30, Sec: 5.25}, "Z"},
	}
	for _, test := range tests {
		v := chop.String(test.input)
		got, err := date.ParseHMS(&v)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.want, got, "input %q", test.input)
		require.True(t, v.EqualString(test.rest), "remainder %q, want %q", v.Text(), test.rest)
	}

	t.Run("Invalid", func(t *testing.T) {
		bad := []string{
			"",
			"10",
			"10:30",
			"24:00:00", // hour out of range
			"10:60:00", // minute out of range
			"10:30:61", // past the leap second
			"10-30-05",
		}
		for _, input := range bad {
			v := chop.String(input)
			_, err := date.ParseHMS(&v)
			require.Error(t, err, "input %q", input)
			require.True(t, v.EqualString(input), "input %q: view %q, want unchanged", input, v.Text())
		}
	})
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		input string
		want  date.Offset
		rest  string
	}{
		{"Z", date.Offset{}, ""},
		{"Zulu", date.Offset{}, "ulu"},
		{"+05:30", date.Offset{Hour: 5, Min: 30}, ""},
		{"-05:30", date.Offset{Hour: -5, Min: -30}, ""},
		{"+00:00", date.Offset{}, ""},
		{"-08:00 PST", date.Offset{Hour: -8}, " PST"},
	}
	for _, test := range tests {
		v := chop.String(test.input)
		got, err := date.ParseOffset(&v)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.want, got, "input %q", test.input)
		require.True(t, v.EqualString(test.rest), "remainder %q, want %q", v.Text(), test.rest)
	}

	t.Run("Invalid", func(t *testing.T) {
		bad := []string{
			"",
			"05:30", // missing sign
			"+24:00",
			"+05:60",
			"+0530", // missing separator
			"+05",
		}
		for _, input := range bad {
			v := chop.String(input)
			_, err := date.ParseOffset(&v)
			require.Error(t, err, "input %q", input)
			require.True(t, v.EqualString(input), "input %q: view %q, want unchanged", input, v.Text())
		}
	})
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		rest  string
	}{
		{"2024-08-25T10:30:05Z",
			time.Date(2024, 8, 25, 10, 30, 5, 0, time.UTC), ""},
		{"2024-08-25 10:30:05",
			time.Date(2024, 8, 25, 10, 30, 5, 0, time.UTC), ""}, // no offset is UTC
		{"2024-08-25t00:00:00.5",
			time.Date(2024, 8, 25, 0, 0, 0, 500000000, time.UTC), ""},
		{"2024-08-25T10:30:05+05:30",
			time.Date(2024, 8, 25, 10, 30, 5, 0, time.FixedZone("", 19800)), ""},
		{"2024-08-25T10:30:05-08:00,next",
			time.Date(2024, 8, 25, 10, 30, 5, 0, time.FixedZone("", -28800)), ",next"},
	}
	for _, test := range tests {
		v := chop.String(test.input)
		got, err := date.ParseTime(&v)
		require.NoError(t, err, "input %q", test.input)
		require.True(t, test.want.Equal(got), "input %q: got %v, want %v", test.input, got, test.want)
		require.True(t, v.EqualString(test.rest), "remainder %q, want %q", v.Text(), test.rest)
	}

	t.Run("Invalid", func(t *testing.T) {
		bad := []string{
			"",
			"2024-08-25",          // date only
			"2024-08-25X10:30:05", // bad separator
			"2024-08-25T10:30",
			"2024-08-25T24:30:05",
		}
		for _, input := range bad {
			v := chop.String(input)
			_, err := date.ParseTime(&v)
			require.Error(t, err, "input %q", input)
			require.True(t, v.EqualString(input), "input %q: view %q, want unchanged", input, v.Text())
		}
	})
}
