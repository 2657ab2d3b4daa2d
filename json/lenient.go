// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json

import "github.com/tailscale/hujson"

// ParseLenient parses data as a JSON document in the relaxed HuJSON
// (JWCC) syntax, permitting comments and trailing commas. The input is
// standardized to plain JSON before parsing, so positions reported in
// errors refer to the standardized text.
func ParseLenient(data []byte) (Value, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	return ParseBytes(std)
}
