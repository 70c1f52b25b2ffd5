package services

import "encoding/json"

// Parsed is the outcome of ParseOrDefault. Err holds the absorbed decode
// error, if any; Value is then the default.
type Parsed[T any] struct {
	Value T
	Err   error
}

func (p Parsed[T]) OK() bool { return p.Err == nil }

// ParseOrDefault decodes text as JSON into T. A decode failure never escapes:
// the result carries def and the error instead.
func ParseOrDefault[T any](text string, def T) Parsed[T] {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return Parsed[T]{Value: def, Err: err}
	}
	return Parsed[T]{Value: v}
}
