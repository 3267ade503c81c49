// Package jsonx is the JSON codec for reports. Field names are written in
// lowerCamelCase and non-finite floats survive as strings.
package jsonx

import (
	jsoniter "github.com/json-iterator/go"
)

var _jsonx = jsoniter.Config{
	IndentionStep:          2,
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var (
	Marshal       = _jsonx.Marshal
	Unmarshal     = _jsonx.Unmarshal
	MarshalIndent = _jsonx.MarshalIndent
	NewEncoder    = _jsonx.NewEncoder
	NewDecoder    = _jsonx.NewDecoder
)

func init() {
	jsoniter.RegisterExtension(&floatExtension{})
	jsoniter.RegisterExtension(&camelCaseExtension{})
}
