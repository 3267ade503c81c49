package jsonx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// camelCaseExtension renames snake_case and PascalCase fields to
// lowerCamelCase on output and accepts both names on input.
type camelCaseExtension struct {
	jsoniter.DummyExtension
}

func (e *camelCaseExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		jsonTag := binding.Field.Tag().Get("json")
		if jsonTag == "-" {
			continue
		}

		name := binding.Field.Name()
		if tagName, _, _ := strings.Cut(jsonTag, ","); tagName != "" {
			name = tagName
		}
		if !strings.Contains(name, "_") && !isFirstCharUpper(name) {
			continue
		}
		camel := toLowerFirstCamel(name)
		binding.ToNames = []string{camel}
		binding.FromNames = []string{camel, name}
	}
}

// toLowerFirstCamel turns "max_err_at" and "MaxErrAt" into "maxErrAt".
func toLowerFirstCamel(s string) string {
	var sb strings.Builder
	for _, p := range strings.Split(s, "_") {
		if p == "" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(strings.ToLower(p[:1]) + p[1:])
		} else {
			sb.WriteString(strings.ToUpper(p[:1]) + p[1:])
		}
	}
	return sb.String()
}

func isFirstCharUpper(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
