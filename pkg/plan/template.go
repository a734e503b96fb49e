/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package plan

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hpckit/qsend/pkg/errors"
)

// placeholderPattern matches {name} placeholders in target templates.
var placeholderPattern = regexp.MustCompile(`\{([^{}]*)\}`)

// Substitutions is the structured argument set rendered into a target
// template. Building it separately from the rendering step keeps the values
// typed until the final string boundary.
type Substitutions struct {
	Partition string
	Cores     int
	MemoryGB  float64
	Filename  string
	Directory string
}

// value returns the rendered text for a placeholder name. Memory converts
// GB to MB with a decimal-thousand factor and rounds to the nearest integer:
// 8 -> "8000", 5.5 -> "5500".
func (s *Substitutions) value(name string) (string, bool) {
	switch name {
	case "partition":
		return s.Partition, true
	case "cores":
		return strconv.Itoa(s.Cores), true
	case "memory":
		return strconv.Itoa(int(math.Round(s.MemoryGB * 1000))), true
	case "filename":
		return s.Filename, true
	case "directory":
		return s.Directory, true
	default:
		return "", false
	}
}

// Format substitutes sub into template. Every placeholder in the template
// must belong to the fixed name set; anything else is a TEMPLATE_FORMAT
// error naming the offending placeholder.
func Format(template string, sub *Substitutions) (string, error) {
	var b strings.Builder
	last := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(template, -1) {
		name := template[m[2]:m[3]]
		rendered, ok := sub.value(name)
		if !ok {
			return "", errors.Newf(errors.ErrCodeTemplateFormat,
				"template references unknown placeholder {%s}", name)
		}
		b.WriteString(template[last:m[0]])
		b.WriteString(rendered)
		last = m[1]
	}
	b.WriteString(template[last:])
	return b.String(), nil
}
