/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   []string
		want     []string
	}{
		{
			name:     "single marker",
			template: "sim_D{}",
			values:   []string{"4", "5"},
			want:     []string{"sim_D4", "sim_D5"},
		},
		{
			name:     "marker with extension",
			template: "run_{}.py",
			values:   []string{"a", "b", "c"},
			want:     []string{"run_a.py", "run_b.py", "run_c.py"},
		},
		{
			name:     "no marker ignores values",
			template: "plain.py",
			values:   []string{"4", "5"},
			want:     []string{"plain.py"},
		},
		{
			name:     "no marker no values",
			template: "plain.py",
			values:   nil,
			want:     []string{"plain.py"},
		},
		{
			name:     "marker with empty values",
			template: "sim_D{}",
			values:   []string{},
			want:     []string{},
		},
		{
			name:     "duplicate values are preserved",
			template: "sim_D{}",
			values:   []string{"4", "4"},
			want:     []string{"sim_D4", "sim_D4"},
		},
		{
			name:     "repeated marker is replaced everywhere",
			template: "d{}/sim_{}.py",
			values:   []string{"4"},
			want:     []string{"d4/sim_4.py"},
		},
		{
			name:     "values stay raw tokens",
			template: "sim_D{}",
			values:   []string{"04"},
			want:     []string{"sim_D04"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.template, tt.values))
		})
	}
}

func TestHasMarker(t *testing.T) {
	assert.True(t, HasMarker("sim_D{}"))
	assert.False(t, HasMarker("plain.py"))
	assert.False(t, HasMarker("half_open{"))
}
