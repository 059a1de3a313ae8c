package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTechnologies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "React, Node, MongoDB", []string{"React", "Node", "MongoDB"}},
		{"extra whitespace", "  Go ,  Postgres  ", []string{"Go", "Postgres"}},
		{"empty segments dropped", "Go,,Redis,", []string{"Go", "Redis"}},
		{"single value", "Kafka", []string{"Kafka"}},
		{"empty string", "", []string{}},
		{"only separators", " , , ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTechnologies(tt.input))
		})
	}
}
