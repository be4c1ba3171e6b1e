package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMajorPrefix(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "hyphenated code", code: "TES-53E", want: "TES"},
		{name: "hyphenated long prefix", code: "ACCT-52B", want: "ACCT"},
		{name: "no separator truncates to three", code: "TESOL", want: "TES"},
		{name: "short code kept whole", code: "XX", want: "XX"},
		{name: "exactly three characters", code: "TES", want: "TES"},
		{name: "surrounding whitespace", code: "  TES-53E ", want: "TES"},
		{name: "empty", code: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MajorPrefix(tt.code))
		})
	}
}
