package main

import (
	"bytes"
	"strings"
	"testing"

	"scouting-bot/errors"

	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	err := plan(options{
		Members:  7,
		Size:     2,
		Overflow: "spread",
		Template: "Team {0}",
		Exclude:  []string{"<@7>"},
		Seed:     3,
	}, &out)

	req.NoError(err)
	text := out.String()
	req.True(strings.HasPrefix(text, "6 members in 3 groups (spread)"), text)
	req.Contains(text, "Team 1")
	req.Contains(text, "Team 3")
	req.NotContains(text, "Team 4")
	req.NotContains(text, "member-07")
	for _, name := range []string{"member-01", "member-02", "member-03", "member-04", "member-05", "member-06"} {
		req.Contains(text, name)
	}
}

func TestPlan_Errors(t *testing.T) {
	tests := []struct {
		name     string
		opts     options
		expected error
	}{
		{"invalid template", options{Members: 4, Size: 2, Template: "Group"}, errors.ErrConfiguration},
		{"uneven split", options{Members: 5, Size: 2, Overflow: "error", Template: "Group-{0}", Seed: 1}, errors.ErrUnevenSplit},
		{"bad exclusion", options{Members: 5, Size: 2, Template: "Group-{0}", Exclude: []string{"bob"}, Seed: 1}, errors.ErrValidation},
		{"size too big", options{Members: 2, Size: 3, Template: "Group-{0}", Seed: 1}, errors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := plan(tt.opts, &out)
			require.ErrorIs(t, err, tt.expected)
			require.Empty(t, out.String())
		})
	}
}

func TestSplitTokens(t *testing.T) {
	require.Equal(t, []string{"<@1>", "<@&2>"}, splitTokens(" <@1>, ,<@&2>,"))
	require.Nil(t, splitTokens(""))
}
