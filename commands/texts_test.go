package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{"two slots", "{0} users were split into {1} groups.", []any{7, 3}, "7 users were split into 3 groups."},
		{"repeated slot", "{0} and {0}", []any{"a"}, "a and a"},
		{"no slot", "Done.", []any{1}, "Done."},
		{"missing argument", "{0} {1}", []any{"a"}, "a {1}"},
		{"argument isn't expanded", "Sorry {0}: {1}", []any{"bob", "bad {0}"}, "Sorry bob: bad {0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Format(tt.template, tt.args...))
		})
	}
}

func TestLoadTexts(t *testing.T) {
	req := require.New(t)

	// Given
	t.Setenv("TEXT_GROUPS_CREATED", "{0} Gruppen erstellt.")

	// When
	texts, err := LoadTexts()

	// Then
	req.NoError(err)
	req.Equal("{0} Gruppen erstellt.", texts.GroupsCreated)
	req.Equal(DefaultTexts().UsersDistributed, texts.UsersDistributed)
	req.Equal(DefaultTexts().CommandExecutionFailed, texts.CommandExecutionFailed)
}

func TestParseArgs(t *testing.T) {
	req := require.New(t)

	args := parseArgs([]string{"2", "<@!3>", "Exclude=<@&9>,,<@4>", "overflow:spread", "create_missing=false"})

	req.Equal([]string{"2", "<@!3>"}, args.Positional)
	req.Equal([]string{"<@&9>", "<@4>"}, args.Named["exclude"])
	req.Equal([]string{"spread"}, args.Named["overflow"])
	req.Equal([]string{"false"}, args.Named["createmissing"])
}
