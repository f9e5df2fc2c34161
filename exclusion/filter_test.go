package exclusion

import (
	"testing"

	"scouting-bot/domain"
	"scouting-bot/errors"

	"github.com/stretchr/testify/require"
)

const (
	leaders domain.RoleID = 900
	guests  domain.RoleID = 901
)

func population() []domain.Member {
	return []domain.Member{
		domain.NewMember(1, "Alice", leaders),
		domain.NewMember(2, "Bob"),
		domain.NewMember(3, "Clara", guests),
		domain.NewMember(4, "Dan", leaders, guests),
		domain.NewMember(5, "Eve"),
	}
}

func ids(members []domain.Member) []domain.MemberID {
	out := make([]domain.MemberID, 0, len(members))
	for _, m := range members {
		out = append(out, m.ID)
	}
	return out
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.ExclusionToken
		valid    bool
	}{
		{"user with nickname marker", "<@!123>", domain.ExclusionToken{Kind: domain.TokenUser, ID: 123}, true},
		{"bare user", "<@42>", domain.ExclusionToken{Kind: domain.TokenUser, ID: 42}, true},
		{"role", "<@&987654321012345678>", domain.ExclusionToken{Kind: domain.TokenRole, ID: 987654321012345678}, true},
		{"max uint64", "<@!18446744073709551615>", domain.ExclusionToken{Kind: domain.TokenUser, ID: 18446744073709551615}, true},
		{"overflow uint64", "<@!18446744073709551616>", domain.ExclusionToken{}, false},
		{"plain name", "Alice", domain.ExclusionToken{}, false},
		{"channel mention", "<#123>", domain.ExclusionToken{}, false},
		{"missing closing", "<@!123", domain.ExclusionToken{}, false},
		{"empty id", "<@!>", domain.ExclusionToken{}, false},
		{"signed id", "<@!+12>", domain.ExclusionToken{}, false},
		{"letters", "<@&abc>", domain.ExclusionToken{}, false},
		{"empty", "", domain.ExclusionToken{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			token, err := ParseToken(tt.raw)
			if !tt.valid {
				req.ErrorIs(err, errors.ErrValidation)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, token)
		})
	}
}

func TestFilter_RemovesUsersAndRoles(t *testing.T) {
	req := require.New(t)

	// Given a user token, a role token and a user that isn't there
	raw := []string{"<@!2>", "<@&901>", "<@!77>"}

	// When the population is filtered
	remaining, err := Filter(raw, population())

	// Then Bob, Clara and Dan are gone and the order is preserved
	req.NoError(err)
	req.Equal([]domain.MemberID{1, 5}, ids(remaining))
}

func TestFilter_NoTokens(t *testing.T) {
	req := require.New(t)
	remaining, err := Filter(nil, population())
	req.NoError(err)
	req.Len(remaining, 5)
}

func TestFilter_IsAtomic(t *testing.T) {
	req := require.New(t)
	members := population()

	// Given valid tokens followed by a malformed one
	raw := []string{"<@!1>", "<@&900>", "Eve"}

	// When the population is filtered
	remaining, err := Filter(raw, members)

	// Then nobody is removed
	req.ErrorIs(err, errors.ErrValidation)
	req.Equal(ids(population()), ids(remaining))
	req.Equal(ids(population()), ids(members))
}
