// Package exclusion removes mentioned users and roles from a candidate population.
package exclusion

import (
	"fmt"
	"strconv"
	"strings"

	"scouting-bot/domain"
	"scouting-bot/errors"

	"github.com/samber/lo"
)

const (
	userPrefix     = "<@!"
	rolePrefix     = "<@&"
	bareUserPrefix = "<@"
	suffix         = ">"
)

// ParseToken parses a mention such as <@!123>, <@123> or <@&456>.
func ParseToken(raw string) (domain.ExclusionToken, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasSuffix(s, suffix) {
		return domain.ExclusionToken{}, invalidToken(raw)
	}

	var kind domain.TokenKind
	var digits string
	switch {
	case strings.HasPrefix(s, rolePrefix):
		kind, digits = domain.TokenRole, s[len(rolePrefix):len(s)-len(suffix)]
	case strings.HasPrefix(s, userPrefix):
		kind, digits = domain.TokenUser, s[len(userPrefix):len(s)-len(suffix)]
	case strings.HasPrefix(s, bareUserPrefix):
		kind, digits = domain.TokenUser, s[len(bareUserPrefix):len(s)-len(suffix)]
	default:
		return domain.ExclusionToken{}, invalidToken(raw)
	}

	// ParseUint accepts a leading '+', mentions never carry one
	if digits == "" || digits[0] < '0' || digits[0] > '9' {
		return domain.ExclusionToken{}, invalidToken(raw)
	}
	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return domain.ExclusionToken{}, invalidToken(raw)
	}
	return domain.ExclusionToken{Kind: kind, ID: id}, nil
}

// ParseTokens parses every token and stops at the first malformed one.
func ParseTokens(raw []string) ([]domain.ExclusionToken, error) {
	tokens := make([]domain.ExclusionToken, 0, len(raw))
	for _, r := range raw {
		token, err := ParseToken(r)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// Apply returns the members not referenced by any token, preserving order.
// The input slice is left untouched.
func Apply(tokens []domain.ExclusionToken, members []domain.Member) []domain.Member {
	users := make(map[domain.MemberID]struct{})
	roles := make(map[domain.RoleID]struct{})
	for _, token := range tokens {
		switch token.Kind {
		case domain.TokenUser:
			users[domain.MemberID(token.ID)] = struct{}{}
		case domain.TokenRole:
			roles[domain.RoleID(token.ID)] = struct{}{}
		}
	}

	return lo.Reject(members, func(m domain.Member, _ int) bool {
		if _, ok := users[m.ID]; ok {
			return true
		}
		for r := range roles {
			if m.HasRole(r) {
				return true
			}
		}
		return false
	})
}

// Filter validates all tokens before removing anyone: a malformed token
// anywhere in the list leaves the population unchanged.
func Filter(raw []string, members []domain.Member) ([]domain.Member, error) {
	tokens, err := ParseTokens(raw)
	if err != nil {
		return members, err
	}
	return Apply(tokens, members), nil
}

func invalidToken(raw string) error {
	return fmt.Errorf("%w: %q isn't a mention, mention users or roles with @ to exclude them",
		errors.ErrValidation, raw)
}
