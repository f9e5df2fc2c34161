// Package domain contains core concepts of the group bot.
// This file defines Member entities and exclusion tokens.
// No runtime, network, or UI logic should be added here.
package domain

type MemberID uint64

type RoleID uint64

// Member is a read-only view of a guild member, owned by the platform.
type Member struct {
	ID          MemberID
	DisplayName string
	RoleIDs     map[RoleID]struct{}
}

func NewMember(id MemberID, displayName string, roles ...RoleID) Member {
	roleIDs := make(map[RoleID]struct{}, len(roles))
	for _, r := range roles {
		roleIDs[r] = struct{}{}
	}
	return Member{ID: id, DisplayName: displayName, RoleIDs: roleIDs}
}

func (m Member) HasRole(id RoleID) bool {
	_, ok := m.RoleIDs[id]
	return ok
}

type TokenKind int

const (
	TokenUser TokenKind = iota
	TokenRole
)

func (k TokenKind) String() string {
	switch k {
	case TokenUser:
		return "user"
	case TokenRole:
		return "role"
	default:
		return "unknown"
	}
}

// ExclusionToken references a user or a role to keep out of the distribution.
type ExclusionToken struct {
	Kind TokenKind
	ID   uint64
}
