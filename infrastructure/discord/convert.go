package discord

import (
	"scouting-bot/domain"

	"github.com/bwmarrin/discordgo"
)

// Snowflakes coming from the API are always numeric, a parse failure maps to 0.

func toRole(r *discordgo.Role) domain.Role {
	id, _ := parseID(r.ID)
	return domain.Role{ID: domain.RoleID(id), Name: r.Name}
}

func toChannel(ch *discordgo.Channel) domain.Channel {
	id, _ := parseID(ch.ID)
	var parent uint64
	if ch.ParentID != "" {
		parent, _ = parseID(ch.ParentID)
	}
	return domain.Channel{
		ID:       domain.ChannelID(id),
		Name:     ch.Name,
		Kind:     toChannelKind(ch.Type),
		ParentID: domain.ChannelID(parent),
	}
}

func toChannelKind(t discordgo.ChannelType) domain.ChannelKind {
	switch t {
	case discordgo.ChannelTypeGuildCategory:
		return domain.ChannelCategory
	case discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice:
		return domain.ChannelVoice
	default:
		return domain.ChannelText
	}
}

func toMember(m *discordgo.Member) domain.Member {
	var id uint64
	name := m.Nick
	if m.User != nil {
		id, _ = parseID(m.User.ID)
		if name == "" {
			name = m.User.GlobalName
		}
		if name == "" {
			name = m.User.Username
		}
	}

	roles := make([]domain.RoleID, 0, len(m.Roles))
	for _, r := range m.Roles {
		if roleID, err := parseID(r); err == nil {
			roles = append(roles, domain.RoleID(roleID))
		}
	}
	return domain.NewMember(domain.MemberID(id), name, roles...)
}

func toOverwriteType(kind domain.OverwriteTarget) discordgo.PermissionOverwriteType {
	if kind == domain.OverwriteMember {
		return discordgo.PermissionOverwriteTypeMember
	}
	return discordgo.PermissionOverwriteTypeRole
}
