package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"scouting-bot/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

const membersPageSize = 1000

// GuildClient performs the platform calls of one guild through a discordgo
// session. Every REST call is retried on rate limits after the backoff the
// API indicates; other failures are returned as they are.
type GuildClient struct {
	session *discordgo.Session
	log     *slog.Logger
	guildID string
	guild   uint64
	selfID  uint64
	// fetchMember is the REST lookup used when the state misses a member.
	fetchMember func(ctx context.Context, userID string) (*discordgo.Member, error)
}

func NewGuildClient(session *discordgo.Session, log *slog.Logger, guildID string) (*GuildClient, error) {
	guild, err := parseID(guildID)
	if err != nil {
		return nil, fmt.Errorf("guild id: %w", err)
	}
	if session.State == nil || session.State.User == nil {
		return nil, fmt.Errorf("session isn't ready")
	}
	self, err := parseID(session.State.User.ID)
	if err != nil {
		return nil, fmt.Errorf("bot user id: %w", err)
	}
	c := &GuildClient{session: session, log: log, guildID: guildID, guild: guild, selfID: self}
	c.fetchMember = func(ctx context.Context, userID string) (*discordgo.Member, error) {
		return session.GuildMember(guildID, userID, options(ctx)...)
	}
	return c, nil
}

func (c *GuildClient) SelfID() uint64 {
	return c.selfID
}

// EveryoneRoleID is the guild id: Discord gives @everyone the id of its guild.
func (c *GuildClient) EveryoneRoleID() uint64 {
	return c.guild
}

func (c *GuildClient) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := c.session.GuildRoles(c.guildID, options(ctx)...)
	if err != nil {
		return nil, err
	}
	return lo.Map(roles, func(r *discordgo.Role, _ int) domain.Role {
		return toRole(r)
	}), nil
}

// ListCategoryChannels returns the categories of the guild with their children.
func (c *GuildClient) ListCategoryChannels(ctx context.Context) ([]domain.Category, error) {
	channels, err := c.session.GuildChannels(c.guildID, options(ctx)...)
	if err != nil {
		return nil, err
	}

	return toCategories(channels), nil
}

// toCategories attaches every channel to its parent category. Channels
// without a parent, or whose parent isn't a category, are left out.
func toCategories(channels []*discordgo.Channel) []domain.Category {
	children := lo.GroupBy(
		lo.Filter(channels, func(ch *discordgo.Channel, _ int) bool { return ch.ParentID != "" }),
		func(ch *discordgo.Channel) string { return ch.ParentID },
	)

	var categories []domain.Category
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildCategory {
			continue
		}
		categories = append(categories, domain.Category{
			Channel: toChannel(ch),
			Children: lo.Map(children[ch.ID], func(child *discordgo.Channel, _ int) domain.Channel {
				return toChannel(child)
			}),
		})
	}
	return categories
}

func (c *GuildClient) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return collectMembers(func(after string) ([]*discordgo.Member, error) {
		return c.session.GuildMembers(c.guildID, after, membersPageSize, options(ctx)...)
	}, membersPageSize)
}

// collectMembers walks the member pages, each one starting after the last
// user of the previous page. A short page is the last one.
func collectMembers(fetch func(after string) ([]*discordgo.Member, error), pageSize int) ([]domain.Member, error) {
	var members []domain.Member
	after := ""
	for {
		page, err := fetch(after)
		if err != nil {
			return nil, err
		}
		for _, m := range page {
			members = append(members, toMember(m))
		}
		if len(page) < pageSize || page[len(page)-1].User == nil {
			return members, nil
		}
		after = page[len(page)-1].User.ID
	}
}

// VoiceChannelMembers returns everyone connected to the voice channel the
// given user is in, read from the gateway state.
func (c *GuildClient) VoiceChannelMembers(ctx context.Context, userID uint64) ([]domain.Member, bool, error) {
	states, err := c.voiceStates()
	if err != nil {
		return nil, false, err
	}

	user := formatID(userID)
	caller, found := lo.Find(states, func(vs discordgo.VoiceState) bool {
		return vs.UserID == user && vs.ChannelID != ""
	})
	if !found {
		return nil, false, nil
	}

	var members []domain.Member
	for _, vs := range states {
		if vs.ChannelID != caller.ChannelID {
			continue
		}
		member, err := c.session.State.Member(c.guildID, vs.UserID)
		if err != nil {
			if member, err = c.fetchMember(ctx, vs.UserID); err != nil {
				return nil, true, err
			}
		}
		members = append(members, toMember(member))
	}
	return members, true, nil
}

// voiceStates copies the voice states, the gateway keeps updating the originals.
func (c *GuildClient) voiceStates() ([]discordgo.VoiceState, error) {
	guild, err := c.session.State.Guild(c.guildID)
	if err != nil {
		return nil, err
	}
	c.session.State.RLock()
	defer c.session.State.RUnlock()
	states := make([]discordgo.VoiceState, 0, len(guild.VoiceStates))
	for _, vs := range guild.VoiceStates {
		states = append(states, *vs)
	}
	return states, nil
}

func (c *GuildClient) CreateRole(ctx context.Context, params domain.RoleParams) (domain.Role, error) {
	var none int64
	role, err := c.session.GuildRoleCreate(c.guildID, &discordgo.RoleParams{
		Name:        params.Name,
		Color:       lo.ToPtr(params.Color),
		Hoist:       lo.ToPtr(params.Hoist),
		Mentionable: lo.ToPtr(params.Mentionable),
		Permissions: &none,
	}, options(ctx)...)
	if err != nil {
		return domain.Role{}, err
	}
	c.log.Debug("Role created", "guild", c.guildID, "role", role.Name)
	return toRole(role), nil
}

func (c *GuildClient) CreateCategory(ctx context.Context, name string) (domain.Channel, error) {
	return c.createChannel(ctx, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	})
}

func (c *GuildClient) CreateTextChannel(ctx context.Context, name string, parent domain.ChannelID) (domain.Channel, error) {
	return c.createChannel(ctx, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: formatID(uint64(parent)),
	})
}

func (c *GuildClient) CreateVoiceChannel(ctx context.Context, name string, parent domain.ChannelID) (domain.Channel, error) {
	return c.createChannel(ctx, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildVoice,
		ParentID: formatID(uint64(parent)),
	})
}

func (c *GuildClient) createChannel(ctx context.Context, data discordgo.GuildChannelCreateData) (domain.Channel, error) {
	channel, err := c.session.GuildChannelCreateComplex(c.guildID, data, options(ctx)...)
	if err != nil {
		return domain.Channel{}, err
	}
	c.log.Debug("Channel created", "guild", c.guildID, "channel", channel.Name, "type", int(channel.Type))
	return toChannel(channel), nil
}

func (c *GuildClient) AddPermissionOverwrite(ctx context.Context, channel domain.ChannelID, overwrite domain.Overwrite) error {
	return c.session.ChannelPermissionSet(
		formatID(uint64(channel)),
		formatID(overwrite.TargetID),
		toOverwriteType(overwrite.TargetKind),
		int64(overwrite.Allow),
		int64(overwrite.Deny),
		options(ctx)...,
	)
}

func (c *GuildClient) AddRoleToMember(ctx context.Context, member domain.MemberID, role domain.RoleID) error {
	return c.session.GuildMemberRoleAdd(c.guildID, formatID(uint64(member)), formatID(uint64(role)), options(ctx)...)
}

func (c *GuildClient) RemoveRoleFromMember(ctx context.Context, member domain.MemberID, role domain.RoleID) error {
	return c.session.GuildMemberRoleRemove(c.guildID, formatID(uint64(member)), formatID(uint64(role)), options(ctx)...)
}

func (c *GuildClient) DeleteResource(ctx context.Context, ref domain.ResourceRef) error {
	switch ref.Kind {
	case domain.ResourceRole:
		return c.session.GuildRoleDelete(c.guildID, formatID(ref.ID), options(ctx)...)
	case domain.ResourceChannel:
		_, err := c.session.ChannelDelete(formatID(ref.ID), options(ctx)...)
		return err
	default:
		return fmt.Errorf("unknown resource kind %d", ref.Kind)
	}
}

func options(ctx context.Context) []discordgo.RequestOption {
	return []discordgo.RequestOption{
		discordgo.WithContext(ctx),
		discordgo.WithRetryOnRatelimit(true),
	}
}

func parseID(id string) (uint64, error) {
	return strconv.ParseUint(id, 10, 64)
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
