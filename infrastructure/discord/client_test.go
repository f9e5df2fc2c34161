package discord

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"scouting-bot/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func member(id, name string) *discordgo.Member {
	return &discordgo.Member{GuildID: "100", User: &discordgo.User{ID: id, Username: name}}
}

// newStateClient builds a client over a gateway state holding one guild.
func newStateClient(t *testing.T, members []*discordgo.Member, voice []*discordgo.VoiceState) *GuildClient {
	t.Helper()
	state := discordgo.NewState()
	state.User = &discordgo.User{ID: "1"}
	require.NoError(t, state.GuildAdd(&discordgo.Guild{ID: "100", Members: members, VoiceStates: voice}))

	client, err := NewGuildClient(&discordgo.Session{State: state}, slog.Default(), "100")
	require.NoError(t, err)
	client.fetchMember = func(context.Context, string) (*discordgo.Member, error) {
		t.Fatal("unexpected REST member lookup")
		return nil, nil
	}
	return client
}

func TestToCategories(t *testing.T) {
	req := require.New(t)

	// Given two categories, their channels, an orphan and a channel under a missing parent
	channels := []*discordgo.Channel{
		{ID: "20", Name: "Group-1-text", Type: discordgo.ChannelTypeGuildText, ParentID: "10"},
		{ID: "10", Name: "Group-1", Type: discordgo.ChannelTypeGuildCategory},
		{ID: "21", Name: "Group-1-voice", Type: discordgo.ChannelTypeGuildVoice, ParentID: "10"},
		{ID: "11", Name: "General", Type: discordgo.ChannelTypeGuildCategory},
		{ID: "30", Name: "welcome", Type: discordgo.ChannelTypeGuildText},
		{ID: "31", Name: "lost", Type: discordgo.ChannelTypeGuildText, ParentID: "99"},
	}

	// When
	categories := toCategories(channels)

	// Then
	req.Equal([]domain.Category{
		{
			Channel: domain.Channel{ID: 10, Name: "Group-1", Kind: domain.ChannelCategory},
			Children: []domain.Channel{
				{ID: 20, Name: "Group-1-text", Kind: domain.ChannelText, ParentID: 10},
				{ID: 21, Name: "Group-1-voice", Kind: domain.ChannelVoice, ParentID: 10},
			},
		},
		{
			Channel:  domain.Channel{ID: 11, Name: "General", Kind: domain.ChannelCategory},
			Children: []domain.Channel{},
		},
	}, categories)
}

func TestCollectMembers_Pagination(t *testing.T) {
	req := require.New(t)

	// Given 5 members served by pages of 2
	all := []*discordgo.Member{member("1", "a"), member("2", "b"), member("3", "c"), member("4", "d"), member("5", "e")}
	var afters []string
	fetch := func(after string) ([]*discordgo.Member, error) {
		afters = append(afters, after)
		start := 0
		for i, m := range all {
			if m.User.ID == after {
				start = i + 1
			}
		}
		return all[start:min(start+2, len(all))], nil
	}

	// When
	members, err := collectMembers(fetch, 2)

	// Then
	req.NoError(err)
	req.Len(members, 5)
	req.Equal([]string{"", "2", "4"}, afters)
	req.Equal(domain.MemberID(5), members[4].ID)
}

func TestCollectMembers_FullLastPage(t *testing.T) {
	req := require.New(t)
	calls := 0
	fetch := func(after string) ([]*discordgo.Member, error) {
		calls++
		if after == "" {
			return []*discordgo.Member{member("1", "a"), member("2", "b")}, nil
		}
		return nil, nil
	}

	members, err := collectMembers(fetch, 2)

	req.NoError(err)
	req.Len(members, 2)
	req.Equal(2, calls)
}

func TestCollectMembers_Failure(t *testing.T) {
	_, err := collectMembers(func(string) ([]*discordgo.Member, error) {
		return nil, fmt.Errorf("HTTP 403 Forbidden")
	}, 2)
	require.Error(t, err)
}

func TestVoiceChannelMembers(t *testing.T) {
	members := []*discordgo.Member{member("7", "akela"), member("8", "baloo"), member("9", "kaa")}
	voice := []*discordgo.VoiceState{
		{GuildID: "100", UserID: "7", ChannelID: "500"},
		{GuildID: "100", UserID: "9", ChannelID: "600"},
		{GuildID: "100", UserID: "8", ChannelID: "500"},
	}

	tests := []struct {
		name      string
		caller    uint64
		connected bool
		expected  []domain.MemberID
	}{
		{"caller's channel only", 7, true, []domain.MemberID{7, 8}},
		{"other channel", 9, true, []domain.MemberID{9}},
		{"caller not connected", 11, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			client := newStateClient(t, members, voice)

			got, connected, err := client.VoiceChannelMembers(context.Background(), tt.caller)

			req.NoError(err)
			req.Equal(tt.connected, connected)
			var ids []domain.MemberID
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			req.Equal(tt.expected, ids)
		})
	}
}

func TestVoiceChannelMembers_FallsBackToRest(t *testing.T) {
	req := require.New(t)

	// Given a connected member the state doesn't know yet
	client := newStateClient(t,
		[]*discordgo.Member{member("7", "akela")},
		[]*discordgo.VoiceState{
			{GuildID: "100", UserID: "7", ChannelID: "500"},
			{GuildID: "100", UserID: "12", ChannelID: "500"},
		})
	var fetched []string
	client.fetchMember = func(_ context.Context, userID string) (*discordgo.Member, error) {
		fetched = append(fetched, userID)
		return member(userID, "mowgli"), nil
	}

	// When
	got, connected, err := client.VoiceChannelMembers(context.Background(), 7)

	// Then
	req.NoError(err)
	req.True(connected)
	req.Equal([]string{"12"}, fetched)
	req.Len(got, 2)
	req.Equal("mowgli", got[1].DisplayName)
}

func TestVoiceChannelMembers_RestFailure(t *testing.T) {
	req := require.New(t)
	client := newStateClient(t, nil, []*discordgo.VoiceState{
		{GuildID: "100", UserID: "7", ChannelID: "500"},
	})
	client.fetchMember = func(context.Context, string) (*discordgo.Member, error) {
		return nil, stderrors.New("HTTP 404 Not Found")
	}

	_, connected, err := client.VoiceChannelMembers(context.Background(), 7)

	req.Error(err)
	req.True(connected)
}

func TestNewGuildClient(t *testing.T) {
	req := require.New(t)

	_, err := NewGuildClient(&discordgo.Session{State: discordgo.NewState()}, slog.Default(), "100")
	req.Error(err)

	state := discordgo.NewState()
	state.User = &discordgo.User{ID: "1"}
	_, err = NewGuildClient(&discordgo.Session{State: state}, slog.Default(), "abc")
	req.Error(err)

	client, err := NewGuildClient(&discordgo.Session{State: state}, slog.Default(), "100")
	req.NoError(err)
	req.Equal(uint64(1), client.SelfID())
	req.Equal(uint64(100), client.EveryoneRoleID())
}
