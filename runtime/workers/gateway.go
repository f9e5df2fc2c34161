package workers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"scouting-bot/commands"

	"github.com/bwmarrin/discordgo"
)

// Discord refuses longer messages.
const maxMessageLength = 2000

type IDispatcher interface {
	Handle(ctx context.Context, msg commands.Message) (string, bool)
}

// IGuildDirectory forgets what it knows about a guild the bot left.
type IGuildDirectory interface {
	Forget(guildID uint64)
}

// GatewaySession is the part of *discordgo.Session the gateway needs.
type GatewaySession interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// GatewayWorker keeps the websocket connection open and feeds guild messages
// to the dispatcher. Replies go to the channel the command came from.
type GatewayWorker struct {
	session    GatewaySession
	dispatcher IDispatcher
	guilds     IGuildDirectory
	log        *slog.Logger
}

func NewGatewayWorker(session GatewaySession, dispatcher IDispatcher, guilds IGuildDirectory, log *slog.Logger) *GatewayWorker {
	return &GatewayWorker{session: session, dispatcher: dispatcher, guilds: guilds, log: log}
}

func (w *GatewayWorker) Run(ctx context.Context) error {
	removeMessages := w.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		w.onMessage(ctx, selfID(s), m)
	})
	defer removeMessages()
	removeGuilds := w.session.AddHandler(func(_ *discordgo.Session, g *discordgo.GuildDelete) {
		w.onGuildDelete(g)
	})
	defer removeGuilds()

	if err := w.session.Open(); err != nil {
		return fmt.Errorf("gateway connection failed: %w", err)
	}
	w.log.Info("Gateway connected")

	<-ctx.Done()
	if err := w.session.Close(); err != nil {
		w.log.Warn("Gateway didn't close cleanly", "error", err)
	}
	w.log.Info("Gateway disconnected")
	return nil
}

// onMessage ignores bots, including itself, and direct messages.
func (w *GatewayWorker) onMessage(ctx context.Context, self string, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	guildID, err := strconv.ParseUint(m.GuildID, 10, 64)
	if err != nil {
		w.log.Debug("Unparseable guild id", "guild", m.GuildID)
		return
	}
	authorID, err := strconv.ParseUint(m.Author.ID, 10, 64)
	if err != nil {
		w.log.Debug("Unparseable author id", "author", m.Author.ID)
		return
	}
	botID, _ := strconv.ParseUint(self, 10, 64)

	reply, ok := w.dispatcher.Handle(ctx, commands.Message{
		GuildID:    guildID,
		AuthorID:   authorID,
		AuthorName: authorName(m),
		BotID:      botID,
		Content:    m.Content,
	})
	if !ok || reply == "" {
		return
	}
	if _, err = w.session.ChannelMessageSend(m.ChannelID, truncate(reply), discordgo.WithContext(ctx)); err != nil {
		w.log.Warn("Unable to send reply", "channel", m.ChannelID, "error", err)
	}
}

// onGuildDelete only forgets guilds the bot was removed from, not outages.
func (w *GatewayWorker) onGuildDelete(g *discordgo.GuildDelete) {
	if w.guilds == nil || g == nil || g.Guild == nil || g.Unavailable {
		return
	}
	guildID, err := strconv.ParseUint(g.ID, 10, 64)
	if err != nil {
		return
	}
	w.guilds.Forget(guildID)
	w.log.Info("Removed from guild", "guild", guildID)
}

func selfID(s *discordgo.Session) string {
	if s == nil || s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}

func authorName(m *discordgo.MessageCreate) string {
	switch {
	case m.Member != nil && m.Member.Nick != "":
		return m.Member.Nick
	case m.Author.GlobalName != "":
		return m.Author.GlobalName
	default:
		return m.Author.Username
	}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxMessageLength {
		return s
	}
	return string(runes[:maxMessageLength-1]) + "…"
}
