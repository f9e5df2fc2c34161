package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"scouting-bot/commands"
	"scouting-bot/infrastructure/discord"
	"scouting-bot/naming"
	"scouting-bot/repositories"
	"scouting-bot/runtime"
	"scouting-bot/runtime/workers"
	"scouting-bot/services"

	"github.com/Netflix/go-env"
	"github.com/bwmarrin/discordgo"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildVoiceStates |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires everything and blocks until SIGINT or SIGTERM, so that every
// deferred cleanup runs before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	template, err := naming.NewTemplate(config.GroupNameTemplate)
	if err != nil {
		return exitConfig, err
	}
	texts, err := commands.LoadTexts()
	if err != nil {
		return exitConfig, err
	}

	// 2. Journal (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	journal := repositories.NewInvocationRepository(db, log)

	// 3. Discord session
	discord.RouteLogs(log)
	session, err := discordgo.New("Bot " + config.DiscordToken)
	if err != nil {
		return exitConfig, fmt.Errorf("discord session: %w", err)
	}
	session.Identify.Intents = intents
	var level slog.Level
	if err = level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	session.LogLevel = discord.SessionLogLevel(level)
	session.StateEnabled = true
	session.State.TrackVoice = true
	session.State.TrackMembers = true

	// 4. Commands
	registry := runtime.NewRegistry(func(guildID uint64) (commands.Guild, error) {
		guildLog := log.With("guild", guildID)
		client, err := discord.NewGuildClient(session, guildLog, strconv.FormatUint(guildID, 10))
		if err != nil {
			return commands.Guild{}, err
		}
		return commands.Guild{
			Groups:     services.NewGroupService(guildLog, client, template),
			Population: client,
		}, nil
	})
	dispatcher := commands.NewDispatcher(log,
		commands.Config{Prefix: config.CommandPrefix, Timeout: config.CommandTimeout},
		texts, registry.Open, journal)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewGatewayWorker(session, dispatcher, registry, log))

	log.Info("Bot starting", "prefix", config.CommandPrefix, "template", template.String())
	sup.Run(ctx)
	log.Info("Bot stopped cleanly")
	return exitOK, nil
}
