package main

import "time"

type Config struct {
	DiscordToken      string        `env:"DISCORD_TOKEN,required=true"`
	CommandPrefix     string        `env:"COMMAND_PREFIX,default=!"`
	GroupNameTemplate string        `env:"GROUP_NAME_TEMPLATE,default=Group-{0}"`
	CommandTimeout    time.Duration `env:"COMMAND_TIMEOUT,default=5m"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=1s"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
}
