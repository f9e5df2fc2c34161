package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// TextOptions holds the reply templates. Placeholders are positional: {0}, {1}…
type TextOptions struct {
	// Takes the username and the error message.
	CommandExecutionFailed string `envconfig:"COMMAND_EXECUTION_FAILED" default:"Sorry {0}, something went wrong: {1}"`
	// Takes the number of groups deleted.
	GroupsDeleted string `envconfig:"GROUPS_DELETED" default:"{0} groups deleted."`
	// Takes the number of groups created.
	GroupsCreated string `envconfig:"GROUPS_CREATED" default:"{0} groups added."`
	// Takes the number of distributed users and the number of groups.
	UsersDistributed string `envconfig:"USERS_DISTRIBUTED" default:"{0} users were split into {1} groups."`
	GroupsBrokenUp   string `envconfig:"GROUPS_BROKEN_UP" default:"All groups were broken up."`
	NoHistory        string `envconfig:"NO_HISTORY" default:"No group command was run here yet."`
	Pong             string `envconfig:"PONG" default:"Pong"`
}

// LoadTexts reads the templates from TEXT_* environment variables.
func LoadTexts() (TextOptions, error) {
	var texts TextOptions
	if err := envconfig.Process("TEXT", &texts); err != nil {
		return TextOptions{}, fmt.Errorf("texts: %w", err)
	}
	return texts, nil
}

func DefaultTexts() TextOptions {
	return TextOptions{
		CommandExecutionFailed: "Sorry {0}, something went wrong: {1}",
		GroupsDeleted:          "{0} groups deleted.",
		GroupsCreated:          "{0} groups added.",
		UsersDistributed:       "{0} users were split into {1} groups.",
		GroupsBrokenUp:         "All groups were broken up.",
		NoHistory:              "No group command was run here yet.",
		Pong:                   "Pong",
	}
}

// Format fills the positional placeholders of a template.
func Format(template string, args ...any) string {
	pairs := make([]string, 0, 2*len(args))
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
