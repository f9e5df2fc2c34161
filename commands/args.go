package commands

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"scouting-bot/domain"
	"scouting-bot/errors"

	"github.com/go-playground/validator/v10"
)

// Args are the words following a command name. Named arguments are written
// name=value or name:value, values may be separated by commas.
type Args struct {
	Positional []string
	Named      map[string][]string
}

func parseArgs(fields []string) Args {
	args := Args{Named: make(map[string][]string)}
	for _, field := range fields {
		key, value, ok := cutNamed(field)
		if !ok {
			args.Positional = append(args.Positional, field)
			continue
		}
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				args.Named[key] = append(args.Named[key], v)
			}
		}
	}
	return args
}

// cutNamed only accepts letter keys, so mentions stay positional.
func cutNamed(field string) (string, string, bool) {
	i := strings.IndexAny(field, "=:")
	if i <= 0 {
		return "", "", false
	}
	key := field[:i]
	for _, r := range key {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '-' && r != '_' {
			return "", "", false
		}
	}
	return normalize(key), field[i+1:], true
}

func normalize(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
}

func (a Args) last(name string) (string, bool) {
	values := a.Named[name]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

type setupArgs struct {
	Amount int `validate:"min=1"`
}

type distributeArgs struct {
	GroupSize           int      `validate:"min=1"`
	Exclude             []string `validate:"dive,required"`
	Overflow            string   `validate:"oneof=newgroup spread error"`
	CreateMissingGroups bool
}

type historyArgs struct {
	Limit int `validate:"min=1,max=25"`
}

const defaultHistoryLimit = 10

func intArg(args Args, index int, name string) (int, error) {
	if len(args.Positional) <= index {
		return 0, fmt.Errorf("%w: missing %s", errors.ErrValidation, name)
	}
	n, err := strconv.Atoi(args.Positional[index])
	if err != nil {
		return 0, fmt.Errorf("%w: %s has to be a number, got %q", errors.ErrValidation, name, args.Positional[index])
	}
	return n, nil
}

func parseSetupArgs(args Args) (setupArgs, error) {
	amount, err := intArg(args, 0, "amount")
	if err != nil {
		return setupArgs{}, err
	}
	return setupArgs{Amount: amount}, nil
}

// parseDistributeArgs reads "<groupSize> [mentions…] [exclude=…] [overflow=…] [createmissing=…]".
// Mentions written after the group size are excluded as well.
func parseDistributeArgs(args Args) (distributeArgs, error) {
	size, err := intArg(args, 0, "group size")
	if err != nil {
		return distributeArgs{}, err
	}

	parsed := distributeArgs{
		GroupSize:           size,
		Exclude:             slices.Concat(args.Positional[1:], args.Named["exclude"]),
		Overflow:            domain.NewGroup.String(),
		CreateMissingGroups: true,
	}
	for _, key := range []string{"overflow", "overflowhandling"} {
		if v, ok := args.last(key); ok {
			parsed.Overflow = normalize(v)
		}
	}
	for _, key := range []string{"createmissing", "createmissinggroups"} {
		v, ok := args.last(key)
		if !ok {
			continue
		}
		if parsed.CreateMissingGroups, err = strconv.ParseBool(v); err != nil {
			return distributeArgs{}, fmt.Errorf("%w: %s has to be true or false, got %q", errors.ErrValidation, key, v)
		}
	}
	return parsed, nil
}

func parseHistoryArgs(args Args) (historyArgs, error) {
	if len(args.Positional) == 0 {
		return historyArgs{Limit: defaultHistoryLimit}, nil
	}
	limit, err := intArg(args, 0, "limit")
	if err != nil {
		return historyArgs{}, err
	}
	return historyArgs{Limit: limit}, nil
}

func validateArgs(validate *validator.Validate, args any) error {
	err := validate.Struct(args)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	fe := fieldErrors[0]
	if fe.Param() == "" {
		return fmt.Errorf("%w: %s is %s", errors.ErrValidation, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %s has to satisfy %s=%s, got %v", errors.ErrValidation,
		strings.ToLower(fe.Field()), fe.Tag(), fe.Param(), fe.Value())
}
