package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"scouting-bot/contract"
	"scouting-bot/domain"
	"scouting-bot/errors"
	"scouting-bot/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Message is an incoming chat message, already resolved to a guild.
type Message struct {
	GuildID    uint64
	AuthorID   uint64
	AuthorName string
	// BotID lets the bot be addressed by a mention instead of the prefix.
	BotID   uint64
	Content string
}

// Guild holds what a command needs to act on one guild.
type Guild struct {
	Groups     contract.IGroupService
	Population contract.IPopulation
	// Lock, when set, serializes the commands changing the guild.
	Lock sync.Locker
}

type GuildOpener func(guildID uint64) (Guild, error)

// Result is what a handler reports back, both for the reply and the journal.
type Result struct {
	Reply   string
	Groups  int
	Members int
	Detail  string
}

type call struct {
	Message
	guild Guild
	args  Args
}

type handler func(ctx context.Context, c call) (Result, error)

// A mutating command is journaled and runs alone in its guild.
type command struct {
	handle   handler
	mutating bool
}

type Config struct {
	Prefix  string
	Timeout time.Duration
}

// Dispatcher turns chat messages into group operations.
// Commands are registered once at construction time.
type Dispatcher struct {
	log      *slog.Logger
	config   Config
	texts    TextOptions
	open     GuildOpener
	journal  repositories.IInvocationRepository
	validate *validator.Validate
	commands map[string]command
}

func NewDispatcher(
	log *slog.Logger,
	config Config,
	texts TextOptions,
	open GuildOpener,
	journal repositories.IInvocationRepository,
) *Dispatcher {
	d := &Dispatcher{
		log:      log,
		config:   config,
		texts:    texts,
		open:     open,
		journal:  journal,
		validate: validator.New(),
	}
	d.commands = map[string]command{
		"setup":      {handle: d.setup, mutating: true},
		"distribute": {handle: d.distribute, mutating: true},
		"breakup":    {handle: d.breakUp, mutating: true},
		"teardown":   {handle: d.teardown, mutating: true},
		"ping":       {handle: d.ping},
		"history":    {handle: d.history},
	}
	return d
}

// Handle runs the command carried by msg. The boolean is false when the
// message isn't a known command, in which case nothing should be sent back.
func (d *Dispatcher) Handle(ctx context.Context, msg Message) (string, bool) {
	name, args, ok := d.parse(msg)
	if !ok {
		return "", false
	}
	cmd, ok := d.commands[name]
	if !ok {
		d.log.Debug("Unknown command", "command", name, "user", msg.AuthorName, "error", errors.ErrUnknownCommand)
		return "", false
	}

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := d.execute(ctx, cmd, call{Message: msg, args: args})
	if cmd.mutating {
		d.record(msg, name, result, err)
	}
	if err != nil {
		d.log.Warn("Command failed", "command", name, "user", msg.AuthorName, "error", err)
		return Format(d.texts.CommandExecutionFailed, msg.AuthorName, err.Error()), true
	}
	d.log.Info("Command executed", "command", name, "user", msg.AuthorName, "duration", time.Since(start))
	return result.Reply, true
}

func (d *Dispatcher) execute(ctx context.Context, cmd command, c call) (Result, error) {
	guild, err := d.open(c.GuildID)
	if err != nil {
		return Result{}, err
	}
	if cmd.mutating && guild.Lock != nil {
		guild.Lock.Lock()
		defer guild.Lock.Unlock()
		// the deadline may have passed while another command held the guild
		if err = ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%w: waited too long for the previous command in this server", errors.ErrCommandTimeout)
		}
	}
	c.guild = guild
	return cmd.handle(ctx, c)
}

// parse strips the prefix or the bot mention and splits the rest into a
// lower cased command name and its arguments.
func (d *Dispatcher) parse(msg Message) (string, Args, bool) {
	content, ok := d.strip(strings.TrimSpace(msg.Content), msg.BotID)
	if !ok {
		return "", Args{}, false
	}
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "", Args{}, false
	}
	return strings.ToLower(fields[0]), parseArgs(fields[1:]), true
}

func (d *Dispatcher) strip(content string, botID uint64) (string, bool) {
	if d.config.Prefix != "" {
		if rest, ok := strings.CutPrefix(content, d.config.Prefix); ok {
			return rest, true
		}
	}
	if botID == 0 {
		return "", false
	}
	id := strconv.FormatUint(botID, 10)
	for _, mention := range []string{"<@" + id + ">", "<@!" + id + ">"} {
		if rest, ok := strings.CutPrefix(content, mention); ok {
			return rest, true
		}
	}
	return "", false
}

func (d *Dispatcher) setup(ctx context.Context, c call) (Result, error) {
	args, err := parseSetupArgs(c.args)
	if err != nil {
		return Result{}, err
	}
	if err = validateArgs(d.validate, args); err != nil {
		return Result{}, err
	}

	created, err := c.guild.Groups.Setup(ctx, args.Amount)
	if err != nil {
		return Result{Groups: created}, err
	}
	return Result{Reply: Format(d.texts.GroupsCreated, created), Groups: created}, nil
}

func (d *Dispatcher) distribute(ctx context.Context, c call) (Result, error) {
	args, err := parseDistributeArgs(c.args)
	if err != nil {
		return Result{}, err
	}
	if err = validateArgs(d.validate, args); err != nil {
		return Result{}, err
	}
	policy, err := domain.ParseOverflowPolicy(args.Overflow)
	if err != nil {
		return Result{}, err
	}

	members, connected, err := c.guild.Population.VoiceChannelMembers(ctx, c.AuthorID)
	if err != nil {
		return Result{}, err
	}
	if !connected {
		return Result{}, errors.ErrNotInVoiceChannel
	}

	distributed, err := c.guild.Groups.Distribute(ctx, domain.DistributeRequest{
		GroupSize:           args.GroupSize,
		Members:             members,
		Exclude:             args.Exclude,
		Overflow:            policy,
		CreateMissingGroups: args.CreateMissingGroups,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Reply:   Format(d.texts.UsersDistributed, distributed.Members, distributed.Groups),
		Groups:  distributed.Groups,
		Members: distributed.Members,
		Detail:  fmt.Sprintf("overflow %s, sizes %v", policy, groupSizes(distributed.Assignment)),
	}, nil
}

// groupSizes lists the size of each group by ascending group number.
func groupSizes(assignment map[domain.GroupNumber][]domain.Member) []int {
	numbers := lo.Keys(assignment)
	slices.Sort(numbers)
	return lo.Map(numbers, func(n domain.GroupNumber, _ int) int {
		return len(assignment[n])
	})
}

func (d *Dispatcher) breakUp(ctx context.Context, c call) (Result, error) {
	removals, err := c.guild.Groups.BreakUp(ctx)
	result := Result{Detail: fmt.Sprintf("%d role removals", removals)}
	if err != nil {
		return result, err
	}
	result.Reply = d.texts.GroupsBrokenUp
	return result, nil
}

func (d *Dispatcher) teardown(ctx context.Context, c call) (Result, error) {
	deleted, err := c.guild.Groups.Teardown(ctx)
	result := Result{Groups: deleted, Detail: fmt.Sprintf("%d groups deleted", deleted)}
	if err != nil {
		return result, err
	}
	result.Reply = Format(d.texts.GroupsDeleted, deleted)
	return result, nil
}

func (d *Dispatcher) ping(_ context.Context, _ call) (Result, error) {
	return Result{Reply: d.texts.Pong}, nil
}

func (d *Dispatcher) history(_ context.Context, c call) (Result, error) {
	args, err := parseHistoryArgs(c.args)
	if err != nil {
		return Result{}, err
	}
	if err = validateArgs(d.validate, args); err != nil {
		return Result{}, err
	}
	if d.journal == nil {
		return Result{Reply: d.texts.NoHistory}, nil
	}

	invocations, err := d.journal.GetInvocations(c.GuildID, args.Limit)
	switch {
	case stderrors.Is(err, errors.ErrInvocationNotFound):
		return Result{Reply: d.texts.NoHistory}, nil
	case err != nil:
		return Result{}, err
	}
	return Result{Reply: RenderHistory(invocations)}, nil
}

// record journals an execution. A journal failure never fails the command.
func (d *Dispatcher) record(msg Message, name string, result Result, err error) {
	if d.journal == nil {
		return
	}
	invocation := domain.Invocation{
		ID:      uuid.New(),
		GuildID: msg.GuildID,
		UserID:  msg.AuthorID,
		Command: name,
		Outcome: domain.OutcomeSucceeded,
		Detail:  result.Detail,
		Groups:  result.Groups,
		Members: result.Members,
		At:      time.Now().UTC(),
	}
	if err != nil {
		invocation.Outcome = domain.OutcomeFailed
		invocation.Detail = strings.Join(lo.Compact([]string{result.Detail, err.Error()}), ": ")
	}
	if storeErr := d.journal.StoreInvocation(invocation); storeErr != nil {
		d.log.Warn("Unable to journal invocation", "command", name, "error", storeErr)
	}
}
