//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"scouting-bot/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging during supervision, avoiding the need for
// manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IPlatform is the guild-scoped client of the collaboration platform.
// Implementations retry rate-limited calls on their own; any error they
// return is a real failure. Calls are at-least-once, so a create may
// duplicate its effect under retry.
type IPlatform interface {
	// SelfID is the identity the bot acts as.
	SelfID() uint64
	// EveryoneRoleID is the default role every member holds.
	EveryoneRoleID() uint64

	ListRoles(ctx context.Context) ([]domain.Role, error)
	ListCategoryChannels(ctx context.Context) ([]domain.Category, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)

	CreateRole(ctx context.Context, params domain.RoleParams) (domain.Role, error)
	CreateCategory(ctx context.Context, name string) (domain.Channel, error)
	CreateTextChannel(ctx context.Context, name string, parent domain.ChannelID) (domain.Channel, error)
	CreateVoiceChannel(ctx context.Context, name string, parent domain.ChannelID) (domain.Channel, error)
	AddPermissionOverwrite(ctx context.Context, channel domain.ChannelID, overwrite domain.Overwrite) error

	AddRoleToMember(ctx context.Context, member domain.MemberID, role domain.RoleID) error
	RemoveRoleFromMember(ctx context.Context, member domain.MemberID, role domain.RoleID) error
	DeleteResource(ctx context.Context, ref domain.ResourceRef) error
}

// IGroupService realizes and removes groups in one guild.
type IGroupService interface {
	Setup(ctx context.Context, amount int) (int, error)
	Distribute(ctx context.Context, req domain.DistributeRequest) (domain.DistributeResult, error)
	BreakUp(ctx context.Context) (int, error)
	Teardown(ctx context.Context) (int, error)
}

// IPopulation finds the members a distribution applies to.
type IPopulation interface {
	// VoiceChannelMembers returns everyone connected to the voice channel of
	// the given user. The boolean is false when the user isn't connected.
	VoiceChannelMembers(ctx context.Context, userID uint64) ([]domain.Member, bool, error)
}
