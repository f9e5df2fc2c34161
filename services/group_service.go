package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"scouting-bot/contract"
	"scouting-bot/domain"
	"scouting-bot/errors"
	"scouting-bot/exclusion"
	"scouting-bot/naming"
	"scouting-bot/partition"

	"github.com/samber/lo"
)

// Just some good looking colors from Chart.js
var roleColors = []int{
	0x4dc9f6, 0xf67019, 0xf53794, 0x537bc4, 0xacc236,
	0x166a8f, 0x00a950, 0x58595b, 0x8549ba, 0xff6384,
	0xff9f40, 0x4bc0c0, 0x36a2eb, 0x9966ff, 0xc9cbcf,
}

const groupAccess = domain.PermissionViewChannel | domain.PermissionConnect

var _ contract.IGroupService = (*GroupService)(nil)

// GroupService realizes groups on the platform of a single guild.
// It keeps no state between calls: the platform listings are the only truth.
type GroupService struct {
	log      *slog.Logger
	platform contract.IPlatform
	template naming.Template
}

func NewGroupService(log *slog.Logger, platform contract.IPlatform, template naming.Template) *GroupService {
	return &GroupService{log: log, platform: platform, template: template}
}

// Setup creates amount groups numbered from 1, whether or not they exist already.
// Roles are reused by name, categories and channels are always created.
func (s *GroupService) Setup(ctx context.Context, amount int) (int, error) {
	if amount < 1 {
		return 0, fmt.Errorf("%w: the amount of groups has to be at least 1, got %d", errors.ErrValidation, amount)
	}

	for i := 1; i <= amount; i++ {
		if _, err := s.create(ctx, domain.GroupNumber(i)); err != nil {
			return i - 1, err
		}
	}
	s.log.Info("Groups set up", "amount", amount)
	return amount, nil
}

// Distribute excludes, partitions and then assigns group roles. Everything
// that can be rejected is rejected before the first platform call. A failure
// after that leaves earlier assignments in place.
func (s *GroupService) Distribute(ctx context.Context, req domain.DistributeRequest) (domain.DistributeResult, error) {
	population, err := exclusion.Filter(req.Exclude, req.Members)
	if err != nil {
		return domain.DistributeResult{}, err
	}

	rng := req.Rand
	if rng == nil {
		if rng, err = partition.NewRand(); err != nil {
			return domain.DistributeResult{}, err
		}
	}

	assignment, err := partition.Partition(population, req.GroupSize, req.Overflow, rng)
	if err != nil {
		return domain.DistributeResult{}, err
	}

	cache := NewRoleCache()
	for _, number := range assignment.Numbers() {
		role, err := s.getOrCreate(ctx, number, req.CreateMissingGroups, cache)
		if err != nil {
			return domain.DistributeResult{}, err
		}
		for _, member := range assignment.Groups[number] {
			if err = s.platform.AddRoleToMember(ctx, member.ID, role.ID); err != nil {
				return domain.DistributeResult{}, failed(fmt.Sprintf("add role %s to %s", role.Name, member.DisplayName), err)
			}
		}
		s.log.Debug("Group filled", "group", role.Name, "members", len(assignment.Groups[number]))
	}

	s.log.Info("Members distributed",
		"members", len(population), "groups", assignment.GroupCount, "overflow", req.Overflow.String())
	return domain.DistributeResult{Groups: assignment.GroupCount, Members: len(population), Assignment: assignment.Groups}, nil
}

// BreakUp removes every group role from every member. Roles and channels stay.
// It returns the number of removals attempted.
func (s *GroupService) BreakUp(ctx context.Context) (int, error) {
	roles, err := s.groupRoles(ctx)
	if err != nil {
		return 0, err
	}
	groupRoleIDs := lo.SliceToMap(roles, func(r domain.Role) (domain.RoleID, string) {
		return r.ID, r.Name
	})

	members, err := s.platform.ListMembers(ctx)
	if err != nil {
		return 0, failed("list members", err)
	}

	attempts := 0
	for _, member := range members {
		// checking first avoids one request per role the member holds
		held := lo.Filter(lo.Keys(member.RoleIDs), func(id domain.RoleID, _ int) bool {
			_, ok := groupRoleIDs[id]
			return ok
		})
		slices.Sort(held)
		for _, roleID := range held {
			attempts++
			if err = s.platform.RemoveRoleFromMember(ctx, member.ID, roleID); err != nil {
				return attempts, failed(fmt.Sprintf("remove role %s from %s", groupRoleIDs[roleID], member.DisplayName), err)
			}
		}
	}

	s.log.Info("Groups broken up", "removals", attempts)
	return attempts, nil
}

// Teardown deletes every group resource: the channels of each group category,
// the category itself, then the group roles. A failing deletion doesn't stop
// the others. The count is the number of group roles actually deleted; the
// error joins every individual failure.
func (s *GroupService) Teardown(ctx context.Context) (int, error) {
	plan, err := s.deletionPlan(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	var errs []error
	for _, ref := range plan {
		if err = s.platform.DeleteResource(ctx, ref); err != nil {
			s.log.Warn("Deletion failed", "kind", ref.Kind.String(), "name", ref.Name, "error", err)
			errs = append(errs, failed(fmt.Sprintf("delete %s %s", ref.Kind, ref.Name), err))
			continue
		}
		if ref.Kind == domain.ResourceRole {
			deleted++
		}
	}

	s.log.Info("Groups torn down", "deleted", deleted, "failures", len(errs))
	return deleted, stderrors.Join(errs...)
}

// deletionPlan lists what Teardown deletes, children before their parent.
func (s *GroupService) deletionPlan(ctx context.Context) ([]domain.ResourceRef, error) {
	categories, err := s.platform.ListCategoryChannels(ctx)
	if err != nil {
		return nil, failed("list categories", err)
	}
	roles, err := s.groupRoles(ctx)
	if err != nil {
		return nil, err
	}

	matcher := s.template.Matcher()
	var plan []domain.ResourceRef
	for _, category := range categories {
		if !matcher.Match(category.Name) {
			continue
		}
		for _, child := range category.Children {
			plan = append(plan, channelRef(child))
		}
		plan = append(plan, channelRef(category.Channel))
	}
	for _, role := range roles {
		plan = append(plan, domain.ResourceRef{Kind: domain.ResourceRole, ID: uint64(role.ID), Name: role.Name})
	}
	return plan, nil
}

// getOrCreate resolves the role of a group from the cache, then from the
// role listing, and creates the whole group when allowed.
func (s *GroupService) getOrCreate(ctx context.Context, number domain.GroupNumber, createIfMissing bool, cache *RoleCache) (domain.Role, error) {
	// a group resolved once is never listed again, listings lag behind creates
	if role, ok := cache.Get(number); ok {
		return role, nil
	}

	name := s.template.Format(number)
	role, found, err := s.findRole(ctx, name)
	if err != nil {
		return domain.Role{}, err
	}
	if found {
		cache.Put(number, role)
		return role, nil
	}

	// this is a late failure, recoverable with a break up
	if !createIfMissing {
		return domain.Role{}, fmt.Errorf("%w: the guild doesn't appear to be set up for %s", errors.ErrNotSetUp, name)
	}

	group, err := s.build(ctx, s.template.Spec(number), domain.Role{}, false)
	if err != nil {
		return domain.Role{}, err
	}
	cache.Put(number, group.Role)
	return group.Role, nil
}

// create builds a group, reusing a role of the same name when there is one.
func (s *GroupService) create(ctx context.Context, number domain.GroupNumber) (domain.Group, error) {
	spec := s.template.Spec(number)
	role, found, err := s.findRole(ctx, spec.Name)
	if err != nil {
		return domain.Group{}, err
	}
	return s.build(ctx, spec, role, found)
}

// build creates the missing role, a category only the role can see and join,
// then one text and one voice channel inside the category.
func (s *GroupService) build(ctx context.Context, spec domain.GroupSpec, role domain.Role, found bool) (domain.Group, error) {
	number := spec.Number
	var err error
	if !found {
		role, err = s.platform.CreateRole(ctx, domain.RoleParams{
			Name:        spec.Name,
			Color:       roleColors[int(number-1)%len(roleColors)],
			Hoist:       true,
			Mentionable: false,
		})
		if err != nil {
			return domain.Group{}, failed("create role "+spec.Name, err)
		}
	}

	category, err := s.platform.CreateCategory(ctx, spec.Name)
	if err != nil {
		return domain.Group{}, failed("create category "+spec.Name, err)
	}

	// The bot needs access as well, otherwise it can't delete the category later on.
	overwrites := []domain.Overwrite{
		{TargetID: uint64(role.ID), TargetKind: domain.OverwriteRole, Allow: groupAccess},
		{TargetID: s.platform.SelfID(), TargetKind: domain.OverwriteMember, Allow: groupAccess},
		{TargetID: s.platform.EveryoneRoleID(), TargetKind: domain.OverwriteRole, Deny: groupAccess},
	}
	for _, overwrite := range overwrites {
		if err = s.platform.AddPermissionOverwrite(ctx, category.ID, overwrite); err != nil {
			return domain.Group{}, failed("set permissions of "+spec.Name, err)
		}
	}

	text, err := s.platform.CreateTextChannel(ctx, spec.Name, category.ID)
	if err != nil {
		return domain.Group{}, failed("create text channel "+spec.Name, err)
	}
	voice, err := s.platform.CreateVoiceChannel(ctx, spec.Name, category.ID)
	if err != nil {
		return domain.Group{}, failed("create voice channel "+spec.Name, err)
	}

	s.log.Debug("Group created", "group", spec.Name, "role_reused", found)
	return domain.Group{Spec: spec, Role: role, Category: category, Text: text, Voice: voice}, nil
}

func (s *GroupService) findRole(ctx context.Context, name string) (domain.Role, bool, error) {
	roles, err := s.platform.ListRoles(ctx)
	if err != nil {
		return domain.Role{}, false, failed("list roles", err)
	}
	role, found := lo.Find(roles, func(r domain.Role) bool {
		return strings.EqualFold(r.Name, name)
	})
	return role, found, nil
}

func (s *GroupService) groupRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.platform.ListRoles(ctx)
	if err != nil {
		return nil, failed("list roles", err)
	}
	matcher := s.template.Matcher()
	return lo.Filter(roles, func(r domain.Role, _ int) bool {
		return matcher.Match(r.Name)
	}), nil
}

func channelRef(c domain.Channel) domain.ResourceRef {
	return domain.ResourceRef{Kind: domain.ResourceChannel, ID: uint64(c.ID), Name: c.Name}
}

func failed(action string, err error) error {
	return fmt.Errorf("%w: %s: %w", errors.ErrOrchestrator, action, err)
}
