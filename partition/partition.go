// Package partition splits a population into numbered groups.
// It performs no network calls and mutates nothing outside its own result.
package partition

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"

	"scouting-bot/domain"
	"scouting-bot/errors"

	"github.com/samber/lo"
)

type Result struct {
	Groups      map[domain.GroupNumber][]domain.Member
	GroupCount  int
	MemberCount int
}

// Numbers returns the group numbers in ascending order.
func (r Result) Numbers() []domain.GroupNumber {
	numbers := lo.Keys(r.Groups)
	slices.Sort(numbers)
	return numbers
}

// Sizes returns the group sizes ordered by group number.
func (r Result) Sizes() []int {
	return lo.Map(r.Numbers(), func(n domain.GroupNumber, _ int) int {
		return len(r.Groups[n])
	})
}

// NewRand returns a generator seeded from crypto/rand.
// One generator is meant to serve a single invocation.
func NewRand() (*rand.Rand, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	)), nil
}

// Partition draws groups of groupSize members uniformly at random and handles
// the remainder according to policy. The members slice is not modified.
func Partition(members []domain.Member, groupSize int, policy domain.OverflowPolicy, rng *rand.Rand) (Result, error) {
	n := len(members)
	switch {
	case groupSize < 1:
		return Result{}, fmt.Errorf("%w: the group size has to be at least 1, got %d", errors.ErrValidation, groupSize)
	case n == 0:
		return Result{}, fmt.Errorf("%w: there are no users left to put into groups", errors.ErrValidation)
	case groupSize > n:
		return Result{}, fmt.Errorf("%w: the group size %d can't be higher than the number of users to group (%d)",
			errors.ErrValidation, groupSize, n)
	}

	baseCount := n / groupSize
	remainder := n % groupSize
	if policy == domain.Error && remainder > 0 {
		return Result{}, fmt.Errorf("%w: %d users can't be split evenly into groups of %d",
			errors.ErrUnevenSplit, n, groupSize)
	}

	pool := slices.Clone(members)
	groups := make(map[domain.GroupNumber][]domain.Member, baseCount+1)
	for g := 1; g <= baseCount; g++ {
		group := make([]domain.Member, 0, groupSize+1)
		for range groupSize {
			var m domain.Member
			pool, m = draw(pool, rng)
			group = append(group, m)
		}
		groups[domain.GroupNumber(g)] = group
	}

	if remainder > 0 {
		switch policy {
		case domain.Spread:
			// with more leftovers than groups, some groups get several extra members
			for i, m := range pool {
				number := domain.GroupNumber(i%baseCount + 1)
				groups[number] = append(groups[number], m)
			}
		case domain.NewGroup:
			groups[domain.GroupNumber(baseCount+1)] = pool
		default:
			return Result{}, fmt.Errorf("%w: unsupported overflow handling %s", errors.ErrValidation, policy)
		}
	}

	return Result{Groups: groups, GroupCount: len(groups), MemberCount: n}, nil
}

// draw removes a uniformly chosen member from the pool.
func draw(pool []domain.Member, rng *rand.Rand) ([]domain.Member, domain.Member) {
	i := rng.IntN(len(pool))
	m := pool[i]
	last := len(pool) - 1
	pool[i] = pool[last]
	return pool[:last], m
}
