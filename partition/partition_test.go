package partition

import (
	"math/rand/v2"
	"testing"

	"scouting-bot/domain"
	"scouting-bot/errors"

	"github.com/stretchr/testify/require"
)

func members(n int) []domain.Member {
	out := make([]domain.Member, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.NewMember(domain.MemberID(i), "member"))
	}
	return out
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func placed(result Result) map[domain.MemberID]int {
	seen := make(map[domain.MemberID]int)
	for _, group := range result.Groups {
		for _, m := range group {
			seen[m.ID]++
		}
	}
	return seen
}

func TestPartition_EndToEnd_SevenByTwo(t *testing.T) {
	tests := []struct {
		name   string
		policy domain.OverflowPolicy
		sizes  []int
	}{
		{"spread", domain.Spread, []int{3, 2, 2}},
		{"new group", domain.NewGroup, []int{2, 2, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := Partition(members(7), 2, tt.policy, seeded(7))
			req.NoError(err)
			req.Equal(tt.sizes, result.Sizes())
			req.Equal(len(tt.sizes), result.GroupCount)
			req.Equal(7, result.MemberCount)
		})
	}
}

func TestPartition_Spread_MoreLeftoversThanGroups(t *testing.T) {
	tests := []struct {
		name      string
		members   int
		groupSize int
		sizes     []int
	}{
		{"one group takes everyone", 5, 3, []int{5}},
		{"two groups, three leftovers", 11, 4, []int{6, 5}},
		{"two groups, four leftovers", 14, 5, []int{7, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := Partition(members(tt.members), tt.groupSize, domain.Spread, seeded(5))
			req.NoError(err)
			req.Equal(tt.members/tt.groupSize, result.GroupCount)
			req.Equal(tt.sizes, result.Sizes())
			assertEveryMemberPlacedOnce(t, result, tt.members)
		})
	}
}

func TestPartition_ErrorPolicy_UnevenSplit(t *testing.T) {
	req := require.New(t)
	result, err := Partition(members(7), 2, domain.Error, seeded(1))
	req.ErrorIs(err, errors.ErrUnevenSplit)
	req.Empty(result.Groups)
}

func TestPartition_ErrorPolicy_EvenSplit(t *testing.T) {
	req := require.New(t)
	result, err := Partition(members(8), 2, domain.Error, seeded(1))
	req.NoError(err)
	req.Equal([]int{2, 2, 2, 2}, result.Sizes())
}

func TestPartition_Validation(t *testing.T) {
	tests := []struct {
		name      string
		members   int
		groupSize int
	}{
		{"zero group size", 5, 0},
		{"negative group size", 5, -2},
		{"empty population", 0, 1},
		{"group size above population", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Partition(members(tt.members), tt.groupSize, domain.NewGroup, seeded(1))
			require.ErrorIs(t, err, errors.ErrValidation)
		})
	}
}

func TestPartition_Properties(t *testing.T) {
	req := require.New(t)
	rng := seeded(42)

	for n := 1; n <= 40; n++ {
		for g := 1; g <= n; g++ {
			base, remainder := n/g, n%g

			// Spread
			spread, err := Partition(members(n), g, domain.Spread, rng)
			req.NoError(err)
			req.Equal(base, spread.GroupCount, "n=%d,g=%d", n, g)
			if remainder <= base {
				bigger := 0
				for _, size := range spread.Sizes() {
					req.Contains([]int{g, g + 1}, size, "n=%d,g=%d", n, g)
					if size == g+1 {
						bigger++
					}
				}
				req.Equal(remainder, bigger, "n=%d,g=%d", n, g)
			} else {
				// more leftovers than groups: they go round-robin, several per group
				ceil := (remainder + base - 1) / base
				for _, size := range spread.Sizes() {
					req.GreaterOrEqual(size, g, "n=%d,g=%d", n, g)
					req.LessOrEqual(size, g+ceil, "n=%d,g=%d", n, g)
				}
			}
			assertEveryMemberPlacedOnce(t, spread, n)

			// NewGroup
			newGroup, err := Partition(members(n), g, domain.NewGroup, rng)
			req.NoError(err)
			expected := base
			if remainder > 0 {
				expected++
			}
			req.Equal(expected, newGroup.GroupCount, "n=%d,g=%d", n, g)
			sizes := newGroup.Sizes()
			if remainder > 0 {
				req.Equal(remainder, sizes[len(sizes)-1])
			}
			assertEveryMemberPlacedOnce(t, newGroup, n)
		}
	}
}

func TestPartition_NumbersAreContiguous(t *testing.T) {
	req := require.New(t)
	result, err := Partition(members(10), 3, domain.NewGroup, seeded(3))
	req.NoError(err)
	req.Equal([]domain.GroupNumber{1, 2, 3, 4}, result.Numbers())
}

func TestPartition_DoesNotModifyInput(t *testing.T) {
	req := require.New(t)
	input := members(9)
	snapshot := members(9)

	_, err := Partition(input, 4, domain.Spread, seeded(5))
	req.NoError(err)
	req.Equal(snapshot, input)
}

// Every member should land in the first group roughly 1/3 of the time.
func TestPartition_DrawIsUniform(t *testing.T) {
	req := require.New(t)
	rng := seeded(99)
	const runs = 6000
	counts := make(map[domain.MemberID]int)

	for range runs {
		result, err := Partition(members(6), 2, domain.Error, rng)
		req.NoError(err)
		for _, m := range result.Groups[1] {
			counts[m.ID]++
		}
	}

	for id := domain.MemberID(1); id <= 6; id++ {
		req.InDelta(runs/3, counts[id], runs*0.05, "member=%d", id)
	}
}

func TestNewRand(t *testing.T) {
	req := require.New(t)
	rng, err := NewRand()
	req.NoError(err)

	result, err := Partition(members(5), 2, domain.NewGroup, rng)
	req.NoError(err)
	req.Equal(3, result.GroupCount)
}

func assertEveryMemberPlacedOnce(t *testing.T, result Result, n int) {
	t.Helper()
	seen := placed(result)
	require.Len(t, seen, n)
	total := 0
	for _, count := range seen {
		require.Equal(t, 1, count)
		total += count
	}
	require.Equal(t, n, total)
}
