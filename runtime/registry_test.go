package runtime

import (
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"

	"scouting-bot/commands"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Open_BuildsOnce(t *testing.T) {
	req := require.New(t)
	var builds atomic.Int32
	registry := NewRegistry(func(uint64) (commands.Guild, error) {
		builds.Add(1)
		return commands.Guild{}, nil
	})

	// When the same guild is opened concurrently
	var wg sync.WaitGroup
	locks := make([]sync.Locker, 20)
	for i := range locks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guild, err := registry.Open(1)
			req.NoError(err)
			locks[i] = guild.Lock
		}()
	}
	wg.Wait()

	// Then it was built once and every caller shares its lock
	req.Equal(int32(1), builds.Load())
	req.Equal(1, registry.Len())
	for _, lock := range locks {
		req.NotNil(lock)
		req.Same(locks[0], lock)
	}
}

func TestRegistry_Open_GuildsAreIndependent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(func(uint64) (commands.Guild, error) {
		return commands.Guild{}, nil
	})

	first, err := registry.Open(1)
	req.NoError(err)
	second, err := registry.Open(2)
	req.NoError(err)

	req.NotSame(first.Lock, second.Lock)
	req.Equal(2, registry.Len())
}

func TestRegistry_Open_FailureIsNotCached(t *testing.T) {
	req := require.New(t)
	fail := true
	registry := NewRegistry(func(uint64) (commands.Guild, error) {
		if fail {
			return commands.Guild{}, stderrors.New("session isn't ready")
		}
		return commands.Guild{}, nil
	})

	// Given a guild whose first build fails
	_, err := registry.Open(1)
	req.Error(err)
	req.Equal(0, registry.Len())

	// When the session becomes ready
	fail = false
	_, err = registry.Open(1)

	// Then
	req.NoError(err)
	req.Equal(1, registry.Len())
}

func TestRegistry_Forget(t *testing.T) {
	req := require.New(t)
	var builds int
	registry := NewRegistry(func(uint64) (commands.Guild, error) {
		builds++
		return commands.Guild{}, nil
	})

	_, err := registry.Open(1)
	req.NoError(err)
	registry.Forget(1)
	req.Equal(0, registry.Len())

	_, err = registry.Open(1)
	req.NoError(err)
	req.Equal(2, builds)
}
