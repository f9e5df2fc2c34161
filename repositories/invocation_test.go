package repositories

import (
	"log/slog"
	"testing"
	"time"

	"scouting-bot/domain"
	"scouting-bot/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Record_Multiple_Invocations(t *testing.T) {
	req := require.New(t)
	repository := NewInvocationRepository(openDB(t), slog.Default())
	guild := uint64(4242)
	at := time.Now().UTC().Truncate(time.Microsecond)

	invocations := []domain.Invocation{
		{ID: uuid.New(), GuildID: guild, UserID: 1, Command: "setup", Outcome: domain.OutcomeSucceeded, Groups: 4, At: at},
		{ID: uuid.New(), GuildID: guild, UserID: 2, Command: "distribute", Outcome: domain.OutcomeSucceeded, Groups: 4, Members: 7, At: at.Add(time.Minute)},
		{ID: uuid.New(), GuildID: guild, UserID: 1, Command: "teardown", Outcome: domain.OutcomeFailed, Detail: "boom", Groups: 3, At: at.Add(2 * time.Minute)},
		// another guild is never returned
		{ID: uuid.New(), GuildID: 7, UserID: 1, Command: "breakup", Outcome: domain.OutcomeSucceeded, At: at},
	}
	for _, invocation := range invocations {
		req.NoError(repository.StoreInvocation(invocation))
	}

	fetched, err := repository.GetInvocations(guild, 0)
	req.NoError(err)
	req.Equal([]domain.Invocation{invocations[2], invocations[1], invocations[0]}, fetched)
}

func Test_Record_Multiple_Invocations_And_Limit(t *testing.T) {
	req := require.New(t)
	repository := NewInvocationRepository(openDB(t), slog.Default())
	at := time.Now().UTC()

	for i := range 5 {
		req.NoError(repository.StoreInvocation(domain.Invocation{
			GuildID: 1, Command: "breakup", Outcome: domain.OutcomeSucceeded, At: at.Add(time.Duration(i) * time.Second),
		}))
	}

	fetched, err := repository.GetInvocations(1, 2)
	req.NoError(err)
	req.Len(fetched, 2)
	req.True(fetched[0].At.After(fetched[1].At))
	req.NotEqual(uuid.Nil, fetched[0].ID)
}

func Test_No_Invocation(t *testing.T) {
	req := require.New(t)
	repository := NewInvocationRepository(openDB(t), slog.Default())

	_, err := repository.GetInvocations(1, 10)
	req.ErrorIs(err, errors.ErrInvocationNotFound)
}
