//go:generate go run go.uber.org/mock/mockgen -source=invocation.go -destination=../mocks/mock_invocation_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"scouting-bot/domain"
	"scouting-bot/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IInvocationRepository interface {
	StoreInvocation(invocation domain.Invocation) error
	GetInvocations(guildID uint64, limit int) ([]domain.Invocation, error)
}

// InvocationRepository journals command executions in BadgerDB.
// Nothing reads it back to decide about groups.
type InvocationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewInvocationRepository(db *badger.DB, log *slog.Logger) InvocationRepository {
	return InvocationRepository{db: db, log: log}
}

type diskInvocation struct {
	ID      string `json:"id"`
	GuildID uint64 `json:"guild_id"`
	UserID  uint64 `json:"user_id"`
	Command string `json:"command"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`
	Groups  int    `json:"groups"`
	Members int    `json:"members"`
	At      int64  `json:"at"`
}

// StoreInvocation persists an invocation under "inv:{guild}:{timestamp_padded}:{uuid}"
// so that a prefix scan returns a guild's history in chronological order.
func (r InvocationRepository) StoreInvocation(invocation domain.Invocation) error {
	if invocation.ID == uuid.Nil {
		invocation.ID = uuid.New()
	}
	key := fmt.Sprintf("inv:%d:%019d:%s", invocation.GuildID, invocation.At.UnixNano(), invocation.ID)
	bytes, err := json.Marshal(fromInvocation(invocation))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetInvocations returns the latest invocations of a guild, newest first.
func (r InvocationRepository) GetInvocations(guildID uint64, limit int) ([]domain.Invocation, error) {
	var invocations []domain.Invocation
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("inv:%d:", guildID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration has to start past the last possible key of the prefix
		seekKey := append(prefix, []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(invocations) == limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d invocations reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var disk diskInvocation
				if err := json.Unmarshal(value, &disk); err != nil {
					return err
				}
				invocation, err := toInvocation(disk)
				if err != nil {
					return err
				}
				invocations = append(invocations, invocation)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(invocations) == 0 {
		return nil, errors.ErrInvocationNotFound
	}
	return invocations, nil
}

func fromInvocation(i domain.Invocation) diskInvocation {
	return diskInvocation{
		ID:      i.ID.String(),
		GuildID: i.GuildID,
		UserID:  i.UserID,
		Command: i.Command,
		Outcome: string(i.Outcome),
		Detail:  i.Detail,
		Groups:  i.Groups,
		Members: i.Members,
		At:      i.At.UnixNano(),
	}
}

func toInvocation(d diskInvocation) (domain.Invocation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Invocation{}, err
	}
	return domain.Invocation{
		ID:      id,
		GuildID: d.GuildID,
		UserID:  d.UserID,
		Command: d.Command,
		Outcome: domain.Outcome(d.Outcome),
		Detail:  d.Detail,
		Groups:  d.Groups,
		Members: d.Members,
		At:      time.Unix(0, d.At).UTC(),
	}, nil
}
