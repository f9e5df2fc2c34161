package runtime

import (
	"sync"

	"scouting-bot/commands"
)

type GuildFactory func(guildID uint64) (commands.Guild, error)

// Registry keeps one Guild per guild id, built on first use. Every Guild it
// hands out carries the same lock for the same guild, so that two commands
// changing a guild never interleave.
type Registry struct {
	mu     sync.RWMutex
	guilds map[uint64]commands.Guild
	build  GuildFactory
}

func NewRegistry(build GuildFactory) *Registry {
	return &Registry{guilds: make(map[uint64]commands.Guild), build: build}
}

// Open returns the Guild of guildID. A failed build isn't cached.
func (r *Registry) Open(guildID uint64) (commands.Guild, error) {
	r.mu.RLock()
	guild, ok := r.guilds[guildID]
	r.mu.RUnlock()
	if ok {
		return guild, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// another caller may have built it meanwhile
	if guild, ok = r.guilds[guildID]; ok {
		return guild, nil
	}
	guild, err := r.build(guildID)
	if err != nil {
		return commands.Guild{}, err
	}
	if guild.Lock == nil {
		guild.Lock = &sync.Mutex{}
	}
	r.guilds[guildID] = guild
	return guild, nil
}

// Forget drops a guild the bot was removed from.
func (r *Registry) Forget(guildID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.guilds, guildID)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.guilds)
}
