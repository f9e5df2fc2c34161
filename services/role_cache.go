package services

import "scouting-bot/domain"

// RoleCache remembers the roles resolved or created during one Distribute
// call, because role listings lag behind a create. It must not outlive that
// call nor be shared between goroutines.
type RoleCache struct {
	roles map[domain.GroupNumber]domain.Role
}

func NewRoleCache() *RoleCache {
	return &RoleCache{roles: make(map[domain.GroupNumber]domain.Role)}
}

func (c *RoleCache) Get(number domain.GroupNumber) (domain.Role, bool) {
	role, ok := c.roles[number]
	return role, ok
}

func (c *RoleCache) Put(number domain.GroupNumber, role domain.Role) {
	c.roles[number] = role
}

func (c *RoleCache) Len() int {
	return len(c.roles)
}
