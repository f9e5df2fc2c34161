package domain

type ChannelID uint64

type ChannelKind int

const (
	ChannelCategory ChannelKind = iota
	ChannelText
	ChannelVoice
)

type Role struct {
	ID   RoleID
	Name string
}

type Channel struct {
	ID       ChannelID
	Name     string
	Kind     ChannelKind
	ParentID ChannelID
}

// Category is a category channel together with the channels nested under it.
type Category struct {
	Channel
	Children []Channel
}

type RoleParams struct {
	Name        string
	Color       int
	Hoist       bool
	Mentionable bool
}

type Permission int64

const (
	PermissionViewChannel Permission = 1 << 10
	PermissionConnect     Permission = 1 << 20
)

type OverwriteTarget int

const (
	OverwriteRole OverwriteTarget = iota
	OverwriteMember
)

type Overwrite struct {
	TargetID   uint64
	TargetKind OverwriteTarget
	Allow      Permission
	Deny       Permission
}

type ResourceKind int

const (
	ResourceChannel ResourceKind = iota
	ResourceRole
)

func (k ResourceKind) String() string {
	if k == ResourceRole {
		return "role"
	}
	return "channel"
}

// ResourceRef identifies something the platform can delete.
type ResourceRef struct {
	Kind ResourceKind
	ID   uint64
	Name string
}
