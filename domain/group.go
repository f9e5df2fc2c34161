package domain

// GroupNumber is 1-based and contiguous within one invocation.
type GroupNumber int

type GroupSpec struct {
	Number GroupNumber
	Name   string
}

// Group holds the platform handles of a realized group.
type Group struct {
	Spec     GroupSpec
	Role     Role
	Category Channel
	Text     Channel
	Voice    Channel
}
