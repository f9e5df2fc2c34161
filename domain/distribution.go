package domain

import "math/rand/v2"

type DistributeRequest struct {
	GroupSize           int
	Members             []Member
	Exclude             []string
	Overflow            OverflowPolicy
	CreateMissingGroups bool
	// Rand drives the draw. A fresh generator is seeded when nil.
	Rand *rand.Rand
}

type DistributeResult struct {
	Groups int
	// Members counts the population after exclusion, before partition.
	Members    int
	Assignment map[GroupNumber][]Member
}
