//go:build tools
// +build tools

// Package tools tracks the code generators run by `go generate` (mockgen for
// the contract and repository mocks) so go.mod pins their version.
package scouting_bot

import (
	_ "go.uber.org/mock/mockgen"
)
