package workers

import (
	"testing"

	"go.uber.org/goleak"
)

// Every supervised goroutine has to be gone once its test returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
