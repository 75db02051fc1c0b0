package inmem

import (
	"testing"

	"github.com/bobinette/photopilot/project/testutil"
)

func TestMediaRepository(t *testing.T) {
	repo := NewMediaRepository()
	testutil.TestMediaRepository(t, repo)
}
