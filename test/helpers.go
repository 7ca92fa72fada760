package test

import (
	"testing"

	"go.uber.org/mock/gomock"
	"gramkeeper/dal"
	"gramkeeper/shared"
	"gramkeeper/test/mocks"
)

func strSliceMatch(items []string) func(x any) bool {
	res := func(x any) bool {
		slice, ok := x.([]string)
		if !ok {
			return false
		}
		if len(slice) != len(items) {
			return false
		}
		for i := 0; i < len(slice); i++ {
			if slice[i] != items[i] {
				return false
			}
		}
		return true
	}
	return res
}

// newTestRepo opens a real sqlite store in a per-test temp dir. The scenario
// tests run against this rather than a mocked repo: the transactional
// guarantees are the thing under test.
func newTestRepo(t *testing.T, ctrl *gomock.Controller) dal.IRepo {

	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)

	cfg := &shared.Config{
		DbDir: t.TempDir(),
		Owner: "test_owner",
	}
	repo := dal.NewRepo(cfg, mockLogger)
	repo.InitUpdateDb()
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}
