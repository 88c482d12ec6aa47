package provision_test

import (
	"os"
	"testing"

	"go.trai.ch/toysetup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// quietLogger accepts any log call.
func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func envValue(t *testing.T, env []string, name string) string {
	t.Helper()
	prefix := name + "="
	for _, e := range env {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			return e[len(prefix):]
		}
	}
	return ""
}

func mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}
