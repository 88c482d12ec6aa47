package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toysetup/internal/adapters/shell"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Run_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("running sh -c echo line1; echo line2").Times(1)
	mockLogger.EXPECT().Debug("line1").Times(1)
	mockLogger.EXPECT().Debug("line2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	res, err := executor.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Empty(t, res.Output)
}

func TestExecutor_Run_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).Times(1) // command line
	mockLogger.EXPECT().Debug("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf part1; sleep 0.1; echo part2"},
	})
	require.NoError(t, err)
}

func TestExecutor_Run_UnterminatedLineIsFlushed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).Times(1)
	mockLogger.EXPECT().Debug("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf 'no newline'"},
	})
	require.NoError(t, err)
}

func TestExecutor_Run_UsesCommandEnvironmentOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	t.Setenv("TOYSETUP_PARENT_ONLY", "leaked")

	executor := shell.NewExecutor(mockLogger)
	res, err := executor.Run(context.Background(), domain.Command{
		Name:    "sh",
		Args:    []string{"-c", `echo "${TOY_VALUE}|${TOYSETUP_PARENT_ONLY}"`},
		Env:     []string{"PATH=" + os.Getenv("PATH"), "TOY_VALUE=test-value-123"},
		Capture: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "test-value-123|\n", res.Output)
}

func TestExecutor_Run_ResolvesAgainstCommandPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	binDir := t.TempDir()
	script := filepath.Join(binDir, "toy-tool")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho from-toy-tool\n"), 0o755))

	executor := shell.NewExecutor(mockLogger)
	res, err := executor.Run(context.Background(), domain.Command{
		Name:    "toy-tool",
		Env:     []string{"PATH=" + binDir + string(os.PathListSeparator) + os.Getenv("PATH")},
		Capture: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "from-toy-tool\n", res.Output)
}

func TestExecutor_Run_NonZeroExitIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)
	res, err := executor.Run(context.Background(), domain.Command{
		Name:    "sh",
		Args:    []string{"-c", "echo boom >&2; exit 42"},
		Capture: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, res.ExitCode)
	assert.Equal(t, "boom\n", res.Output)
}

func TestExecutor_Run_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)
	_, err := executor.Run(context.Background(), domain.Command{
		Name: "definitely-not-a-real-toy-binary",
		Env:  []string{"PATH=" + t.TempDir()},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start command")
}

func TestExecutor_Run_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := shell.NewExecutor(mockLogger)
	_, err := executor.Run(ctx, domain.Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))
	_, err := executor.Run(context.Background(), domain.Command{})
	require.Error(t, err)
}
