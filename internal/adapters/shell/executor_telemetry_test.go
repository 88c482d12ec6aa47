package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/toysetup/internal/adapters/shell"
	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/toysetup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Run_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	mockVertex := mocks.NewMockVertex(ctrl)

	var stdoutBuf bytes.Buffer
	var stderrBuf bytes.Buffer
	mockVertex.EXPECT().Stdout().Return(&stdoutBuf).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)
	_, err := executor.Run(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello to stdout; echo hello to stderr >&2"},
	})
	require.NoError(t, err)

	require.Contains(t, stdoutBuf.String(), "hello to stdout")
	require.Contains(t, stderrBuf.String(), "hello to stderr")
}
