package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toysetup/cmd/toysetup/commands"
	"go.trai.ch/toysetup/internal/app"
	"go.trai.ch/toysetup/internal/build"
)

type mockApp struct {
	provisionFunc func(ctx context.Context, opts app.ProvisionOptions) error
	checkFunc     func(ctx context.Context, opts app.Options) error
}

func (m *mockApp) Provision(ctx context.Context, opts app.ProvisionOptions) error {
	if m.provisionFunc != nil {
		return m.provisionFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, opts app.Options) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Provision(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ProvisionOptions
		called := false

		mock := &mockApp{
			provisionFunc: func(_ context.Context, opts app.ProvisionOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"provision", "-y", "--root", "/src/toy", "-c", "ci.yaml", "-v"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.ProvisionOptions{
			Yes: true,
			Options: app.Options{
				Root:       "/src/toy",
				ConfigPath: "ci.yaml",
				Verbose:    true,
			},
		}, captured)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.ProvisionOptions
		mock := &mockApp{
			provisionFunc: func(_ context.Context, opts app.ProvisionOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"provision"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, captured.Yes)
		assert.Equal(t, ".", captured.Root)
		assert.Equal(t, "toysetup.yaml", captured.ConfigPath)
	})

	t.Run("returns error on provision failure", func(t *testing.T) {
		mock := &mockApp{
			provisionFunc: func(_ context.Context, _ app.ProvisionOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"provision", "--yes"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{
			provisionFunc: func(_ context.Context, _ app.ProvisionOptions) error {
				panic("should not be called")
			},
		})
		cli.SetArgs([]string{"provision", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Check(t *testing.T) {
	var captured app.Options
	mock := &mockApp{
		checkFunc: func(_ context.Context, opts app.Options) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"check", "--root", "/src/toy"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/src/toy", captured.Root)
	assert.False(t, captured.Verbose)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "toysetup version "+build.Version)
}

func TestCommands_VerboseShorthand(t *testing.T) {
	var captured app.Options
	mock := &mockApp{
		checkFunc: func(_ context.Context, opts app.Options) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"-v", "check"})

	require.NotPanics(t, func() {
		require.NoError(t, cli.Execute(context.Background()))
	})
	assert.True(t, captured.Verbose)
}
