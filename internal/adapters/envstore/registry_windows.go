//go:build windows

package envstore

import (
	"context"
	"errors"
	"unsafe"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	hwndBroadcast      = 0xFFFF
	wmSettingChange    = 0x001A
	smtoAbortIfHung    = 0x0002
	broadcastTimeoutMs = 5000
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

// Registry persists user environment variables under HKCU\Environment.
type Registry struct {
	logger ports.Logger
}

func newRegistry(logger ports.Logger) ports.EnvironmentStore {
	return &Registry{logger: logger}
}

// Persist writes m to HKCU\Environment and tells running programs about it.
// PATH-like values are appended only when no existing segment matches.
func (r *Registry) Persist(ctx context.Context, m domain.EnvMutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k, err := registry.OpenKey(registry.CURRENT_USER, `Environment`, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return zerr.Wrap(err, `failed to open HKCU\Environment`)
	}
	defer k.Close() //nolint:errcheck // nothing to recover

	current, valType, err := k.GetStringValue(m.Name)
	switch {
	case errors.Is(err, registry.ErrNotExist):
		current = ""
		valType = registry.SZ
		if m.PathLike {
			valType = registry.EXPAND_SZ
		}
	case err != nil:
		return zerr.With(zerr.Wrap(err, "failed to read environment variable"), "variable", m.Name)
	}

	value := m.Value
	if m.PathLike {
		if ContainsSegment(current, m.Value, ";") {
			r.logger.Debug(m.Name + " already contains " + m.Value)
			return nil
		}
		value = AppendSegment(current, m.Value, ";")
	} else if current == m.Value {
		return nil
	}

	if valType == registry.EXPAND_SZ {
		err = k.SetExpandStringValue(m.Name, value)
	} else {
		err = k.SetStringValue(m.Name, value)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write environment variable"), "variable", m.Name)
	}
	r.logger.Info(`set ` + m.Name + ` in HKCU\Environment`)

	if err := broadcastEnvironmentChange(); err != nil {
		r.logger.Warn("other programs will see " + m.Name + " after the next sign-in: " + err.Error())
	}
	return nil
}

func broadcastEnvironmentChange() error {
	param, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return err
	}
	var result uintptr
	ret, _, callErr := procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(param)),
		smtoAbortIfHung,
		broadcastTimeoutMs,
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		return zerr.Wrap(callErr, "WM_SETTINGCHANGE broadcast failed")
	}
	return nil
}
