package envstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/toysetup/internal/adapters/envstore"
)

func TestContainsSegment(t *testing.T) {
	list := `C:\Windows;C:\Tools\;;C:\msys64\mingw64\bin`

	assert.True(t, envstore.ContainsSegment(list, `c:\tools`, ";"))
	assert.True(t, envstore.ContainsSegment(list, `C:\MSYS64\MINGW64\BIN\`, ";"))
	assert.False(t, envstore.ContainsSegment(list, `C:\msys64`, ";"))
	assert.False(t, envstore.ContainsSegment("", `C:\msys64`, ";"))
}

func TestAppendSegment(t *testing.T) {
	assert.Equal(t, `C:\msys64\mingw64\bin`, envstore.AppendSegment("", `C:\msys64\mingw64\bin`, ";"))
	assert.Equal(t, `C:\Windows;C:\msys64\mingw64\bin`, envstore.AppendSegment(`C:\Windows;`, `C:\msys64\mingw64\bin`, ";"))

	once := envstore.AppendSegment(`C:\Windows`, `C:\msys64\mingw64\bin`, ";")
	twice := envstore.AppendSegment(once, `C:\msys64\mingw64\bin`, ";")
	assert.Equal(t, once, twice)
}
