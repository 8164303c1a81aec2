package core

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCaller_Self(t *testing.T) {
	caller, ok := ResolveCaller(0)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(caller, "core/caller_test.go:"), caller)
}

func TestResolveCaller_Offset(t *testing.T) {
	caller, ok := resolveFromHelper()
	require.True(t, ok)
	// offset 1 skips the helper and lands on this test function
	require.True(t, strings.HasPrefix(caller, "core/caller_test.go:"), caller)
	require.NotContains(t, caller, ":0")
}

func resolveFromHelper() (string, bool) {
	return ResolveCaller(1)
}

func TestResolveCaller_ShallowStack(t *testing.T) {
	caller, ok := ResolveCaller(1 << 20)
	require.False(t, ok)
	require.Empty(t, caller)

	caller, ok = ResolveCaller(-1)
	require.False(t, ok)
	require.Empty(t, caller)
}

func TestCallerFromPC(t *testing.T) {
	pc, _, _, ok := runtime.Caller(0)
	require.True(t, ok)

	caller, ok := CallerFromPC(pc)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(caller, "core/caller_test.go:"), caller)

	_, ok = CallerFromPC(0)
	require.False(t, ok)
}
