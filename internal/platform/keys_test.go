package platform

import (
	"slices"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyName_ModifierSidesAreDistinct(t *testing.T) {
	tests := []struct {
		left, right int32
	}{
		{rl.KeyLeftShift, rl.KeyRightShift},
		{rl.KeyLeftControl, rl.KeyRightControl},
		{rl.KeyLeftAlt, rl.KeyRightAlt},
	}
	for _, tt := range tests {
		left, right := KeyName(tt.left), KeyName(tt.right)
		assert.NotEmpty(t, left)
		assert.NotEmpty(t, right)
		assert.NotEqual(t, left, right)
	}
}

func TestKeyName_EveryNameIsUnique(t *testing.T) {
	seen := make(map[string]int32, len(keyNames))
	for code, name := range keyNames {
		if other, dup := seen[name]; dup {
			t.Fatalf("%q names both %d and %d", name, other, code)
		}
		seen[name] = code
	}
}

func TestKeyCodes_SortedAndComplete(t *testing.T) {
	require.Len(t, keyCodes, len(keyNames))
	assert.True(t, slices.IsSorted(keyCodes))
	for _, code := range keyCodes {
		assert.Contains(t, keyNames, code)
	}
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "a", KeyName(rl.KeyA))
	assert.Equal(t, "7", KeyName(rl.KeySeven))
	assert.Equal(t, "f12", KeyName(rl.KeyF12))
	assert.Equal(t, "arrowup", KeyName(rl.KeyUp))
	assert.Empty(t, KeyName(rl.KeyKpEnter))
}
