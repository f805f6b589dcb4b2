package redis

import (
	"strings"
	"testing"
)

func TestAllKeysCoversEverySlice(t *testing.T) {
	want := []string{
		KeyBookmarks,
		KeyStatuses,
		KeyFolders,
		KeyPreferences,
		KeySearches,
		KeyActivity,
	}

	got := AllKeys()
	if len(got) != len(want) {
		t.Fatalf("AllKeys() returned %d keys, want %d", len(got), len(want))
	}
	for i, key := range got {
		if key != want[i] {
			t.Errorf("AllKeys()[%d] = %q, want %q", i, key, want[i])
		}
		if !strings.HasPrefix(key, KeyPrefix) {
			t.Errorf("key %q missing namespace prefix %q", key, KeyPrefix)
		}
	}
}
