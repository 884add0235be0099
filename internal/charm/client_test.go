// ABOUTME: Unit tests for Charm store helpers that need no network.
// ABOUTME: Covers prefix filtering and key ordering.
package charm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterPrefix(t *testing.T) {
	keys := [][]byte{
		[]byte("trainer:workout:b"),
		[]byte("trainer:exercise:squat"),
		[]byte("trainer:workout:a"),
		[]byte("other:workout:c"),
	}

	got := filterPrefix(keys, "trainer:workout:")
	assert.Equal(t, []string{"trainer:workout:a", "trainer:workout:b"}, got)
}

func TestFilterPrefixEmpty(t *testing.T) {
	got := filterPrefix(nil, "trainer:")
	assert.Empty(t, got)
}
