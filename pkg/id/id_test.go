package id

import (
	"sort"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = New()
	}

	seen := make(map[string]bool, len(ids))
	for _, s := range ids {
		assert.Len(t, s, 26)
		assert.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true

		_, err := ulid.Parse(s)
		assert.NoError(t, err)
	}

	// IDs generated in sequence sort in generation order.
	assert.True(t, sort.StringsAreSorted(ids))
}
