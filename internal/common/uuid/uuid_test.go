package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUUID_IssuesVersion4IDs(t *testing.T) {
	id := New().NewUUID()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, parsed.String(), id)
}

func TestDefaultUUID_IDsAreUnique(t *testing.T) {
	gen := New()
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		id := gen.NewUUID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
