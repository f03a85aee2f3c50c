package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHas(t *testing.T) {
	held := []string{"user:read", "user:update"}

	assert.True(t, Has(held, "user:read"))
	assert.False(t, Has(held, "user:delete"))
	assert.False(t, Has(nil, "user:read"))

	// No implication between operations on the same resource.
	assert.False(t, Has([]string{"user:update"}, "user:read"))
}

func TestHasAny(t *testing.T) {
	held := []string{"role:read"}

	assert.True(t, HasAny(held, "user:read", "role:read"))
	assert.False(t, HasAny(held, "user:read", "user:update"))

	// Empty required set imposes no restriction.
	assert.True(t, HasAny(held))
	assert.True(t, HasAny(nil))
}

func TestHasAll(t *testing.T) {
	held := []string{"user:read", "user:update"}

	assert.True(t, HasAll(held, "user:read"))
	assert.True(t, HasAll(held, "user:read", "user:update"))
	assert.False(t, HasAll(held, "user:read", "user:delete"))

	assert.True(t, HasAll(held))
	assert.True(t, HasAll(nil))
}

func TestCatalog(t *testing.T) {
	all := All()
	assert.Contains(t, all, UserCreate)
	assert.Contains(t, all, PageDemo2)

	// No duplicates in the catalog.
	seen := make(map[string]bool, len(all))
	for _, id := range all {
		assert.False(t, seen[id], id)
		seen[id] = true
	}

	assert.Equal(t, "ユーザー作成", Label(UserCreate))
	assert.Equal(t, "unknown:perm", Label("unknown:perm"))
}
