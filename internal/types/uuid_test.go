package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDWithPrefix(t *testing.T) {
	id := GenerateUUIDWithPrefix(UUID_PREFIX_INVOICE)
	assert.True(t, strings.HasPrefix(id, "inv_"))

	assert.NotEmpty(t, GenerateUUIDWithPrefix(""))
}

func TestGenerateShortIDWithPrefix(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := GenerateShortIDWithPrefix(SHORT_ID_PREFIX_REQUEST)
		assert.True(t, strings.HasPrefix(id, "REQ_"), "id %s", id)
		assert.LessOrEqual(t, len(id), 12)
		assert.False(t, seen[id], "short id %s generated twice", id)
		seen[id] = true
	}
}

func TestGenerateShortIDWithPrefixTooLong(t *testing.T) {
	assert.Empty(t, GenerateShortIDWithPrefix("a_prefix_longer_than_the_cap"))
}
