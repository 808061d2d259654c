package publicurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_FallbackWhenUnset(t *testing.T) {
	assert.Equal(t, "https://x.example/a/b", Resolve("", "a/b", "https://x.example"))
	assert.Equal(t, "https://x.example/a/b", Resolve("   ", "a/b", "https://x.example"))
}

func TestResolve_ConfiguredBaseWins(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a/b", Resolve("https://cdn.example/", "/a/b", "https://x.example"))
}

func TestResolve_SlashCollapsing(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a/b", Resolve("https://cdn.example//", "//a/b", ""))
	assert.Equal(t, "https://cdn.example/a/b", Resolve("https://cdn.example", "a/b", ""))
}
