package xmldoc

import (
	"testing"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingGlob counts how many times its Match method is evaluated.
type countingGlob struct {
	g     glob.Glob
	calls int
}

func (c *countingGlob) Match(s string) bool {
	c.calls++
	return c.g.Match(s)
}

func TestSubstPrefixCaching(t *testing.T) {
	t.Parallel()

	cg := &countingGlob{g: glob.MustCompile("http://example.com/*")}
	r := &Reader{rules: []nsRule{{prefix: "ex", pattern: cg}}}

	// A run of lookups for the same exact URI must evaluate the glob
	// once and serve every further lookup from the cache.
	for i := 0; i < 1000; i++ {
		assert.Equal(t, "ex", r.substPrefix("orig", "http://example.com/ns"))
	}
	assert.Equal(t, 1, cg.calls)

	// A second distinct URI costs one more evaluation.
	assert.Equal(t, "ex", r.substPrefix("orig", "http://example.com/other"))
	assert.Equal(t, "ex", r.substPrefix("orig", "http://example.com/other"))
	assert.Equal(t, 2, cg.calls)
}

func TestSubstPrefixFallbackUnmemoized(t *testing.T) {
	t.Parallel()

	cg := &countingGlob{g: glob.MustCompile("http://example.com/*")}
	r := &Reader{rules: []nsRule{{prefix: "ex", pattern: cg}}}

	// No rule matches: the document's own prefix wins and the miss is
	// not cached.
	assert.Equal(t, "v", r.substPrefix("v", "http://vendor.example/ns"))
	assert.Equal(t, "v", r.substPrefix("v", "http://vendor.example/ns"))
	assert.Equal(t, 2, cg.calls)
	assert.Empty(t, r.cache)
}

func TestSubstPrefixDisabled(t *testing.T) {
	t.Parallel()

	r := &Reader{}
	assert.Equal(t, "v", r.substPrefix("v", "http://example.com/ns"))
	assert.Nil(t, r.cache)
}

func TestCompileRules(t *testing.T) {
	t.Parallel()

	rules, err := compileRules([]Namespace{
		{Prefix: "s", URI: "http*://www.w3.org/2003/05/soap-envelope"},
	})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.True(t, rules[0].pattern.Match("https://www.w3.org/2003/05/soap-envelope"))
	assert.False(t, rules[0].pattern.Match("https://www.w3.org/2005/08/addressing"))

	rules, err = compileRules(nil)
	require.NoError(t, err)
	assert.Nil(t, rules)

	_, err = compileRules([]Namespace{{Prefix: "b", URI: "http://[oops"}})
	assert.Error(t, err)
}
