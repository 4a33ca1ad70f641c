package app

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/welloca/railsui/models"
)

func TestNewContext_NilUsesDefaults(t *testing.T) {
	c := NewContext(nil)

	require.NotNil(t, c.Current())
	assert.Equal(t, models.DefaultSettings(), c.Current())
}

func TestContext_SwapReplacesWholesale(t *testing.T) {
	first := models.DefaultSettings()
	c := NewContext(first)

	next := models.DefaultSettings()
	next.SetTheme("hound")
	prev := c.Swap(next)

	assert.Same(t, first, prev)
	assert.Same(t, next, c.Current())
	assert.Equal(t, "hound", c.Current().Theme())
}

func TestContext_ConcurrentSwap(t *testing.T) {
	c := NewContext(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := models.DefaultSettings()
			s.SetBlog(true)
			c.Swap(s)
			_ = c.Current().Blog()
		}()
	}
	wg.Wait()

	assert.True(t, c.Current().Blog())
}
