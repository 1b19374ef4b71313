package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFloatingRoundTrip(t *testing.T) {
	ctx, backend := newTestContext(1000, 800, 18)
	c := manageTestClient(ctx, backend, false)
	origX, origY, origW, origH := c.X, c.Y, c.W, c.H

	ctx.ToggleFloating(c)
	require.True(t, c.Floating)

	ctx.ToggleFloating(c)

	assert.False(t, c.Floating)
	assert.Equal(t, origX, c.X)
	assert.Equal(t, origY, c.Y)
	assert.Equal(t, origW, c.W)
	assert.Equal(t, origH, c.H)
}

func TestSetFullscreenRoundTrip(t *testing.T) {
	ctx, backend := newTestContext(1000, 800, 18)
	c := manageTestClient(ctx, backend, false)
	origFloating := c.Floating
	origBorder := c.Border
	origX, origY, origW, origH := c.X, c.Y, c.W, c.H

	ctx.SetFullscreen(c, true)

	require.True(t, c.Fullscreen)
	assert.True(t, c.Floating)
	assert.Equal(t, 0, c.Border)
	assert.Equal(t, c.Mon.MX, c.X)
	assert.Equal(t, c.Mon.MY, c.Y)
	assert.Equal(t, c.Mon.MW, c.W)
	assert.Equal(t, c.Mon.MH, c.H)

	ctx.SetFullscreen(c, false)

	assert.False(t, c.Fullscreen)
	assert.Equal(t, origFloating, c.Floating)
	assert.Equal(t, origBorder, c.Border)
	assert.Equal(t, origX, c.X)
	assert.Equal(t, origY, c.Y)
	assert.Equal(t, origW, c.W)
	assert.Equal(t, origH, c.H)
}

func TestKillClientPrefersDeleteProtocol(t *testing.T) {
	ctx, backend := newTestContext(1000, 800, 18)
	c := manageTestClient(ctx, backend, false)

	ctx.KillClient(c)

	// fakeBackend.GetWMProtocols always reports delete-window support, so
	// the client should still be managed (no destroy happened synchronously).
	assert.NotNil(t, ctx.findClient(c.Win))
}

func TestUnmanageRemovesFromBothLists(t *testing.T) {
	ctx, backend := newTestContext(1000, 800, 18)
	c := manageTestClient(ctx, backend, false)
	m := c.Mon

	ctx.Unmanage(c, true)

	assert.Nil(t, ctx.findClient(c.Win))
	for p := m.Clients; p != nil; p = p.Next {
		assert.NotEqual(t, c, p)
	}
	for p := m.Stack; p != nil; p = p.SNext {
		assert.NotEqual(t, c, p)
	}
}
