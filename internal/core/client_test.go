package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachThreeBandOrdering(t *testing.T) {
	m := createMonitor(testConfig(), 0, Rect{0, 0, 1000, 800})

	tiled1 := &Client{Win: 1}
	attach(m, tiled1)

	marked1 := &Client{Win: 2, Marked: true}
	attach(m, marked1)

	floating1 := &Client{Win: 3, Floating: true}
	attach(m, floating1)

	tiled2 := &Client{Win: 4}
	attach(m, tiled2)

	marked2 := &Client{Win: 5, Marked: true}
	attach(m, marked2)

	var order []WindowID
	for c := m.Clients; c != nil; c = c.Next {
		order = append(order, c.Win)
	}

	// floating* || (marked && tiled)* || tiled*, newest of each band first.
	require.Equal(t, []WindowID{3, 5, 2, 4, 1}, order)
}

func TestDetachRemovesFromOrderList(t *testing.T) {
	m := createMonitor(testConfig(), 0, Rect{0, 0, 1000, 800})
	a := &Client{Win: 1}
	b := &Client{Win: 2}
	attach(m, a)
	attach(m, b)

	detach(a)

	assert.Equal(t, b, m.Clients)
	assert.Nil(t, a.Next)
}

func TestStackDetachReassignsSel(t *testing.T) {
	m := createMonitor(testConfig(), 0, Rect{0, 0, 1000, 800})
	a := &Client{Win: 1, Tags: 1}
	b := &Client{Win: 2, Tags: 1}
	stackAttach(m, a)
	stackAttach(m, b)
	m.Sel = b

	stackDetach(m, b)

	assert.Equal(t, a, m.Sel)
	assert.Equal(t, a, m.Stack)
}

func TestPushLeftWrapsToEnd(t *testing.T) {
	m := createMonitor(testConfig(), 0, Rect{0, 0, 1000, 800})
	a := &Client{Win: 1}
	b := &Client{Win: 2}
	c := &Client{Win: 3}
	attach(m, c) // head after each attach call, so final order is a,b,c
	attach(m, b)
	attach(m, a)

	pushLeft(m, a) // a is first tiled; wraps to the end

	require.Equal(t, []WindowID{2, 3, 1}, orderWins(m))
}

func TestPushRightWrapsToFront(t *testing.T) {
	m := createMonitor(testConfig(), 0, Rect{0, 0, 1000, 800})
	a := &Client{Win: 1}
	b := &Client{Win: 2}
	c := &Client{Win: 3}
	attach(m, c)
	attach(m, b)
	attach(m, a) // order: a,b,c

	pushRight(m, c) // c is last tiled; wraps to the front

	require.Equal(t, []WindowID{3, 1, 2}, orderWins(m))
}

func TestPushRightSwapsAdjacent(t *testing.T) {
	m := createMonitor(testConfig(), 0, Rect{0, 0, 1000, 800})
	a := &Client{Win: 1, Tags: 1}
	b := &Client{Win: 2, Tags: 1}
	c := &Client{Win: 3, Tags: 1}
	attach(m, c)
	attach(m, b)
	attach(m, a) // order: a,b,c

	pushRight(m, a)

	require.Equal(t, []WindowID{2, 1, 3}, orderWins(m))
}

func orderWins(m *Monitor) []WindowID {
	var wins []WindowID
	for c := m.Clients; c != nil; c = c.Next {
		wins = append(wins, c.Win)
	}
	return wins
}
