package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Signal/internal/core"
	"github.com/dkeye/Signal/internal/domain"
)

func TestDirectory_BindAndLookup(t *testing.T) {
	d := NewDirectory()
	conn := newFakeConn("c1")

	d.Bind("alice@mail", conn)

	got, ok := d.Conn("alice@mail")
	require.True(t, ok)
	assert.Equal(t, conn, got)

	identity, ok := d.Identity(conn.ID())
	require.True(t, ok)
	assert.Equal(t, domain.Identity("alice@mail"), identity)
}

func TestDirectory_LookupUnknown(t *testing.T) {
	d := NewDirectory()

	_, ok := d.Conn("nobody")
	assert.False(t, ok)

	_, ok = d.Identity("c404")
	assert.False(t, ok)
}

func TestDirectory_RebindSupersedesOldConn(t *testing.T) {
	d := NewDirectory()
	c1 := newFakeConn("c1")
	c2 := newFakeConn("c2")

	d.Bind("alice@mail", c1)
	d.Bind("alice@mail", c2)

	got, ok := d.Conn("alice@mail")
	require.True(t, ok)
	assert.Equal(t, c2, got)

	// The superseded connection is orphaned from lookups.
	_, ok = d.Identity(c1.ID())
	assert.False(t, ok)
}

func TestDirectory_RebindSupersedesOldIdentity(t *testing.T) {
	d := NewDirectory()
	c1 := newFakeConn("c1")

	d.Bind("alice@mail", c1)
	d.Bind("bob@mail", c1)

	identity, ok := d.Identity(c1.ID())
	require.True(t, ok)
	assert.Equal(t, domain.Identity("bob@mail"), identity)

	_, ok = d.Conn("alice@mail")
	assert.False(t, ok)
}

func TestDirectory_UnbindRemovesBothDirections(t *testing.T) {
	d := NewDirectory()
	c1 := newFakeConn("c1")
	d.Bind("alice@mail", c1)

	d.Unbind(c1.ID())

	_, ok := d.Conn("alice@mail")
	assert.False(t, ok)
	_, ok = d.Identity(c1.ID())
	assert.False(t, ok)
}

func TestDirectory_UnbindUnknownIsNoop(t *testing.T) {
	d := NewDirectory()
	d.Unbind("c404")
}

func TestDirectory_UnbindStaleConnKeepsNewBinding(t *testing.T) {
	d := NewDirectory()
	c1 := newFakeConn("c1")
	c2 := newFakeConn("c2")

	d.Bind("alice@mail", c1)
	d.Bind("alice@mail", c2)

	// Old connection finally closes after the rebind; the fresh binding
	// must survive its cleanup.
	d.Unbind(c1.ID())

	got, ok := d.Conn("alice@mail")
	require.True(t, ok)
	assert.Equal(t, c2, got)
}

func TestDirectory_Consistency(t *testing.T) {
	d := NewDirectory()
	c1 := newFakeConn("c1")
	c2 := newFakeConn("c2")

	d.Bind("alice@mail", c1)
	d.Bind("bob@mail", c2)
	d.Bind("alice@mail", c2)
	d.Unbind(c1.ID())

	// Wherever a reverse lookup succeeds, the forward lookup points back.
	for _, cid := range []core.ConnID{"c1", "c2"} {
		identity, ok := d.Identity(cid)
		if !ok {
			continue
		}
		conn, ok := d.Conn(identity)
		require.True(t, ok)
		assert.Equal(t, cid, conn.ID())
	}
}
