package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Signal/internal/core"
	"github.com/dkeye/Signal/internal/domain"
)

// Directory is the bidirectional identity <-> connection map. Both axes are
// last-writer-wins: a later Bind under the same identity orphans the old
// connection from lookups, and a connection that re-joins under a new
// identity drops its old one. The superseded connection is never closed
// here; the adapter owns its lifecycle.
type Directory struct {
	mu         sync.RWMutex
	byIdentity map[domain.Identity]core.Conn
	byConn     map[core.ConnID]domain.Identity
}

func NewDirectory() *Directory {
	return &Directory{
		byIdentity: make(map[domain.Identity]core.Conn),
		byConn:     make(map[core.ConnID]domain.Identity),
	}
}

func (d *Directory) Bind(identity domain.Identity, conn core.Conn) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if old, ok := d.byIdentity[identity]; ok && old.ID() != conn.ID() {
		delete(d.byConn, old.ID())
	}
	if oldIdentity, ok := d.byConn[conn.ID()]; ok && oldIdentity != identity {
		delete(d.byIdentity, oldIdentity)
	}
	d.byIdentity[identity] = conn
	d.byConn[conn.ID()] = identity
	log.Info().Str("module", "app.directory").Str("identity", string(identity)).Str("cid", string(conn.ID())).Msg("bound identity")
}

func (d *Directory) Conn(identity domain.Identity) (core.Conn, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	conn, ok := d.byIdentity[identity]
	return conn, ok
}

func (d *Directory) Identity(cid core.ConnID) (domain.Identity, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	identity, ok := d.byConn[cid]
	return identity, ok
}

// Unbind removes both directions for the pair bound to cid. No-op for an
// unknown cid, and it never touches a forward entry that a newer
// connection already took over.
func (d *Directory) Unbind(cid core.ConnID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	identity, ok := d.byConn[cid]
	if !ok {
		return
	}
	if cur, ok := d.byIdentity[identity]; ok && cur.ID() == cid {
		delete(d.byIdentity, identity)
	}
	delete(d.byConn, cid)
	log.Info().Str("module", "app.directory").Str("identity", string(identity)).Str("cid", string(cid)).Msg("unbound identity")
}
