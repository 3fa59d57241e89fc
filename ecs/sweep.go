package ecs

// The sweep is the per-frame lifecycle transaction, run at the start of
// every Tick: dead entities are compacted out of the live list and out of
// every affected query cache, then entities created since the previous
// sweep are admitted.

func (m *Manager) sweep() {
	clear(m.adhoc)

	var removed Mask
	entities, anyRemoved := compactDead(m.entities, func(e *Entity) {
		removed |= e.mask
		m.refs.Del(e.id)
	})
	m.entities = entities

	// A query can only have lost members if its key shares a bit with some
	// removed entity's mask. A zero-key query matches everything and is
	// always suspect.
	if anyRemoved {
		for i := range m.queries {
			q := &m.queries[i]
			if q.key == 0 || q.key.ContainsAny(removed) {
				q.entities, _ = compactDead(q.entities, nil)
			}
		}
	}

	m.admitFresh()
}

// admitFresh commits every entity created since the previous sweep. An
// entity that is still alive runs its Begin scripts, is frozen, and joins
// the live list, the id index, and every declared query its mask satisfies.
// The aliveness check happens once, before the Begin scripts run: an entity
// that kills itself inside its own Begin is still admitted for this frame
// and compacted on the next sweep. An entity killed before admission is
// dropped silently and its Begin scripts never run.
//
// Entities spawned from inside a Begin script land on the next sweep's
// fresh list, not this one's.
func (m *Manager) admitFresh() {
	m.mu.Lock()
	fresh := m.fresh
	m.fresh = nil
	m.mu.Unlock()

	for _, e := range fresh {
		if !e.alive {
			continue
		}
		e.runBegin(m)
		e.committed = true
		m.entities = append(m.entities, e)
		m.refs.Put(e.id, e)
		for i := range m.queries {
			q := &m.queries[i]
			if e.mask.ContainsAll(q.key) {
				q.entities = append(q.entities, e)
			}
		}
	}
}

// compactDead removes dead entities from v in a single two-pointer pass:
// scan from the left for a dead slot, pull the last live entity from the
// right into it, shrink. Surviving order is arbitrary after a swap. note, if
// non-nil, is called once for every removed entity. Returns the compacted
// slice and whether anything was removed.
func compactDead(v []*Entity, note func(*Entity)) ([]*Entity, bool) {
	if len(v) == 0 {
		return v, false
	}
	start := len(v)
	left := 0
	right := len(v) - 1
	for left <= right {
		if !v[left].alive {
			if note != nil {
				note(v[left])
			}
			for right > left && !v[right].alive {
				if note != nil {
					note(v[right])
				}
				right--
				v = v[:len(v)-1]
			}
			if right > left {
				v[left], v[right] = v[right], v[left]
				right--
			}
			v[len(v)-1] = nil
			v = v[:len(v)-1]
		}
		left++
	}
	return v, len(v) != start
}
