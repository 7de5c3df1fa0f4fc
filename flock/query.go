package flock

import "iter"

// Matcher selects archetypes for a Query. A nil Matcher matches every archetype.
type Matcher func(*Archetype) bool

var (
	// CanFly matches actors composed with a flight capability.
	CanFly Matcher = func(a *Archetype) bool { return a.CanFly() }

	// Grounded matches actors without a flight capability.
	Grounded Matcher = func(a *Archetype) bool { return !a.CanFly() }
)

// Query caches the archetypes matching a Matcher and snapshots their actors,
// in spawn order, each time Execute is called.
type Query struct {
	Match Matcher

	flock              *Flock
	cachedArchetypes   map[uint32]*Archetype
	lastArchetypeCount int

	cachedIds     []ActorId
	cachedMembers []*Member
	cacheValid    bool
}

// NewQuery creates a Query over f.
func NewQuery(f *Flock, match Matcher) *Query {
	q := &Query{Match: match}
	q.Init(f)
	return q
}

// Init binds the Query to a flock and drops any cached state.
// Called by the Show when an Act with a Query field is registered.
func (q *Query) Init(f *Flock) {
	q.flock = f
	q.cachedArchetypes = nil
	q.lastArchetypeCount = -1
	q.cacheValid = false
}

// Execute snapshots the matching actors.
// Called automatically by the Show before each Act performs.
func (q *Query) Execute() {
	if q.flock == nil {
		panic("Query.Execute() called before Query.Init()")
	}

	q.invalidateIfNeeded()
	q.ensureArchetypeCache()

	q.cachedIds, q.cachedMembers = gather(q.cachedArchetypes, nil)
	q.cacheValid = true
}

func (q *Query) invalidateIfNeeded() {
	currentCount := len(q.flock.archetypes)
	if currentCount != q.lastArchetypeCount {
		q.cachedArchetypes = nil
		q.lastArchetypeCount = currentCount
	}
}

func (q *Query) ensureArchetypeCache() {
	if q.cachedArchetypes != nil {
		return
	}

	q.cachedArchetypes = make(map[uint32]*Archetype)
	for id, archetype := range q.flock.archetypes {
		if q.Match == nil || q.Match(archetype) {
			q.cachedArchetypes[id] = archetype
		}
	}
}

// Len returns the number of actors captured by the last Execute.
func (q *Query) Len() int {
	return len(q.cachedIds)
}

// Iter returns an iterator over the actors captured by the last Execute.
// Panics if Execute() has not been called.
func (q *Query) Iter() iter.Seq2[ActorId, *Member] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(ActorId, *Member) bool) {
		for i := range q.cachedIds {
			if !yield(q.cachedIds[i], q.cachedMembers[i]) {
				return
			}
		}
	}
}
