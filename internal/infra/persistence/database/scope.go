package database

import (
	"context"
	"reflect"
	"sync"

	domainerrors "sampleapp/internal/domain/errors"
	"sampleapp/internal/domain/repository"

	"gorm.io/gorm"
)

type scopeKey struct{}

// errNoScope is returned when a write is attempted without a unit-of-work scope.
var errNoScope = domainerrors.ErrInternalError.WithDetails("no unit-of-work scope in context")

// entryKey identifies a tracked row.
type entryKey struct {
	table string
	id    any
}

// changeEntry is one entity known to a scope.
type changeEntry interface {
	// flush writes the entity inside tx when it is new or has changed since
	// its snapshot, and stages the written row.
	flush(tx *gorm.DB) (int64, error)
	// accept promotes the staged row to the snapshot once tx has committed and
	// returns the row's identity. It reports false when nothing was written.
	accept() (entryKey, bool)
}

// scope is a per-request change tracker: an identity map of loaded entities
// plus the entities added since the last save.
type scope struct {
	mu      sync.Mutex
	tracked map[entryKey]changeEntry
	order   []entryKey
	added   []changeEntry
}

func newScope() *scope {
	return &scope{tracked: make(map[entryKey]changeEntry)}
}

func scopeFrom(ctx context.Context) (*scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*scope)

	return s, ok && s != nil
}

// pending lists entries in flush order: additions first, then loaded entities in load order.
func (s *scope) pending() []changeEntry {
	entries := make([]changeEntry, 0, len(s.added)+len(s.order))
	entries = append(entries, s.added...)
	for _, key := range s.order {
		entries = append(entries, s.tracked[key])
	}

	return entries
}

// acceptAll runs after a successful commit.
func (s *scope) acceptAll(entries []changeEntry) {
	for _, e := range entries {
		key, ok := e.accept()
		if !ok {
			continue
		}
		if _, exists := s.tracked[key]; !exists {
			s.tracked[key] = e
			s.order = append(s.order, key)
		}
	}
	s.added = nil
}

type scopeFactory struct{}

// NewScopeFactory is the constructor for the unit-of-work scope factory.
func NewScopeFactory() repository.ScopeFactory {
	return scopeFactory{}
}

// NewScope returns a child context carrying a fresh, empty scope.
func (scopeFactory) NewScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, newScope())
}

// entityMapper describes how an entity type maps onto its model.
type entityMapper[E, M any] struct {
	table string
	// storeGenerated is set when the store assigns the id on insert.
	storeGenerated bool
	toModel        func(*E) M
	id             func(*M) any
	inserted       func(*E, *M)
}

type entry[E, M any] struct {
	mapper   *entityMapper[E, M]
	entity   *E
	snapshot M
	isNew    bool
	staged   *M
}

func (e *entry[E, M]) flush(tx *gorm.DB) (int64, error) {
	e.staged = nil
	m := e.mapper.toModel(e.entity)

	if e.isNew {
		if err := tx.Create(&m).Error; err != nil {
			return 0, translateWriteError(err, "failed to insert into "+e.mapper.table)
		}
		e.staged = &m

		return 1, nil
	}

	if reflect.DeepEqual(m, e.snapshot) {
		return 0, nil
	}

	result := tx.Select("*").Save(&m)
	if result.Error != nil {
		return 0, translateWriteError(result.Error, "failed to update "+e.mapper.table)
	}
	if result.RowsAffected == 0 {
		return 0, domainerrors.ErrConflict.WithDetails(e.mapper.table + " row no longer exists")
	}
	e.staged = &m

	return result.RowsAffected, nil
}

func (e *entry[E, M]) accept() (entryKey, bool) {
	if e.staged == nil {
		return entryKey{}, false
	}
	if e.isNew && e.mapper.inserted != nil {
		e.mapper.inserted(e.entity, e.staged)
	}
	e.snapshot = *e.staged
	e.staged = nil
	e.isNew = false

	return entryKey{table: e.mapper.table, id: e.mapper.id(&e.snapshot)}, true
}

// track returns the scope's entity for a loaded row, hydrating and
// registering it on first sight. Without a scope the row is hydrated untracked.
func track[E, M any](ctx context.Context, mapper *entityMapper[E, M], m M, hydrate func(*M) (*E, error)) (*E, error) {
	s, ok := scopeFrom(ctx)
	if !ok {
		return hydrate(&m)
	}

	key := entryKey{table: mapper.table, id: mapper.id(&m)}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, found := s.tracked[key]; found {
		if e, ok := existing.(*entry[E, M]); ok {
			return e.entity, nil
		}
	}

	entity, err := hydrate(&m)
	if err != nil {
		return nil, err
	}
	s.tracked[key] = &entry[E, M]{mapper: mapper, entity: entity, snapshot: m}
	s.order = append(s.order, key)

	return entity, nil
}

// lookup returns a tracked entity without touching the store.
func lookup[E, M any](ctx context.Context, mapper *entityMapper[E, M], id any) (*E, bool) {
	s, ok := scopeFrom(ctx)
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, found := s.tracked[entryKey{table: mapper.table, id: id}]; found {
		if e, ok := existing.(*entry[E, M]); ok {
			return e.entity, true
		}
	}

	return nil, false
}

// add schedules entity for insertion on the next save.
func add[E, M any](ctx context.Context, mapper *entityMapper[E, M], entity *E) error {
	if entity == nil {
		return domainerrors.ErrInvalidArgument.WithDetails("cannot add a nil " + mapper.table + " entity")
	}

	s, ok := scopeFrom(ctx)
	if !ok {
		return errNoScope
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.added {
		if e, ok := existing.(*entry[E, M]); ok && e.entity == entity {
			return nil
		}
	}

	if !mapper.storeGenerated {
		m := mapper.toModel(entity)
		key := entryKey{table: mapper.table, id: mapper.id(&m)}
		if _, found := s.tracked[key]; found {
			return domainerrors.ErrConflict.WithDetails(mapper.table + " key is already tracked")
		}
		for _, existing := range s.added {
			if e, ok := existing.(*entry[E, M]); ok {
				pending := mapper.toModel(e.entity)
				if mapper.id(&pending) == key.id {
					return domainerrors.ErrConflict.WithDetails(mapper.table + " key is already added")
				}
			}
		}
	}

	s.added = append(s.added, &entry[E, M]{mapper: mapper, entity: entity, isNew: true})

	return nil
}
