package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/derekparker/trie"
	"github.com/jciskey/roomterrain"
)

// Catalog caches decoded room terrain in front of a Storage. It is safe for
// concurrent use.
//
// Cached rooms are never invalidated; a Catalog assumes terrain does not
// change while it is alive.
type Catalog struct {
	storage Storage
	mutex   sync.RWMutex
	rooms   map[string]*roomterrain.CompressedRoomTerrain
	names   *trie.Trie // index over cached room names
}

// NewCatalog creates an empty catalog reading from s.
func NewCatalog(s Storage) *Catalog {
	return &Catalog{
		storage: s,
		rooms:   make(map[string]*roomterrain.CompressedRoomTerrain),
		names:   trie.New(),
	}
}

// Room returns the terrain of a room, loading it from storage on first
// access.
func (cat *Catalog) Room(ctx context.Context, name string) (*roomterrain.CompressedRoomTerrain, error) {
	cat.mutex.RLock()
	c, ok := cat.rooms[name]
	cat.mutex.RUnlock()
	if ok {
		return c, nil
	}
	c, err := GetTerrain(ctx, cat.storage, name)
	if err != nil {
		return nil, err
	}
	return cat.add(name, c), nil
}

// add caches c under name, unless another reader was faster. It returns
// the cached terrain.
func (cat *Catalog) add(name string, c *roomterrain.CompressedRoomTerrain) *roomterrain.CompressedRoomTerrain {
	cat.mutex.Lock()
	defer cat.mutex.Unlock()

	if cached, ok := cat.rooms[name]; ok {
		return cached
	}
	cat.rooms[name] = c
	cat.names.Add(name, nil)
	return c
}

// Preload loads every stored room into the cache.
func (cat *Catalog) Preload(ctx context.Context) error {
	names, err := cat.storage.ListRooms(ctx)
	if err != nil {
		return fmt.Errorf("failed to preload rooms: %w", err)
	}
	for _, name := range names {
		if _, err := cat.Room(ctx, name); err != nil {
			return fmt.Errorf("failed to preload rooms: %w", err)
		}
	}
	tracer().Infof("catalog preloaded %d rooms", len(names))
	return nil
}

// RoomsWithPrefix returns the sorted names of all cached rooms starting
// with prefix, e.g. "W2" for the rooms W20N5, W21S3 and so on.
func (cat *Catalog) RoomsWithPrefix(prefix string) []string {
	cat.mutex.RLock()
	defer cat.mutex.RUnlock()

	var names []string
	if prefix == "" {
		names = cat.names.Keys()
	} else {
		names = cat.names.PrefixSearch(prefix)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of cached rooms.
func (cat *Catalog) Len() int {
	cat.mutex.RLock()
	defer cat.mutex.RUnlock()
	return len(cat.rooms)
}
