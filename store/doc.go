/*
Package store persists compressed room terrain, keyed by room name.

Rooms are stored as the 625 raw bytes of a roomterrain.CompressedRoomTerrain.
Two backends implement Storage: PostgresStore keeps rooms in a PostgreSQL
table, FileStore keeps them in a single JSON document, optionally compressed
with zstd. Open selects a backend from a Config.

Catalog sits in front of a Storage and caches decoded rooms for concurrent
readers, with an index over room names for prefix queries.
*/
package store

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'roomterrain.store'
func tracer() tracing.Trace {
	return tracing.Select("roomterrain.store")
}
