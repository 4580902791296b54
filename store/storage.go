package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jciskey/roomterrain"
)

var (
	// ErrNotFound is returned by Get for rooms which are not stored.
	ErrNotFound = errors.New("room terrain not found")
	// ErrBadPayload is returned by Put for data which is not compressed
	// room terrain.
	ErrBadPayload = errors.New("room terrain data must be 625 bytes")
)

// Storage is a keyed blob store for compressed room terrain.
type Storage interface {
	// EnsureSchema prepares the backend for storing rooms. It is idempotent.
	EnsureSchema(ctx context.Context) error
	// Put stores data for a room, replacing earlier data.
	Put(ctx context.Context, room string, data []byte) error
	// Get returns the data of a room, or an error wrapping ErrNotFound.
	Get(ctx context.Context, room string) ([]byte, error)
	// ListRooms returns the names of all stored rooms, sorted.
	ListRooms(ctx context.Context) ([]string, error)
	Close() error
}

// PutTerrain stores the compressed terrain of a room.
func PutTerrain(ctx context.Context, s Storage, room string, c *roomterrain.CompressedRoomTerrain) error {
	data := c.Bytes()
	return s.Put(ctx, room, data[:])
}

// GetTerrain loads the compressed terrain of a room.
func GetTerrain(ctx context.Context, s Storage, room string) (*roomterrain.CompressedRoomTerrain, error) {
	data, err := s.Get(ctx, room)
	if err != nil {
		return nil, err
	}
	c, err := roomterrain.ParseCompressedRoomTerrain(data)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", room, err)
	}
	return c, nil
}

func checkPayload(room string, data []byte) error {
	if len(data) != roomterrain.CompressedArraySize {
		return fmt.Errorf("room %s has %d bytes: %w", room, len(data), ErrBadPayload)
	}
	return nil
}

func notFound(room string) error {
	return fmt.Errorf("room %s: %w", room, ErrNotFound)
}
