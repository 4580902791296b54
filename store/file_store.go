package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// FileStore keeps room terrain in a local JSON file. If the file name ends
// in ".zst", the document is zstd compressed.
//
// The whole document is held in memory and rewritten on every Put.
type FileStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *fileData
}

// fileData is the JSON document of a FileStore. Terrain bytes are
// serialized as base64.
type fileData struct {
	Rooms map[string][]byte `json:"rooms"`
}

// NewFileStore opens the terrain file at filePath, creating it if it does
// not exist.
func NewFileStore(filePath string) (*FileStore, error) {
	fst := &FileStore{
		filePath: filePath,
		data:     &fileData{Rooms: make(map[string][]byte)},
	}
	if err := fst.loadFromFile(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load terrain file: %w", err)
		}
		if err := fst.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create terrain file: %w", err)
		}
	}
	tracer().Infof("using terrain file %s with %d rooms", filePath, len(fst.data.Rooms))
	return fst, nil
}

func (fst *FileStore) compressed() bool {
	return strings.HasSuffix(fst.filePath, ".zst")
}

// loadFromFile reads the document from disk.
func (fst *FileStore) loadFromFile() error {
	raw, err := os.ReadFile(fst.filePath)
	if err != nil {
		return err
	}
	if fst.compressed() {
		if raw, err = decompressZstd(raw); err != nil {
			return fmt.Errorf("zstd decode: %w", err)
		}
	}
	data := &fileData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return err
	}
	if data.Rooms == nil {
		data.Rooms = make(map[string][]byte)
	}
	fst.data = data
	return nil
}

// saveToFile writes the document to a temporary file, then renames it over
// the terrain file. Callers of a shared store must hold the write lock.
func (fst *FileStore) saveToFile() error {
	raw, err := json.MarshalIndent(fst.data, "", "  ")
	if err != nil {
		return err
	}
	if fst.compressed() {
		raw = compressZstd(raw)
	}
	tmp, err := os.CreateTemp(filepath.Dir(fst.filePath), filepath.Base(fst.filePath)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // fails harmlessly after the rename
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fst.filePath)
}

// EnsureSchema is a no-op, the document is created when the store is opened.
func (fst *FileStore) EnsureSchema(ctx context.Context) error {
	return nil
}

// Put stores the terrain of a room and rewrites the file.
func (fst *FileStore) Put(ctx context.Context, room string, data []byte) error {
	if err := checkPayload(room, data); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	fst.mutex.Lock()
	defer fst.mutex.Unlock()

	old, existed := fst.data.Rooms[room]
	fst.data.Rooms[room] = bytes.Clone(data)
	if err := fst.saveToFile(); err != nil {
		// memory must not get ahead of the file
		if existed {
			fst.data.Rooms[room] = old
		} else {
			delete(fst.data.Rooms, room)
		}
		tracer().Errorf("saving room %s: %v", room, err)
		return fmt.Errorf("failed to save room %s: %w", room, err)
	}
	return nil
}

// Get returns the terrain of a room.
func (fst *FileStore) Get(ctx context.Context, room string) ([]byte, error) {
	fst.mutex.RLock()
	defer fst.mutex.RUnlock()

	data, exists := fst.data.Rooms[room]
	if !exists {
		return nil, notFound(room)
	}
	return bytes.Clone(data), nil
}

// ListRooms returns the names of all stored rooms, sorted.
func (fst *FileStore) ListRooms(ctx context.Context) ([]string, error) {
	fst.mutex.RLock()
	defer fst.mutex.RUnlock()

	rooms := make([]string, 0, len(fst.data.Rooms))
	for name := range fst.data.Rooms {
		rooms = append(rooms, name)
	}
	sort.Strings(rooms)
	return rooms, nil
}

// Close closes the store (no-op for the file store).
func (fst *FileStore) Close() error {
	return nil
}

// --- zstd helpers ---

// Documents are whole buffers, so a single encoder and decoder serve every
// store through EncodeAll and DecodeAll, which are safe for concurrent use.
var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
)

func compressZstd(data []byte) []byte {
	return zstdEncoder.EncodeAll(data, nil)
}

func decompressZstd(data []byte) ([]byte, error) {
	return zstdDecoder.DecodeAll(data, nil)
}
