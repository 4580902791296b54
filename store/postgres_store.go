package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const terrainSchema = `
CREATE TABLE IF NOT EXISTS room_terrain (
	room_name TEXT PRIMARY KEY,
	data BYTEA NOT NULL,
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
`

// PostgresStore keeps room terrain in the PostgreSQL table room_terrain.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database at dsn and makes sure the
// terrain table exists.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	ps := &PostgresStore{db: db}
	if err := ps.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	tracer().Infof("using PostgreSQL terrain store")
	return ps, nil
}

// EnsureSchema creates the terrain table if it does not exist.
func (ps *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, terrainSchema)
	return err
}

// Put inserts or replaces the terrain of a room.
func (ps *PostgresStore) Put(ctx context.Context, room string, data []byte) error {
	if err := checkPayload(room, data); err != nil {
		return err
	}
	query := `
	INSERT INTO room_terrain (room_name, data)
	VALUES ($1, $2)
	ON CONFLICT (room_name)
	DO UPDATE SET data = $2, updated_at = NOW()
	`
	if _, err := ps.db.ExecContext(ctx, query, room, data); err != nil {
		tracer().Errorf("saving room %s: %v", room, err)
		return fmt.Errorf("failed to save room %s: %w", room, err)
	}
	return nil
}

// Get loads the terrain of a room.
func (ps *PostgresStore) Get(ctx context.Context, room string) ([]byte, error) {
	var data []byte
	err := ps.db.QueryRowContext(ctx,
		`SELECT data FROM room_terrain WHERE room_name = $1`, room).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(room)
		}
		tracer().Errorf("loading room %s: %v", room, err)
		return nil, fmt.Errorf("failed to load room %s: %w", room, err)
	}
	return data, nil
}

// ListRooms returns the names of all stored rooms, sorted.
func (ps *PostgresStore) ListRooms(ctx context.Context) ([]string, error) {
	rows, err := ps.db.QueryContext(ctx, `SELECT room_name FROM room_terrain ORDER BY room_name COLLATE "C"`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()
	var rooms []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to list rooms: %w", err)
		}
		rooms = append(rooms, name)
	}
	return rooms, rows.Err()
}

// Close closes the database connection.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
