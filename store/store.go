// Package store writes batch-converted bitmaps into a single sqlite archive.
// Identical bitmaps (e.g., all-white frames) are stored once and shared by
// every entry that produced them.
package store

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"
)

var emptyContext context.Context

type Writer struct {
	pool *sqlitex.Pool
}

// Entries reference image blobs by content hash so that duplicate output
// bitmaps are de-duplicated
const init_sql = `
CREATE TABLE IF NOT EXISTS metadata (name text, value text);
CREATE UNIQUE INDEX IF NOT EXISTS name ON metadata (name);

CREATE TABLE IF NOT EXISTS entries (
	name TEXT,
	image_id TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS entries_index ON entries (name);

CREATE TABLE IF NOT EXISTS images (image_data blob, image_id text);
CREATE UNIQUE INDEX IF NOT EXISTS images_id ON images (image_id);
CREATE VIEW IF NOT EXISTS bitmaps AS
	SELECT name, image_data
	FROM entries JOIN images ON images.image_id = entries.image_id;
`

func NewWriter(path string, poolsize int) (*Writer, error) {
	ext := filepath.Ext(path)
	if ext != ".bmdb" {
		return nil, fmt.Errorf("path must end in .bmdb")
	}

	// always overwrite
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		os.Remove(path)
	}

	pool, err := sqlitex.Open(path, sqlite.SQLITE_OPEN_CREATE|sqlite.SQLITE_OPEN_READWRITE|sqlite.SQLITE_OPEN_NOMUTEX|sqlite.SQLITE_OPEN_WAL, poolsize)
	if err != nil {
		return nil, err
	}

	db := &Writer{
		pool: pool,
	}

	con, err := db.GetConnection()
	if err != nil {
		return nil, err
	}
	defer db.CloseConnection(con)

	// create tables
	err = sqlitex.ExecScript(con, init_sql)
	if err != nil {
		return nil, fmt.Errorf("could not initialize database: %q", err)
	}

	return db, nil
}

func (db *Writer) Close() {
	if db.pool != nil {

		// make sure that anything pending is written
		con, err := db.GetConnection()
		if err != nil {
			panic(err)
		}
		// flush the WAL
		err = sqlitex.Exec(con, "PRAGMA wal_checkpoint;", nil)
		if err != nil {
			panic(err)
		}

		db.CloseConnection(con)

		db.pool.Close()
	}
}

// GetConnection gets a sqlite.Conn from an open connection pool.
// CloseConnection(con) must be called to release the connection.
func (db *Writer) GetConnection() (*sqlite.Conn, error) {
	con := db.pool.Get(emptyContext)
	if con == nil {
		return nil, fmt.Errorf("connection could not be opened")
	}
	return con, nil
}

// CloseConnection closes an open sqlite.Conn and returns it to the pool.
func (db *Writer) CloseConnection(con *sqlite.Conn) {
	if con != nil {
		db.pool.Put(con)
	}
}

func writeMetadataItem(con *sqlite.Conn, key string, value interface{}) error {
	return sqlitex.Exec(con, "INSERT INTO metadata (name,value) VALUES (?, ?)", nil, key, value)
}

func (db *Writer) WriteMetadata(name string, description string, mode string, width int, height int) (err error) {
	if db == nil || db.pool == nil {
		return fmt.Errorf("cannot write to closed archive database")
	}

	con, e := db.GetConnection()
	if e != nil {
		return e
	}
	defer db.CloseConnection(con)

	// create savepoint
	defer sqlitex.Save(con)(&err)

	if err = writeMetadataItem(con, "name", name); err != nil {
		return err
	}
	if description != "" {
		if err = writeMetadataItem(con, "description", description); err != nil {
			return err
		}
	}
	if err = writeMetadataItem(con, "mode", mode); err != nil {
		return err
	}
	if err = writeMetadataItem(con, "size", fmt.Sprintf("%vx%v", width, height)); err != nil {
		return err
	}
	if err = writeMetadataItem(con, "format", "bmp"); err != nil {
		return err
	}
	if err = writeMetadataItem(con, "version", "1.0.0"); err != nil {
		return err
	}

	return nil
}

func (db *Writer) WriteImage(name string, data []byte) error {
	con, err := db.GetConnection()
	if err != nil {
		return err
	}
	defer db.CloseConnection(con)

	return WriteImage(con, name, data)
}

// Write the encoded bitmap to the open connection
func WriteImage(con *sqlite.Conn, name string, data []byte) (err error) {
	defer sqlitex.Save(con)(&err)

	h := sha1.New()
	h.Write(data)
	id := hex.EncodeToString(h.Sum(nil))

	err = sqlitex.Exec(con, "INSERT OR REPLACE INTO images (image_id, image_data) values (?, ?)",
		nil, id, data)
	if err != nil {
		return fmt.Errorf("could not write image '%v' to archive: %q", name, err)
	}

	err = sqlitex.Exec(con, "INSERT OR REPLACE INTO entries (name, image_id) values(?, ?)",
		nil, name, id)
	if err != nil {
		return fmt.Errorf("could not write image '%v' to archive: %q", name, err)
	}

	return nil
}
