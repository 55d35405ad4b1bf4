package storage

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrRoundExists      = errors.New("round already exists")
	ErrAlreadyFinalized = errors.New("tournament already finalized")
)

// Open connects to the sqlite file. Writes are serialized through a single
// connection.
func Open(fileName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	return db, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}
