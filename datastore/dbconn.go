package datastore

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// MemoryDBType selects the in-process stores instead of a SQL database.
const MemoryDBType = "memory"

// NewDB takes arguments for db type and conn string and returns an open, pinged connection.
func NewDB(dbtype string, connstr string) (*sql.DB, error) {
	db, openError := sql.Open(dbtype, connstr)
	if openError != nil {
		return nil, fmt.Errorf("error opening connection -> %v", openError)
	}

	if pingError := db.Ping(); pingError != nil {
		db.Close()
		return nil, fmt.Errorf("could not establish connection with database -> %v", pingError)
	}

	return db, nil
}

// BuildDBConnStr builds a PostgreSQL connection string
func BuildDBConnStr(password, user, dbname, sslmode string) string {
	return fmt.Sprintf("postgres://%s:%s@localhost/%s?sslmode=%s", user, password, dbname, sslmode)
}

type NoRowsError struct {
	NoRows bool
	Err    error
}

func (nr NoRowsError) Error() string {
	return fmt.Sprintf("%v: no rows returned for scan: %v", nr.NoRows, nr.Err)
}

// IsNoRows reports whether err is a NoRowsError.
func IsNoRows(err error) bool {
	_, ok := err.(NoRowsError)
	return ok
}
