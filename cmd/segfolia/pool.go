package main

import (
	"fmt"

	"github.com/revelaction/segfolia/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool holds the sqlite pool of one repository for the life of a command.
// Commands touching two databases use one Pool each.
type Pool struct {
	path string
	p    *sqlitex.Pool
}

// Open returns the pool of the database at path, opening it on first use.
func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		if p.path != path {
			return nil, fmt.Errorf("pool already open for %s, can not open %s", p.path, path)
		}
		return p.p, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.path = path
	p.p = pool
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p == nil {
		return nil
	}
	err := p.p.Close()
	p.p = nil
	return err
}
