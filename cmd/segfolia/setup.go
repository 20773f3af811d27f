package main

import (
	"fmt"
	"os"

	"github.com/revelaction/segfolia/storage"
	"github.com/revelaction/segfolia/storage/filesystem"
	"github.com/revelaction/segfolia/storage/sqlite/zombiezen"
)

// NewDocRepository opens the doc repository at path: a directory of JSON docs
// or a sqlite database file.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// createDocDB opens the sqlite database at path, creating the file and the
// tables if needed.
func createDocDB(p *Pool, path string) (storage.DocRepository, error) {
	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateDocTables(pool); err != nil {
		return nil, fmt.Errorf("failed to create docs table: %w", err)
	}

	return zombiezen.NewDocStore(pool), nil
}

// createDocDir opens the directory at path as a doc repository, creating it
// if needed.
func createDocDir(path string) (storage.DocRepository, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}
	return filesystem.NewDocStore(path)
}
