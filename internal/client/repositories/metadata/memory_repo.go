package metadata

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const metadataTable = "metadata"

type entry struct {
	Key   string
	Value []byte
}

// MemoryRepository keeps metadata in a go-memdb table.
type MemoryRepository struct {
	db *memdb.MemDB
}

func NewMemoryRepository() (*MemoryRepository, error) {
	db, err := memdb.NewMemDB(&memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			metadataTable: {
				Name: metadataTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "Key"}},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return &MemoryRepository{db: db}, nil
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(metadataTable, "id", key)
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	if raw == nil {
		return nil, nil
	}
	return append([]byte(nil), raw.(*entry).Value...), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(metadataTable, &entry{Key: key, Value: append([]byte(nil), value...)}); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	txn.Commit()
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(metadataTable, "id", key); err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	txn.Commit()
	return nil
}
