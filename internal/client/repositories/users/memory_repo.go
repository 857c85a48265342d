package users

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
	"github.com/hashicorp/go-memdb"
)

const usersTable = "users"

// memRecord is what go-memdb stores. Seq records first insertion so reads
// can be returned in order; objects are never mutated once inserted.
type memRecord struct {
	ID   string
	Seq  uint64
	User models.User
}

func memorySchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			usersTable: {
				Name: usersTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// MemoryRepository implements Repository in memory.
type MemoryRepository struct {
	db  *memdb.MemDB
	seq atomic.Uint64
}

func NewMemoryRepository() (*MemoryRepository, error) {
	db, err := memdb.NewMemDB(memorySchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return &MemoryRepository{db: db}, nil
}

func (r *MemoryRepository) insert(txn *memdb.Txn, u models.User) error {
	u = withID(u)

	existing, err := txn.First(usersTable, "id", u.ID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	var seq uint64
	if existing != nil {
		seq = existing.(*memRecord).Seq
	} else {
		seq = r.seq.Add(1)
	}

	if err := txn.Insert(usersTable, &memRecord{ID: u.ID, Seq: seq, User: u}); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *MemoryRepository) write(fn func(txn *memdb.Txn) error) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	if err := fn(txn); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *MemoryRepository) AddOrReplace(_ context.Context, u models.User) error {
	return r.write(func(txn *memdb.Txn) error { return r.insert(txn, u) })
}

func (r *MemoryRepository) AddOrReplaceAll(_ context.Context, users []models.User) error {
	return r.write(func(txn *memdb.Txn) error {
		for _, u := range users {
			if err := r.insert(txn, u); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MemoryRepository) ReplaceAll(_ context.Context, users []models.User) error {
	return r.write(func(txn *memdb.Txn) error {
		if _, err := txn.DeleteAll(usersTable, "id"); err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}
		for _, u := range users {
			if err := r.insert(txn, u); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MemoryRepository) GetAll(_ context.Context) ([]models.User, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(usersTable, "id")
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	var records []*memRecord
	for obj := it.Next(); obj != nil; obj = it.Next() {
		records = append(records, obj.(*memRecord))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Seq < records[j].Seq })

	result := make([]models.User, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.User)
	}
	return result, nil
}
