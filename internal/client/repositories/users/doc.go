// Package users provides the persistence backends for cached random users.
//
// # Overview
//
// Repository is the narrow contract the cache layer needs: upsert one or
// many users, replace the whole set atomically, and read everything back in
// insertion order. Two implementations exist:
//
//   - SQLiteRepository: the production backend over *sql.DB. Upserts use
//     ON CONFLICT(id); ReplaceAll runs inside dbx.WithTx.
//   - MemoryRepository: an in-memory backend on hashicorp/go-memdb, used by
//     tests and ephemeral runs. Reads see an MVCC snapshot.
//
// # Identity
//
// Users have no natural key. A user without an ID gets a fresh UUID when it
// is first stored; storing it again under the same ID replaces it in place
// (last write wins) and keeps its original position.
//
// Typical Usage
//
//	repo := users.NewSQLiteRepository(db)
//	_ = repo.ReplaceAll(ctx, firstPage)
//	_ = repo.AddOrReplaceAll(ctx, secondPage)
//	all, _ := repo.GetAll(ctx)
package users
