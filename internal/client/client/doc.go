// Package client talks to the outside world on behalf of the CLI.
//
// # Overview
//
// The package provides:
//  1. The Fetcher contract: download one page of random users for a
//     (page, results, seed) triple.
//  2. HTTPFetcher, a net/http implementation against randomuser.me that
//     classifies failures into sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): opens the
//     SQLite cache and applies the embedded goose migrations.
//
// # Error Handling
//
// Every FetchPage error wraps exactly one of ErrUnreachable,
// ErrMalformedResponse or ErrServerError; match them with errors.Is.
//
//	users, err := f.FetchPage(ctx, models.PageRequest{Page: 1, Results: 10, Seed: seed})
//	if errors.Is(err, client.ErrUnreachable) {
//	    // offline
//	}
package client
