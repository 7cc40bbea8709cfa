// Package services contains the storefront business logic. Each entity kind
// gets one service presenting the same read/write surface regardless of
// whether a live store or the fixed demo dataset is behind it.
//
// Mode rules, applied uniformly:
//   - Fallback mode serves reads from the demo dataset (or the JSON file
//     documents when a data directory is configured) and synthesizes
//     non-durable results for writes.
//   - In live mode a failed read degrades to the demo dataset; a failed
//     write is reported as a failure, never silently redirected.
//
// Detailed errors stay in the server log; callers only ever see the sentinel
// taxonomy from the common package.
package services

import (
	"database/sql"

	"github.com/avigneron/boutique/internal/logging"
	"github.com/avigneron/boutique/internal/server/filestore"
	"github.com/avigneron/boutique/internal/server/repositories/repomanager"
)

// Deps bundles the backends every facade service is built on.
//
// DB is the elevated-tier pool and ReadDB the restricted-tier pool; both are
// nil in fallback mode. Files is non-nil only for file-backed demo
// deployments. Fallback is decided once from configuration at construction
// time.
type Deps struct {
	DB       *sql.DB
	ReadDB   *sql.DB
	Repos    repomanager.RepositoryManager
	Files    *filestore.Store
	Fallback bool
	Logger   logging.Logger
}

// readHandle returns the pool public reads should use.
func (d Deps) readHandle() *sql.DB {
	if d.ReadDB != nil {
		return d.ReadDB
	}
	return d.DB
}
