// Package slugx derives URL-safe identifiers from display names.
package slugx

import "github.com/gosimple/slug"

// Derive builds a slug from a human-readable name: lowercase, accents folded
// to ASCII, runs of non-alphanumeric characters collapsed to single hyphens.
// The result is deterministic and idempotent, so identifiers stay stable
// across a later migration from demo data to a live store.
func Derive(name string) string {
	return slug.Make(name)
}
