// Package readview turns arbitrary web pages into clean, readable articles.
// It fetches a page, locates its main content, decomposes that content into
// a small set of semantic blocks and caches the result in memory and on disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package readview

import "time"

const (
	// MaxBlocks caps the number of blocks in a single article.
	MaxBlocks = 300

	// MaxListItems caps the number of items kept in a normalized list.
	MaxListItems = 100

	// MaxParagraphs caps the coarse paragraph decomposition.
	MaxParagraphs = 200

	// MinContentLength is the minimum amount of block text an extraction
	// must produce to be accepted without falling back.
	MinContentLength = 200

	// MaxBodyBytes is the largest response body that will be read.
	MaxBodyBytes = 4 << 20

	// MemoryCacheSize is the default capacity of the in-memory article cache.
	MemoryCacheSize = 32

	// DiskCacheTTL is how long a persisted article stays valid.
	DiskCacheTTL = 24 * time.Hour
)
