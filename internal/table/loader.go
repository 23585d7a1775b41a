package table

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// Source supplies the raw table asset bytes.
type Source func(ctx context.Context) ([]byte, error)

// EmbeddedSource returns the asset compiled into the binary.
func EmbeddedSource() Source {
	return func(ctx context.Context) ([]byte, error) {
		return embeddedAsset, nil
	}
}

// FileSource reads the asset from a file on disk, honoring context
// cancellation before the read starts.
func FileSource(path string) Source {
	return func(ctx context.Context) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read analemma asset: %w", err)
		}
		return raw, nil
	}
}

// Loader loads and caches the analemma table.
//
// The load runs at most once per Loader: concurrent first callers share a
// single in-flight fetch and decode, and every later call returns the
// cached table. A failed load is also cached: the asset is static, so a
// decode failure will not heal on retry.
type Loader struct {
	source Source

	once  sync.Once
	table *Table
	err   error
}

// NewLoader creates a loader over the given source. A nil source uses the
// embedded asset.
func NewLoader(source Source) *Loader {
	if source == nil {
		source = EmbeddedSource()
	}
	return &Loader{source: source}
}

// Load returns the table, fetching and decoding it on first use.
func (l *Loader) Load(ctx context.Context) (*Table, error) {
	l.once.Do(func() {
		raw, err := l.source(ctx)
		if err != nil {
			l.err = fmt.Errorf("load analemma table: %w", err)
			return
		}
		l.table, l.err = decode(raw)
	})
	return l.table, l.err
}
