package engine

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Option configures Open and RegisterFunctions.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used for connection and registration events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(opts []Option) *options {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open registers the vector functions and opens a SQLite database using the
// modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string, opts ...Option) (*sql.DB, error) {
	o := newOptions(opts)
	if err := RegisterFunctions(opts...); err != nil {
		return nil, err
	}
	o.logger.Debug().Strs("functions", FunctionNames()).Msg("functions registered")
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("engine: open %q: %w", dsn, err)
	}
	o.logger.Debug().Str("dsn", dsn).Msg("sqlite opened")
	return db, nil
}
