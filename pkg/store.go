package semgraph

import (
	"context"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

type Options struct {
	// Logger receives store logs. Defaults to a no-op logger.
	Logger *zap.Logger
	// OpenTimeout bounds how long Open waits for the file lock held by
	// another process. Zero waits forever.
	OpenTimeout time.Duration
}

// Store is the handle to one graph data file. It is safe for concurrent
// use: bolt serializes writers and gives readers consistent snapshots.
type Store struct {
	boltDB *bolt.DB
	path   string

	ctx     context.Context
	logger  *zap.Logger
	metrics *metrics
}

// Open opens (creating if needed) the data file at path. The returned store
// must be initialized with Initialize before records can be written.
func Open(path string, opts *Options) (*Store, error) {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	boltDB, err := bolt.Open(path, 0600, &bolt.Options{Timeout: opts.OpenTimeout})
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	store := &Store{
		boltDB: boltDB,
		path:   path,
		ctx:    context.WithValue(context.Background(), clog.StoreKey, path),
		logger: logger,
	}
	store.metrics = newMetrics(store)
	clog.Debug(store, "opened data file")
	return store, nil
}

func (s *Store) Ctx() context.Context { return s.ctx }
func (s *Store) Logger() *zap.Logger  { return s.logger }

// Path returns the data file the store was opened on.
func (s *Store) Path() string { return s.path }

// Registry returns the prometheus registry holding this store's metrics.
func (s *Store) Registry() *prometheus.Registry {
	return s.metrics.registry
}

func (s *Store) Close() error {
	clog.Debug(s, "closing data file")
	return s.boltDB.Close()
}

// opLogger is a Loggable scoped to a single store operation.
type opLogger struct {
	store *Store
	ctx   context.Context
}

func (l *opLogger) Ctx() context.Context { return l.ctx }
func (l *opLogger) Logger() *zap.Logger  { return l.store.logger }

func (s *Store) op(name string) *opLogger {
	return &opLogger{store: s, ctx: clog.WithOp(s.ctx, name)}
}
