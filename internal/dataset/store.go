// Package dataset loads the guild-war answer book and serves an immutable
// in-memory snapshot of the cleaned records. Loading is idempotent and
// side-effect-free; the snapshot is memoized on the identity of the backing
// file and rebuilt only when the file changes.
package dataset

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// Prometheus metrics
var (
	snapshotRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gwar_snapshot_records",
		Help: "Number of cleaned records in the current snapshot",
	})

	snapshotDropped = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gwar_snapshot_rows_dropped",
		Help: "Rows excluded from the current snapshot during cleaning",
	})

	snapshotReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gwar_snapshot_reloads_total",
		Help: "Total number of snapshot rebuilds",
	})

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gwar_snapshot_load_duration_seconds",
		Help:    "Duration of answer-book load and preprocessing",
		Buckets: prometheus.DefBuckets,
	})
)

// Snapshot is one immutable load cycle of the answer book.
type Snapshot struct {
	Records  []models.MatchRecord
	Stats    LoadStats
	Source   string
	LoadedAt time.Time

	fingerprint string
}

// Store memoizes the latest Snapshot. Concurrent reload requests collapse
// into a single load via singleflight; a directory watcher invalidates the
// cache when the backing file is rewritten. Recomputation is always safe to
// repeat, so invalidation can afford to be eager.
type Store struct {
	dir    string
	logger *zap.SugaredLogger

	sf singleflight.Group

	mu   sync.RWMutex
	snap *Snapshot

	watcher *fsnotify.Watcher
}

// NewStore creates a Store over the directory holding the answer book.
func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{dir: dir, logger: logger.Sugar()}
}

// Watch starts invalidating the snapshot on filesystem changes to the data
// directory. Watch failure is not fatal: the stat-based fingerprint check on
// every access still catches changes.
func (s *Store) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	s.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					s.logger.Infow("Data directory changed, invalidating snapshot", "file", event.Name, "op", event.Op.String())
					s.Invalidate()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warnw("Watcher error", "error", err)
			}
		}
	}()
	return nil
}

// Close stops the directory watcher.
func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// Invalidate forces the next access to reload.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
}

// Snapshot returns the current cleaned dataset, reloading if the backing
// file changed since the last load. It returns ErrNoDataFile when no
// candidate file exists, and a wrapped parse/read error when the file exists
// but cannot be decoded; both leave the dataset empty for this cycle.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	path, err := Locate(s.dir)
	if err != nil {
		s.Invalidate()
		return nil, err
	}

	fp, err := fingerprint(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil && snap.fingerprint == fp {
		return snap, nil
	}

	v, err, _ := s.sf.Do(fp, func() (interface{}, error) {
		return s.load(path, fp)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

func (s *Store) load(path, fp string) (*Snapshot, error) {
	start := time.Now()

	t, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	records, stats := preprocess(t)

	snap := &Snapshot{
		Records:     records,
		Stats:       stats,
		Source:      path,
		LoadedAt:    time.Now().UTC(),
		fingerprint: fp,
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	snapshotRows.Set(float64(stats.RowsKept))
	snapshotDropped.Set(float64(stats.RowsDropped))
	snapshotReloads.Inc()
	loadDuration.Observe(time.Since(start).Seconds())

	s.logger.Infow("Snapshot loaded",
		"source", path,
		"rows_read", stats.RowsRead,
		"rows_kept", stats.RowsKept,
		"rows_dropped", stats.RowsDropped,
		"duration", time.Since(start),
	)
	return snap, nil
}

// fingerprint identifies one version of the backing file. Path, size and
// mtime are enough: the sheet is replaced wholesale, never appended to.
func fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano()), nil
}
