// Package resultcache keeps rendered samples in SQLite so unchanged samples
// skip the analyzer on the next run.
package resultcache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/walteh/gotwoslash/pkg/twoslash"
	"gitlab.com/tozd/go/errors"
)

// Version is folded into every key. Bump it when Result changes shape.
const Version = 1

type Store struct {
	db *sql.DB
}

// Open opens the database at path with WAL mode enabled.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=30000")
	if err != nil {
		return nil, errors.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the results table. Idempotent.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return errors.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS results (
  key         TEXT PRIMARY KEY,
  extension   TEXT NOT NULL,
  result      BLOB NOT NULL,
  created_at  TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_created_at ON results(created_at);
`

// Key hashes everything that can change a result: the sample, the extension
// hint, the extension table and the engine defaults.
func Key(code, extension string, cfg twoslash.Config) string {
	h := sha256.New()

	fmt.Fprintf(h, "version:%d\n", Version)
	fmt.Fprintf(h, "extension:%s\n", extension)
	fmt.Fprintf(h, "compiler:%s\n", cfg.DefaultCompilerOptions.Identity())

	handbook, err := json.Marshal(cfg.DefaultHandbookOptions)
	if err != nil {
		handbook = []byte("?")
	}
	fmt.Fprintf(h, "handbook:%s\n", handbook)

	tags := append([]string{}, cfg.CustomTags...)
	sort.Strings(tags)
	fmt.Fprintf(h, "tags:%s\n", strings.Join(tags, ","))
	fmt.Fprintf(h, "root:%s\n", cfg.VFSRoot)

	exts := cfg.Extensions
	if exts == nil {
		exts = twoslash.DefaultExtensions
	}
	hints := make([]string, 0, len(exts))
	for hint := range exts {
		hints = append(hints, hint)
	}
	sort.Strings(hints)
	for _, hint := range hints {
		fmt.Fprintf(h, "ext:%s=%s\n", hint, exts[hint])
	}
	fmt.Fprintf(h, "code:%d:%s\n", len(code), code)

	return fmt.Sprintf("%x", h.Sum(nil))
}

// Get returns the stored result, or nil when key is unknown.
func (s *Store) Get(ctx context.Context, key string) (*twoslash.Result, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT result FROM results WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Errorf("result by key: %w", err)
	}

	var res twoslash.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, errors.Errorf("decoding cached result: %w", err)
	}
	return &res, nil
}

func (s *Store) Put(ctx context.Context, key string, res *twoslash.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return errors.Errorf("encoding result: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO results (key, extension, result, created_at) VALUES (?, ?, ?, ?)",
		key, res.Meta.Extension, data, time.Now().UTC(),
	)
	if err != nil {
		return errors.Errorf("insert result: %w", err)
	}
	return nil
}

// Prune deletes results stored before cutoff and returns how many went.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM results WHERE created_at < ?", cutoff.UTC())
	if err != nil {
		return 0, errors.Errorf("prune results: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM results").Scan(&n); err != nil {
		return 0, errors.Errorf("count results: %w", err)
	}
	return n, nil
}

// Run answers from the store when it can and runs the engine otherwise,
// storing what it produced. Failures are never stored. The bool reports a
// cache hit.
func (s *Store) Run(ctx context.Context, code, extension string, cfg twoslash.Config) (*twoslash.Result, bool, error) {
	key := Key(code, extension, cfg)

	cached, err := s.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if cached != nil {
		zerolog.Ctx(ctx).Debug().Str("key", key[:12]).Msg("result cache hit")
		return cached, true, nil
	}

	res, err := twoslash.Run(ctx, code, extension, cfg)
	if err != nil {
		return nil, false, err
	}
	if err := s.Put(ctx, key, res); err != nil {
		return nil, false, err
	}
	return res, false, nil
}
