package app

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/champions-tracker/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	maxTracedQueryBytes = 512
	binaryResultParam   = "disable_prepared_binary_result"
)

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := postgresDSN(cfg.DBURL)
	if cfg.DBDisablePreparedBinary {
		dsn = dsn.withoutBinaryResults()
	}

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(traceQuery),
	}
	if name := dsn.database(); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", string(dsn), opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "open database")
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "ping database")
	}

	return db, nil
}

// postgresDSN is either a postgres:// URL or a libpq key=value string.
type postgresDSN string

// withoutBinaryResults sets disable_prepared_binary_result=yes on URL DSNs
// unless the caller already chose a value.
func (d postgresDSN) withoutBinaryResults() postgresDSN {
	u, err := url.Parse(string(d))
	if err != nil || u.Scheme == "" {
		return d
	}
	q := u.Query()
	if q.Has(binaryResultParam) {
		return d
	}
	q.Set(binaryResultParam, "yes")
	u.RawQuery = q.Encode()
	return postgresDSN(u.String())
}

func (d postgresDSN) database() string {
	raw := strings.TrimSpace(string(d))
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return strings.Trim(u.Path, "/ ")
	}
	for _, kv := range strings.Fields(raw) {
		if name, ok := strings.CutPrefix(kv, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}

// traceQuery collapses whitespace and caps the statement recorded on spans.
func traceQuery(query string) string {
	out := strings.Join(strings.Fields(query), " ")
	if len(out) <= maxTracedQueryBytes {
		return out
	}
	cut := maxTracedQueryBytes
	for cut > 0 && !utf8.RuneStart(out[cut]) {
		cut--
	}
	return out[:cut] + "..."
}
