package pg

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/uniqslug/core/uniqueslug"
)

// TableConfig names the table and primary key column the store queries.
type TableConfig struct {
	Table string
	// PKColumn is the primary key column used for self-exclusion.
	// Defaults to "id".
	PKColumn string
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store adapts one PostgreSQL table to the uniqueslug.Store interface.
type Store struct {
	pool  *pgxpool.Pool
	table TableConfig
}

// NewStore creates a slug existence store over the given table.
func NewStore(pool *pgxpool.Pool, cfg TableConfig) (*Store, error) {
	if cfg.Table == "" {
		return nil, ErrMissingTable
	}
	if cfg.PKColumn == "" {
		cfg.PKColumn = "id"
	}
	return &Store{pool: pool, table: cfg}, nil
}

// ExistingSlugs returns slug values under q.Scope starting with q.Prefix,
// excluding q.ExcludePK.
func (s *Store) ExistingSlugs(ctx context.Context, q uniqueslug.Query) ([]string, error) {
	sqlText, args := buildExistingSlugsQuery(s.table, q)

	rows, err := s.querier(ctx).Query(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("query existing slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slugs: %w", err)
	}
	return slugs, nil
}

// SlugExists reports whether the exact slug value exists under q.Scope,
// excluding q.ExcludePK.
func (s *Store) SlugExists(ctx context.Context, q uniqueslug.Query, slug string) (bool, error) {
	sqlText, args := buildSlugExistsQuery(s.table, q, slug)

	var exists bool
	if err := s.querier(ctx).QueryRow(ctx, sqlText, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("query slug existence: %w", err)
	}
	return exists, nil
}

// querier prefers a transaction carried by the context so uniqueness checks
// observe the caller's own uncommitted writes.
func (s *Store) querier(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

// buildExistingSlugsQuery renders the prefix snapshot query. Scope keys are
// sorted so equal inputs produce identical SQL.
func buildExistingSlugsQuery(t TableConfig, q uniqueslug.Query) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(q.Scope)+2)

	field := quoteIdent(q.Field)
	args = append(args, escapeLike(q.Prefix)+"%")
	fmt.Fprintf(&b, `SELECT %s FROM %s WHERE %s LIKE $1 ESCAPE '\'`, field, quoteIdent(t.Table), field)

	appendScope(&b, &args, q.Scope)
	appendExclusion(&b, &args, t.PKColumn, q.ExcludePK)

	return b.String(), args
}

// buildSlugExistsQuery renders the exact existence check.
func buildSlugExistsQuery(t TableConfig, q uniqueslug.Query, slug string) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(q.Scope)+2)

	args = append(args, slug)
	fmt.Fprintf(&b, "SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1", quoteIdent(t.Table), quoteIdent(q.Field))

	appendScope(&b, &args, q.Scope)
	appendExclusion(&b, &args, t.PKColumn, q.ExcludePK)

	b.WriteString(")")
	return b.String(), args
}

func appendScope(b *strings.Builder, args *[]any, scope map[string]any) {
	keys := make([]string, 0, len(scope))
	for k := range scope {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		*args = append(*args, scope[k])
		fmt.Fprintf(b, " AND %s = $%d", quoteIdent(k), len(*args))
	}
}

func appendExclusion(b *strings.Builder, args *[]any, pkColumn string, pk any) {
	if pk == nil {
		return
	}
	*args = append(*args, pk)
	fmt.Fprintf(b, " AND %s <> $%d", quoteIdent(pkColumn), len(*args))
}

// quoteIdent quotes a SQL identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// escapeLike escapes LIKE wildcards so the prefix matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
