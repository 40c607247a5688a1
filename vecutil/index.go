package vecutil

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/viant/vecdist/engine"
	"github.com/viant/vecdist/metric"
	"github.com/viant/vecdist/vector"
)

const (
	// DefaultIDColumn is the row identifier column used by NewIndex.
	DefaultIDColumn = "id"
	// DefaultVectorColumn is the BLOB embedding column used by NewIndex.
	DefaultVectorColumn = "embedding"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Index ranks the rows of a table by the distance between their vector
// column and a query vector. The table is expected to have at least:
//
//	id        TEXT PRIMARY KEY
//	embedding BLOB
type Index struct {
	DB           *sql.DB
	Table        string
	IDColumn     string
	VectorColumn string
	Metric       metric.Metric
}

// Match represents a single ranked row.
type Match struct {
	ID       string
	Distance float64
}

// NewIndex constructs an Index ranking table rows with the metric bound to
// token (for example "<=>").
//
// Table and column names are interpolated into SQL; they are restricted to
// plain or schema-qualified identifiers.
func NewIndex(db *sql.DB, table string, token string) (*Index, error) {
	if db == nil {
		return nil, fmt.Errorf("vecutil: db is nil")
	}
	m, err := metric.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("vecutil: %w", err)
	}
	ix := &Index{
		DB:           db,
		Table:        table,
		IDColumn:     DefaultIDColumn,
		VectorColumn: DefaultVectorColumn,
		Metric:       m,
	}
	if err := ix.validate(); err != nil {
		return nil, err
	}
	return ix, nil
}

func (ix *Index) validate() error {
	for _, name := range []string{ix.Table, ix.IDColumn, ix.VectorColumn} {
		if !identifier.MatchString(name) {
			return fmt.Errorf("vecutil: invalid identifier %q", name)
		}
	}
	return nil
}

// NearestQuery returns the ranking statement. It takes the query vector and
// the limit as arguments. The query vector is the left operand; rows whose
// distance is NULL (NaN in SQLite) are excluded.
func (ix *Index) NearestQuery() (string, error) {
	if err := ix.validate(); err != nil {
		return "", err
	}
	fn, ok := engine.FunctionFor(ix.Metric.Token())
	if !ok {
		return "", fmt.Errorf("vecutil: no function bound to metric %s", ix.Metric)
	}
	order := "ASC"
	if ix.Metric.HigherIsCloser() {
		order = "DESC"
	}
	return fmt.Sprintf(`SELECT id, distance FROM (
  SELECT %[1]s AS id, %[2]s(?, %[3]s) AS distance FROM %[4]s
) WHERE distance IS NOT NULL
ORDER BY distance %[5]s, id
LIMIT ?`, ix.IDColumn, fn, ix.VectorColumn, ix.Table, order), nil
}

// Upsert inserts or updates the vector stored for id.
func (ix *Index) Upsert(ctx context.Context, id string, vec []float32) error {
	if err := ix.validate(); err != nil {
		return err
	}
	blob, err := vector.EncodeEmbedding(vec)
	if err != nil {
		return err
	}
	stmt := fmt.Sprintf(`
INSERT INTO %[1]s(%[2]s, %[3]s)
VALUES (?, ?)
ON CONFLICT(%[2]s) DO UPDATE SET
  %[3]s = excluded.%[3]s`, ix.Table, ix.IDColumn, ix.VectorColumn)
	_, err = ix.DB.ExecContext(ctx, stmt, id, blob)
	return err
}

// Delete removes rows with the given ids.
func (ix *Index) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := ix.validate(); err != nil {
		return err
	}
	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", ix.Table, ix.IDColumn)
	for _, id := range ids {
		if _, err := ix.DB.ExecContext(ctx, stmt, id); err != nil {
			return err
		}
	}
	return nil
}

// Nearest returns up to k rows closest to query, closest first. When k <= 0,
// every row with a defined distance is returned.
func (ix *Index) Nearest(ctx context.Context, query []float32, k int) ([]Match, error) {
	if ix.DB == nil {
		return nil, fmt.Errorf("vecutil: DB is nil on Index")
	}
	q, err := ix.NearestQuery()
	if err != nil {
		return nil, err
	}
	blob, err := vector.EncodeEmbedding(query)
	if err != nil {
		return nil, err
	}
	limit := int64(k)
	if k <= 0 {
		limit = -1
	}
	rows, err := ix.DB.QueryContext(ctx, q, blob, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.Distance); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
