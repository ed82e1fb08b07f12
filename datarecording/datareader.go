package datarecording

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
)

// QueryParams narrows and orders the rows returned by DataReader.Query.
type QueryParams struct {
	// Where is an SQL condition with ? placeholders, for example
	// "Tick > ? AND Kind = ?".
	Where string

	// Args fill the placeholders of Where.
	Args []any

	// Limit caps the number of rows returned; 0 returns all of them. Offset
	// only applies together with a Limit.
	Limit  int
	Offset int

	// OrderBy is an SQL ordering such as "Tick DESC".
	OrderBy string
}

// DataReader reads back tables written by a DataRecorder.
type DataReader interface {
	// MapTable tells the reader which struct type the rows of a table decode
	// into. A table must be mapped before it is queried.
	MapTable(tableName string, sampleEntry any)

	// ListTables returns the mapped tables in the order they were mapped.
	ListTables() []string

	// Query returns the matching rows as pointers to new structs of the
	// mapped type, along with the number of rows matching params.Where
	// regardless of Limit and Offset.
	Query(ctx context.Context, tableName string, params QueryParams) (
		results []any,
		totalCount int,
		err error,
	)

	Close() error
}

type mappedTable struct {
	typ    reflect.Type
	fields map[string]int
}

type sqliteReader struct {
	db     *sql.DB
	tables map[string]mappedTable
	order  []string
}

// NewReader opens the SQLite file at dbFilename.
func NewReader(dbFilename string) (DataReader, error) {
	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbFilename, err)
	}

	return NewReaderWithDB(db), nil
}

// NewReaderWithDB reads from an open database. Close closes db.
func NewReaderWithDB(db *sql.DB) DataReader {
	return &sqliteReader{
		db:     db,
		tables: make(map[string]mappedTable),
	}
}

func (r *sqliteReader) MapTable(tableName string, sampleEntry any) {
	typ := reflect.TypeOf(sampleEntry)

	fields := make(map[string]int, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		fields[typ.Field(i).Name] = i
	}

	if _, mapped := r.tables[tableName]; !mapped {
		r.order = append(r.order, tableName)
	}

	r.tables[tableName] = mappedTable{typ: typ, fields: fields}
}

func (r *sqliteReader) ListTables() []string {
	return append([]string(nil), r.order...)
}

func (r *sqliteReader) Query(
	ctx context.Context,
	tableName string,
	params QueryParams,
) ([]any, int, error) {
	table, ok := r.tables[tableName]
	if !ok {
		return nil, 0, fmt.Errorf("table %s is not mapped", tableName)
	}

	var total int
	err := r.db.QueryRowContext(ctx, countSQL(tableName, params),
		params.Args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", tableName, err)
	}

	rows, err := r.db.QueryContext(ctx, selectSQL(tableName, params),
		params.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query %s: %w", tableName, err)
	}
	defer rows.Close()

	results, err := table.scan(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("scan %s: %w", tableName, err)
	}

	return results, total, nil
}

func (r *sqliteReader) Close() error {
	return r.db.Close()
}

func countSQL(tableName string, params QueryParams) string {
	q := &strings.Builder{}
	fmt.Fprintf(q, "SELECT COUNT(*) FROM %s", tableName)
	writeWhere(q, params)

	return q.String()
}

func selectSQL(tableName string, params QueryParams) string {
	q := &strings.Builder{}
	fmt.Fprintf(q, "SELECT * FROM %s", tableName)
	writeWhere(q, params)

	if params.OrderBy != "" {
		fmt.Fprintf(q, " ORDER BY %s", params.OrderBy)
	}

	if params.Limit > 0 {
		fmt.Fprintf(q, " LIMIT %d", params.Limit)

		if params.Offset > 0 {
			fmt.Fprintf(q, " OFFSET %d", params.Offset)
		}
	}

	return q.String()
}

func writeWhere(q *strings.Builder, params QueryParams) {
	if params.Where != "" {
		fmt.Fprintf(q, " WHERE %s", params.Where)
	}
}

// scan decodes every row into a new struct. Columns without a matching
// field are read and dropped.
func (t mappedTable) scan(rows *sql.Rows) ([]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []any
	for rows.Next() {
		entry := reflect.New(t.typ)
		targets := make([]any, len(columns))

		for i, column := range columns {
			idx, ok := t.fields[column]
			if !ok {
				targets[i] = new(any)
				continue
			}

			targets[i] = entry.Elem().Field(idx).Addr().Interface()
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}

		results = append(results, entry.Interface())
	}

	return results, rows.Err()
}
