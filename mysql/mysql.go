package mysql

import (
	"errors"
	"fmt"
	"strings"

	sdk "github.com/flowline-project/sdk"
)

const (
	// DefaultPort is the MySQL port used when none is configured.
	DefaultPort = 3306

	// DefaultCharset is the connection character set used when none is
	// configured.
	DefaultCharset = "utf8mb4"

	// DefaultFetchCount bounds FetchMany when no count is configured.
	DefaultFetchCount = 10
)

// Fetch modes accepted by FetchTask.
const (
	FetchOne  = "one"
	FetchMany = "many"
	FetchAll  = "all"
)

var (
	// ErrMissingQuery indicates no query was resolvable from either the
	// construction-time default or the invocation options.
	ErrMissingQuery = errors.New("a query string must be provided")

	// ErrInvalidFetchMode indicates a fetch mode outside the accepted set.
	ErrInvalidFetchMode = errors.New("the fetch mode must be one of ('one', 'many', 'all')")

	// ErrInvalidCursorType indicates a row-shape selector that is neither a
	// recognized name nor a RowBuilder implementation.
	ErrInvalidCursorType = errors.New("cursor type should be one of ('cursor', 'dictcursor') or a RowBuilder implementation")

	// ErrNoResultSet is returned by fetch operations issued before Query.
	ErrNoResultSet = errors.New("no open result set")
)

// ConnConfig describes one database connection. Password is treated as a
// secret and never appears in diagnostics.
type ConnConfig struct {
	// Host is the database host address.
	Host string

	// Port is the database port. Task constructors default it to DefaultPort.
	Port int

	// User is the user name used to authenticate.
	User string

	// Password is the password used to authenticate.
	Password string

	// Database is the name of the database to use.
	Database string

	// Charset is the connection character set. Task constructors default it
	// to DefaultCharset.
	Charset string
}

// Connector opens one database connection per task invocation.
type Connector interface {
	// Connect opens a connection configured with the given row shape.
	Connect(cfg ConnConfig, shape RowBuilder) (Conn, error)
}

// Conn is a single open database connection holding one transaction.
type Conn interface {
	// Cursor returns a handle for executing one statement and reading its
	// rows. The cursor must be closed after use.
	Cursor() (Cursor, error)

	// Commit commits the connection's transaction.
	Commit() error

	// Close releases the connection. Uncommitted work is discarded. Safe
	// to call on every exit path.
	Close() error
}

// Cursor executes one statement and iterates its result rows.
type Cursor interface {
	// Execute runs a statement that returns no rows and reports the number
	// of affected rows.
	Execute(query string) (int64, error)

	// Query runs a statement whose rows are read by the fetch operations.
	Query(query string) error

	// FetchOne returns the next row, or a nil row when the result set is
	// exhausted.
	FetchOne() (any, error)

	// FetchMany returns up to n remaining rows.
	FetchMany(n int) ([]any, error)

	// FetchAll returns every remaining row.
	FetchAll() ([]any, error)

	// Close releases the cursor.
	Close() error
}

// RowBuilder turns one fetched record into its caller-visible shape.
type RowBuilder interface {
	BuildRow(columns []string, values []any) any
}

// TupleRows exposes each row as a []any in column order. Selected by the
// cursor type name "cursor".
type TupleRows struct{}

// BuildRow returns the scanned values unchanged.
func (TupleRows) BuildRow(columns []string, values []any) any { return values }

// DictRows exposes each row as a map keyed by column name. Selected by the
// cursor type name "dictcursor".
type DictRows struct{}

// BuildRow maps each column name to its value.
func (DictRows) BuildRow(columns []string, values []any) any {
	row := make(map[string]any, len(columns))
	for i, column := range columns {
		if i < len(values) {
			row[column] = values[i]
		}
	}
	return row
}

// resolveCursorType maps a selector to its RowBuilder. Names are matched
// case-insensitively; any RowBuilder implementation is accepted as-is.
func resolveCursorType(selector any) (RowBuilder, error) {
	switch s := selector.(type) {
	case nil:
		return TupleRows{}, nil
	case string:
		switch strings.ToLower(s) {
		case "cursor":
			return TupleRows{}, nil
		case "dictcursor":
			return DictRows{}, nil
		}
	case RowBuilder:
		return s, nil
	}

	return nil, errors.Join(sdk.ErrTypeMismatch, fmt.Errorf("%w, got %v", ErrInvalidCursorType, selector))
}
