package mock

import (
	"github.com/flowline-project/sdk/mysql"
)

// Connector simulates the driver capability set with call recording and
// configurable responses.
type Connector struct {
	// Columns are the column names exposed to fetch operations.
	Columns []string

	// Rows holds the raw records served to fetch operations. Each record
	// is shaped through the RowBuilder supplied to Connect.
	Rows [][]any

	// RowsAffected is returned by Execute.
	RowsAffected int64

	// ConnectError, when set, is returned by Connect.
	ConnectError error

	// ExecuteError, when set, is returned by Execute and Query.
	ExecuteError error

	// CommitError, when set, is returned by Commit.
	CommitError error

	// Calls records each driver operation observed by the mock, in order.
	Calls []Call

	// Connects counts connections opened.
	Connects int

	// Commits counts successful commits.
	Commits int

	// Closes counts connection close calls.
	Closes int

	// LastConfig is the connection configuration from the latest Connect.
	LastConfig mysql.ConnConfig

	// LastShape is the row shape from the latest Connect.
	LastShape mysql.RowBuilder
}

// Call captures a single driver operation issued through the mock.
type Call struct {
	// Op is the operation name: connect, cursor, execute, query, fetchone,
	// fetchmany, fetchall, commit, close-cursor, or close.
	Op string

	// Query is the statement text for execute and query operations.
	Query string

	// Count is the requested row count for fetchmany operations.
	Count int
}

// Config represents the configuration for creating a mock Connector.
type Config struct {
	// Columns are the column names exposed to fetch operations.
	Columns []string

	// Rows holds the raw records served to fetch operations.
	Rows [][]any

	// RowsAffected is returned by Execute.
	RowsAffected int64

	// ConnectError, when set, is returned by Connect.
	ConnectError error

	// ExecuteError, when set, is returned by Execute and Query.
	ExecuteError error

	// CommitError, when set, is returned by Commit.
	CommitError error
}

// New creates a new mock Connector based on the provided Config.
func New(config Config) *Connector {
	return &Connector{
		Columns:      config.Columns,
		Rows:         config.Rows,
		RowsAffected: config.RowsAffected,
		ConnectError: config.ConnectError,
		ExecuteError: config.ExecuteError,
		CommitError:  config.CommitError,
	}
}

// Ops returns the recorded operation names in order, for asserting on the
// connect/execute/commit/close sequence.
func (m *Connector) Ops() []string {
	ops := make([]string, len(m.Calls))
	for i, call := range m.Calls {
		ops[i] = call.Op
	}
	return ops
}

// Queries returns the statement text of every execute and query operation.
func (m *Connector) Queries() []string {
	var queries []string
	for _, call := range m.Calls {
		if call.Op == "execute" || call.Op == "query" {
			queries = append(queries, call.Query)
		}
	}
	return queries
}

// Connect records the call and returns a mock connection, or ConnectError.
func (m *Connector) Connect(cfg mysql.ConnConfig, shape mysql.RowBuilder) (mysql.Conn, error) {
	m.Calls = append(m.Calls, Call{Op: "connect"})

	if m.ConnectError != nil {
		return nil, m.ConnectError
	}

	m.Connects++
	m.LastConfig = cfg
	m.LastShape = shape

	return &conn{mock: m, shape: shape}, nil
}

// conn is the mock connection handed out by Connect.
type conn struct {
	mock  *Connector
	shape mysql.RowBuilder
}

func (c *conn) Cursor() (mysql.Cursor, error) {
	c.mock.Calls = append(c.mock.Calls, Call{Op: "cursor"})
	return &cursor{mock: c.mock, shape: c.shape}, nil
}

func (c *conn) Commit() error {
	c.mock.Calls = append(c.mock.Calls, Call{Op: "commit"})
	if c.mock.CommitError != nil {
		return c.mock.CommitError
	}
	c.mock.Commits++
	return nil
}

func (c *conn) Close() error {
	c.mock.Calls = append(c.mock.Calls, Call{Op: "close"})
	c.mock.Closes++
	return nil
}

// cursor serves the configured rows, shaping each through the RowBuilder
// supplied to Connect.
type cursor struct {
	mock  *Connector
	shape mysql.RowBuilder
	pos   int
}

func (c *cursor) Execute(query string) (int64, error) {
	c.mock.Calls = append(c.mock.Calls, Call{Op: "execute", Query: query})
	if c.mock.ExecuteError != nil {
		return 0, c.mock.ExecuteError
	}
	return c.mock.RowsAffected, nil
}

func (c *cursor) Query(query string) error {
	c.mock.Calls = append(c.mock.Calls, Call{Op: "query", Query: query})
	if c.mock.ExecuteError != nil {
		return c.mock.ExecuteError
	}
	return nil
}

func (c *cursor) FetchOne() (any, error) {
	c.mock.Calls = append(c.mock.Calls, Call{Op: "fetchone"})
	if c.pos >= len(c.mock.Rows) {
		return nil, nil
	}

	row := c.shape.BuildRow(c.mock.Columns, c.mock.Rows[c.pos])
	c.pos++
	return row, nil
}

func (c *cursor) FetchMany(n int) ([]any, error) {
	c.mock.Calls = append(c.mock.Calls, Call{Op: "fetchmany", Count: n})

	results := make([]any, 0, n)
	for len(results) < n && c.pos < len(c.mock.Rows) {
		results = append(results, c.shape.BuildRow(c.mock.Columns, c.mock.Rows[c.pos]))
		c.pos++
	}
	return results, nil
}

func (c *cursor) FetchAll() ([]any, error) {
	c.mock.Calls = append(c.mock.Calls, Call{Op: "fetchall"})

	var results []any
	for c.pos < len(c.mock.Rows) {
		results = append(results, c.shape.BuildRow(c.mock.Columns, c.mock.Rows[c.pos]))
		c.pos++
	}
	return results, nil
}

func (c *cursor) Close() error {
	c.mock.Calls = append(c.mock.Calls, Call{Op: "close-cursor"})
	return nil
}

// Compile-time checks: ensure the mock implements the capability set.
var (
	_ mysql.Connector = (*Connector)(nil)
	_ mysql.Conn      = (*conn)(nil)
	_ mysql.Cursor    = (*cursor)(nil)
)
