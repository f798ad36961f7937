package mysql

import (
	"database/sql"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
)

// DriverConnector is the database/sql-backed Connector used by default. It
// opens one fresh connection per invocation and runs everything inside a
// single transaction so the commit flag controls whether work is kept.
type DriverConnector struct {
	// open creates the database handle for a DSN; overridable in tests.
	open func(dsn string) (*sql.DB, error)
}

// NewConnector creates a Connector backed by the go-sql-driver MySQL driver.
func NewConnector() *DriverConnector {
	return &DriverConnector{
		open: func(dsn string) (*sql.DB, error) {
			return sql.Open("mysql", dsn)
		},
	}
}

// Connect opens a connection, verifies it, and begins the transaction.
func (c *DriverConnector) Connect(cfg ConnConfig, shape RowBuilder) (Conn, error) {
	db, err := c.open(formatDSN(cfg))
	if err != nil {
		return nil, err
	}

	// One connection per invocation, never reused across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &driverConn{db: db, tx: tx, shape: shape}, nil
}

// formatDSN builds the driver DSN from the connection settings.
func formatDSN(cfg ConnConfig) string {
	dc := mysqldriver.NewConfig()
	dc.Net = "tcp"
	dc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	dc.User = cfg.User
	dc.Passwd = cfg.Password
	dc.DBName = cfg.Database
	if cfg.Charset != "" {
		dc.Params = map[string]string{"charset": cfg.Charset}
	}
	return dc.FormatDSN()
}

// driverConn holds the open handle and its transaction.
type driverConn struct {
	db        *sql.DB
	tx        *sql.Tx
	shape     RowBuilder
	committed bool
	closed    bool
}

func (c *driverConn) Cursor() (Cursor, error) {
	return &driverCursor{tx: c.tx, shape: c.shape}, nil
}

func (c *driverConn) Commit() error {
	if err := c.tx.Commit(); err != nil {
		return err
	}
	c.committed = true
	return nil
}

// Close rolls back uncommitted work and releases the connection. Calling it
// again is a no-op.
func (c *driverConn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if !c.committed {
		_ = c.tx.Rollback()
	}
	return c.db.Close()
}

// driverCursor executes statements on the connection's transaction.
type driverCursor struct {
	tx      *sql.Tx
	shape   RowBuilder
	rows    *sql.Rows
	columns []string
}

func (c *driverCursor) Execute(query string) (int64, error) {
	result, err := c.tx.Exec(query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (c *driverCursor) Query(query string) error {
	rows, err := c.tx.Query(query)
	if err != nil {
		return err
	}

	columns, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return err
	}

	c.rows = rows
	c.columns = columns
	return nil
}

// next scans the next record, converting []byte cells to strings so rows
// carry comparable values regardless of the driver's text encoding.
func (c *driverCursor) next() ([]any, bool, error) {
	if !c.rows.Next() {
		if err := c.rows.Err(); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}

	values := make([]any, len(c.columns))
	pointers := make([]any, len(c.columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	if err := c.rows.Scan(pointers...); err != nil {
		return nil, false, err
	}

	for i, v := range values {
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}

	return values, true, nil
}

func (c *driverCursor) FetchOne() (any, error) {
	if c.rows == nil {
		return nil, ErrNoResultSet
	}

	values, ok, err := c.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return c.shape.BuildRow(c.columns, values), nil
}

func (c *driverCursor) FetchMany(n int) ([]any, error) {
	if c.rows == nil {
		return nil, ErrNoResultSet
	}

	results := make([]any, 0, n)
	for len(results) < n {
		values, ok, err := c.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		results = append(results, c.shape.BuildRow(c.columns, values))
	}
	return results, nil
}

func (c *driverCursor) FetchAll() ([]any, error) {
	if c.rows == nil {
		return nil, ErrNoResultSet
	}

	var results []any
	for {
		values, ok, err := c.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return results, nil
		}
		results = append(results, c.shape.BuildRow(c.columns, values))
	}
}

func (c *driverCursor) Close() error {
	if c.rows == nil {
		return nil
	}
	rows := c.rows
	c.rows = nil
	return rows.Close()
}

// Compile-time checks: ensure driver types satisfy the capability set.
var (
	_ Connector = (*DriverConnector)(nil)
	_ Conn      = (*driverConn)(nil)
	_ Cursor    = (*driverCursor)(nil)
)
