package mysql

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	sdk "github.com/flowline-project/sdk"
	"github.com/flowline-project/sdk/logging"
)

// FetchConfig provides construction-time settings for a FetchTask.
type FetchConfig struct {
	// SDKConfig provides the runtime namespace and logger.
	SDKConfig sdk.RuntimeConfig

	// Database holds the connection settings used for each invocation.
	Database ConnConfig

	// Query is the default statement executed when Run is not given one.
	Query string

	// Commit controls whether the transaction is committed by default.
	Commit bool

	// Fetch selects how many rows are returned: FetchOne, FetchMany, or
	// FetchAll. Defaults to FetchOne.
	Fetch string

	// FetchCount bounds FetchMany. Defaults to DefaultFetchCount.
	FetchCount int

	// CursorType selects the row shape: "cursor", "dictcursor", or a
	// RowBuilder implementation. Defaults to "cursor".
	CursorType any

	// Connector overrides the driver used to open connections.
	Connector Connector
}

// FetchOptions carries per-invocation overrides. A zero value defers to the
// construction-time defaults.
type FetchOptions struct {
	// Query overrides the default statement when non-empty.
	Query string

	// Fetch overrides the fetch mode when non-empty.
	Fetch string

	// FetchCount overrides the FetchMany bound when positive.
	FetchCount int

	// Commit overrides the default commit behavior when set.
	Commit *bool

	// Charset overrides the connection character set when non-empty.
	Charset string

	// CursorType overrides the row shape when non-nil.
	CursorType any
}

// FetchTask executes one statement against a MySQL database and returns its
// rows.
type FetchTask struct {
	runtime    sdk.RuntimeConfig
	conn       ConnConfig
	query      string
	commit     bool
	fetch      string
	fetchCount int
	cursorType any
	connector  Connector
}

// NewFetch creates a FetchTask with defaults applied.
func NewFetch(config FetchConfig) (*FetchTask, error) {
	runtime := config.SDKConfig
	if runtime.Namespace == "" {
		runtime.Namespace = sdk.DefaultNamespace
	}
	if runtime.Logger == nil {
		logger, err := logging.New(logging.Config{})
		if err != nil {
			return nil, err
		}
		runtime.Logger = logger
	}

	conn := config.Database
	if conn.Port == 0 {
		conn.Port = DefaultPort
	}
	if conn.Charset == "" {
		conn.Charset = DefaultCharset
	}

	fetch := config.Fetch
	if fetch == "" {
		fetch = FetchOne
	}

	fetchCount := config.FetchCount
	if fetchCount <= 0 {
		fetchCount = DefaultFetchCount
	}

	cursorType := config.CursorType
	if cursorType == nil {
		cursorType = "cursor"
	}

	connector := config.Connector
	if connector == nil {
		connector = NewConnector()
	}

	return &FetchTask{
		runtime:    runtime,
		conn:       conn,
		query:      config.Query,
		commit:     config.Commit,
		fetch:      fetch,
		fetchCount: fetchCount,
		cursorType: cursorType,
		connector:  connector,
	}, nil
}

// Run executes one statement and returns the fetched rows in the shape
// selected by the cursor type: a single row for FetchOne (nil when the
// result set is empty), or a []any of rows for FetchMany and FetchAll. A
// fresh connection is opened for the invocation and released on every exit
// path. Driver errors are logged at debug level and returned unchanged.
func (t *FetchTask) Run(opts FetchOptions) (any, error) {
	query := t.query
	if opts.Query != "" {
		query = opts.Query
	}
	if query == "" {
		return nil, errors.Join(sdk.ErrInvalidArgument, ErrMissingQuery)
	}

	fetch := t.fetch
	if opts.Fetch != "" {
		fetch = opts.Fetch
	}
	switch fetch {
	case FetchOne, FetchMany, FetchAll:
	default:
		return nil, errors.Join(sdk.ErrInvalidArgument, fmt.Errorf("%w, got %q", ErrInvalidFetchMode, fetch))
	}

	cursorType := t.cursorType
	if opts.CursorType != nil {
		cursorType = opts.CursorType
	}
	shape, err := resolveCursorType(cursorType)
	if err != nil {
		return nil, err
	}

	fetchCount := t.fetchCount
	if opts.FetchCount > 0 {
		fetchCount = opts.FetchCount
	}

	commit := t.commit
	if opts.Commit != nil {
		commit = *opts.Commit
	}

	cfg := t.conn
	if opts.Charset != "" {
		cfg.Charset = opts.Charset
	}

	log := t.runtime.Logger
	runID := uuid.NewString()

	conn, err := t.connector.Connect(cfg, shape)
	if err != nil {
		log.Debug(fmt.Sprintf("%s fetch %s: connect error: %v", t.runtime.Namespace, runID, err))
		return nil, err
	}

	cursor, err := conn.Cursor()
	if err != nil {
		_ = conn.Close()
		log.Debug(fmt.Sprintf("%s fetch %s: cursor error: %v", t.runtime.Namespace, runID, err))
		return nil, err
	}

	if err := cursor.Query(query); err != nil {
		_ = cursor.Close()
		_ = conn.Close()
		log.Debug(fmt.Sprintf("%s fetch %s: query error: %v", t.runtime.Namespace, runID, err))
		return nil, err
	}

	var results any
	switch fetch {
	case FetchAll:
		results, err = cursor.FetchAll()
	case FetchMany:
		results, err = cursor.FetchMany(fetchCount)
	default:
		results, err = cursor.FetchOne()
	}
	if err != nil {
		_ = cursor.Close()
		_ = conn.Close()
		log.Debug(fmt.Sprintf("%s fetch %s: fetch error: %v", t.runtime.Namespace, runID, err))
		return nil, err
	}

	if commit {
		if err := conn.Commit(); err != nil {
			_ = cursor.Close()
			_ = conn.Close()
			log.Debug(fmt.Sprintf("%s fetch %s: commit error: %v", t.runtime.Namespace, runID, err))
			return nil, err
		}
	}

	if err := cursor.Close(); err != nil {
		_ = conn.Close()
		log.Debug(fmt.Sprintf("%s fetch %s: close error: %v", t.runtime.Namespace, runID, err))
		return nil, err
	}

	if err := conn.Close(); err != nil {
		log.Debug(fmt.Sprintf("%s fetch %s: close error: %v", t.runtime.Namespace, runID, err))
		return nil, err
	}

	log.Debug(fmt.Sprintf("%s fetch %s: fetched with mode %q", t.runtime.Namespace, runID, fetch))
	return results, nil
}
