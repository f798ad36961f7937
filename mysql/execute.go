package mysql

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	sdk "github.com/flowline-project/sdk"
	"github.com/flowline-project/sdk/logging"
)

// ExecuteConfig provides construction-time settings for an ExecuteTask.
type ExecuteConfig struct {
	// SDKConfig provides the runtime namespace and logger.
	SDKConfig sdk.RuntimeConfig

	// Database holds the connection settings used for each invocation.
	Database ConnConfig

	// Query is the default statement executed when Run is not given one.
	Query string

	// Commit controls whether the transaction is committed by default.
	Commit bool

	// Connector overrides the driver used to open connections.
	Connector Connector
}

// ExecuteOptions carries per-invocation overrides. A zero value defers to
// the construction-time defaults.
type ExecuteOptions struct {
	// Query overrides the default statement when non-empty.
	Query string

	// Commit overrides the default commit behavior when set.
	Commit *bool

	// Charset overrides the connection character set when non-empty.
	Charset string
}

// ExecuteTask executes one statement against a MySQL database and reports
// the number of affected rows.
type ExecuteTask struct {
	runtime   sdk.RuntimeConfig
	conn      ConnConfig
	query     string
	commit    bool
	connector Connector
}

// NewExecute creates an ExecuteTask with defaults applied.
func NewExecute(config ExecuteConfig) (*ExecuteTask, error) {
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

	connector := config.Connector
	if connector == nil {
		connector = NewConnector()
	}

	return &ExecuteTask{
		runtime:   runtime,
		conn:      conn,
		query:     config.Query,
		commit:    config.Commit,
		connector: connector,
	}, nil
}

// Run executes one statement and returns the number of affected rows. A
// fresh connection is opened for the invocation and released on every exit
// path. Driver errors are logged at debug level and returned unchanged.
func (t *ExecuteTask) Run(opts ExecuteOptions) (int64, error) {
	query := t.query
	if opts.Query != "" {
		query = opts.Query
	}
	if query == "" {
		return 0, errors.Join(sdk.ErrInvalidArgument, ErrMissingQuery)
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

	conn, err := t.connector.Connect(cfg, TupleRows{})
	if err != nil {
		log.Debug(fmt.Sprintf("%s execute %s: connect error: %v", t.runtime.Namespace, runID, err))
		return 0, err
	}

	cursor, err := conn.Cursor()
	if err != nil {
		_ = conn.Close()
		log.Debug(fmt.Sprintf("%s execute %s: cursor error: %v", t.runtime.Namespace, runID, err))
		return 0, err
	}

	affected, err := cursor.Execute(query)
	if err != nil {
		_ = cursor.Close()
		_ = conn.Close()
		log.Debug(fmt.Sprintf("%s execute %s: execute error: %v", t.runtime.Namespace, runID, err))
		return 0, err
	}

	if commit {
		if err := conn.Commit(); err != nil {
			_ = cursor.Close()
			_ = conn.Close()
			log.Debug(fmt.Sprintf("%s execute %s: commit error: %v", t.runtime.Namespace, runID, err))
			return 0, err
		}
	}

	if err := cursor.Close(); err != nil {
		_ = conn.Close()
		log.Debug(fmt.Sprintf("%s execute %s: close error: %v", t.runtime.Namespace, runID, err))
		return 0, err
	}

	if err := conn.Close(); err != nil {
		log.Debug(fmt.Sprintf("%s execute %s: close error: %v", t.runtime.Namespace, runID, err))
		return 0, err
	}

	log.Debug(fmt.Sprintf("%s execute %s: affected %d rows", t.runtime.Namespace, runID, affected))
	return affected, nil
}
