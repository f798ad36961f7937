package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	sdk "github.com/flowline-project/sdk"
)

// DefaultLevel is used when no explicit level is provided.
const DefaultLevel = "info"

// Client exposes convenience helpers for emitting log entries.
type Client interface {
	Info(message string)
	Warn(message string)
	Error(message string)
	Debug(message string)
	Trace(message string)
}

// Config controls how a Client instance emits log entries.
type Config struct {
	// Level sets the minimum level emitted ("trace", "debug", "info",
	// "warn", "error"). If empty, DefaultLevel is used.
	Level string

	// Output overrides the destination for log entries. If nil, entries
	// are written to stderr.
	Output io.Writer
}

// client implements Client on top of a logrus logger.
type client struct {
	log *logrus.Logger
}

// New creates a Client that emits structured log entries via logrus.
func New(cfg Config) (Client, error) {
	level := cfg.Level
	if level == "" {
		level = DefaultLevel
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	log := logrus.New()
	log.SetLevel(parsed)
	log.SetOutput(out)

	return &client{log: log}, nil
}

func (c *client) Info(message string)  { c.log.Info(message) }
func (c *client) Warn(message string)  { c.log.Warn(message) }
func (c *client) Error(message string) { c.log.Error(message) }
func (c *client) Debug(message string) { c.log.Debug(message) }
func (c *client) Trace(message string) { c.log.Trace(message) }

// Compile-time check: ensure the client satisfies the SDK logger contract.
var _ sdk.Logger = (Client)(nil)
