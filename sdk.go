package sdk

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "flowline"

// Logger is the structured logging collaborator shared by task packages.
// The logging package provides the default implementation; tests may supply
// their own to capture emitted diagnostics.
type Logger interface {
	Info(message string)
	Warn(message string)
	Error(message string)
	Debug(message string)
	Trace(message string)
}

// Config provides configuration options for SDK initialization.
type Config struct {
	// Namespace controls the namespace used to scope task diagnostics.
	// If empty, DefaultNamespace is used.
	Namespace string

	// Logger receives diagnostics emitted by task packages. If nil, a
	// no-op logger is used.
	Logger Logger
}

// RuntimeConfig carries configuration that is used during creation of SDK components.
type RuntimeConfig struct {
	// Namespace is the namespace used to scope task diagnostics.
	Namespace string

	// Logger receives diagnostics emitted by task packages.
	Logger Logger
}

// SDK represents the initialized runtime shared by task clients.
type SDK struct {
	// runtime holds the current runtime configuration snapshot.
	runtime RuntimeConfig
}

// New initializes the SDK runtime configuration shared by task clients.
func New(config Config) (*SDK, error) {
	// Create runtime configuration with defaults
	cfg := RuntimeConfig{Namespace: DefaultNamespace, Logger: noopLogger{}}

	// Override defaults with provided configuration
	if config.Namespace != "" {
		cfg.Namespace = config.Namespace
	}
	if config.Logger != nil {
		cfg.Logger = config.Logger
	}

	return &SDK{runtime: cfg}, nil
}

// Config returns the current runtime configuration snapshot.
func (s *SDK) Config() RuntimeConfig { return s.runtime }

// noopLogger discards all diagnostics.
type noopLogger struct{}

func (noopLogger) Info(message string)  {}
func (noopLogger) Warn(message string)  {}
func (noopLogger) Error(message string) {}
func (noopLogger) Debug(message string) {}
func (noopLogger) Trace(message string) {}
