package parser

import (
	"time"

	"go.uber.org/zap"

	"github.com/jasmine-lang/jasmine/runtime/syntax"
)

// ParserOpt represents a parser configuration option
type ParserOpt func(*ParserConfig)

// TelemetryMode controls telemetry collection (production-safe)
type TelemetryMode int

const (
	TelemetryOff    TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                       // Token, event and node counts only
	TelemetryTiming                      // Counts + timing per phase
)

// ParserConfig holds parser configuration
type ParserConfig struct {
	maxDepth  int
	logger    *zap.Logger
	path      string
	telemetry TelemetryMode
}

func newConfig(opts []ParserOpt) *ParserConfig {
	config := &ParserConfig{
		maxDepth: syntax.DefaultMaxDepth,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// WithMaxDepth sets the maximum expression nesting depth for both the
// grammar and the walker
func WithMaxDepth(depth int) ParserOpt {
	return func(c *ParserConfig) {
		c.maxDepth = depth
	}
}

// WithLogger sets the logger that receives debug events
func WithLogger(logger *zap.Logger) ParserOpt {
	return func(c *ParserConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPath labels the unit being parsed in logs and rendered errors
func WithPath(path string) ParserOpt {
	return func(c *ParserConfig) {
		c.path = path
	}
}

// WithTelemetryBasic enables basic telemetry (counts only)
func WithTelemetryBasic() ParserOpt {
	return func(c *ParserConfig) {
		c.telemetry = TelemetryBasic
	}
}

// WithTelemetryTiming enables timing telemetry (counts + timing per phase)
func WithTelemetryTiming() ParserOpt {
	return func(c *ParserConfig) {
		c.telemetry = TelemetryTiming
	}
}

// ParseTelemetry holds parser performance metrics (production-safe)
type ParseTelemetry struct {
	GrammarTime time.Duration // Time spent lexing and running the grammar
	WalkTime    time.Duration // Time spent building the AST
	TotalTime   time.Duration // Total parse time
	TokenCount  int           // Number of tokens
	EventCount  int           // Number of grammar events
	NodeCount   int           // Number of top-level AST nodes
}
