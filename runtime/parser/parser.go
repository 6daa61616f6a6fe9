// Package parser turns Jasmine source into AST nodes.
//
// The grammar (runtime/syntax) produces a tree of rule-tagged pairs; the
// walker in this package folds constants, classifies series literals and
// decomposes queries while building ast.Node values. Parsing stops at the
// first error and never returns a partial AST.
package parser

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jasmine-lang/jasmine/core/ast"
	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/runtime/syntax"
)

// Unit is the result of parsing one source unit
type Unit struct {
	SourceID  int
	Path      string
	Nodes     []ast.Node      // one node per top-level statement
	Telemetry *ParseTelemetry // nil if disabled
}

// Parse parses source and returns its top-level nodes. Every error is a
// *diag.Error carrying sourceID.
func Parse(source string, sourceID int, opts ...ParserOpt) ([]ast.Node, error) {
	unit, err := ParseUnit(source, sourceID, opts...)
	if err != nil {
		return nil, err
	}
	return unit.Nodes, nil
}

// ParseString is a convenience wrapper for tests and single-unit hosts
func ParseString(source string, opts ...ParserOpt) ([]ast.Node, error) {
	return Parse(source, 0, opts...)
}

// ParseUnit parses source like Parse and also reports telemetry when enabled
func ParseUnit(source string, sourceID int, opts ...ParserOpt) (*Unit, error) {
	config := newConfig(opts)
	log := config.logger.With(zap.Int("source_id", sourceID))
	if config.path != "" {
		log = log.With(zap.String("path", config.path))
	}

	var telemetry *ParseTelemetry
	var startTotal time.Time
	if config.telemetry >= TelemetryBasic {
		telemetry = &ParseTelemetry{}
		if config.telemetry >= TelemetryTiming {
			startTotal = time.Now()
		}
	}

	tree, err := syntax.Parse(source, syntax.WithMaxDepth(config.maxDepth))
	if err != nil {
		log.Debug("grammar failed", zap.Error(err))
		return nil, withSource(err, sourceID)
	}

	if config.telemetry >= TelemetryBasic {
		telemetry.TokenCount = len(tree.Tokens)
		telemetry.EventCount = len(tree.Events)
		if config.telemetry >= TelemetryTiming {
			telemetry.GrammarTime = time.Since(startTotal)
		}
	}

	var startWalk time.Time
	if config.telemetry >= TelemetryTiming {
		startWalk = time.Now()
	}

	w := &walker{
		source:   source,
		sourceID: sourceID,
		maxDepth: config.maxDepth,
		log:      log,
	}

	var nodes []ast.Node
	for _, pair := range tree.Pairs() {
		if pair.Rule != syntax.RuleExp {
			continue // EOI
		}
		node, err := w.exp(pair)
		if err != nil {
			log.Debug("walk failed", zap.Error(err))
			return nil, withSource(err, sourceID)
		}
		nodes = append(nodes, node)
	}

	if config.telemetry >= TelemetryBasic {
		telemetry.NodeCount = len(nodes)
		if config.telemetry >= TelemetryTiming {
			telemetry.WalkTime = time.Since(startWalk)
			telemetry.TotalTime = time.Since(startTotal)
		}
	}

	log.Debug("parsed unit", zap.Int("statements", len(nodes)))

	return &Unit{
		SourceID:  sourceID,
		Path:      config.path,
		Nodes:     nodes,
		Telemetry: telemetry,
	}, nil
}

// withSource stamps the source unit on a diagnostic
func withSource(err error, sourceID int) error {
	var de *diag.Error
	if errors.As(err, &de) {
		de.SourceID = sourceID
	}
	return err
}
