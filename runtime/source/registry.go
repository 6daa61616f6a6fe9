// Package source keeps the text of every parsed source unit so diagnostics
// carrying a source id can be traced back to a file and line.
package source

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/jasmine-lang/jasmine/core/ast"
	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/runtime/parser"
)

// Unit is one registered source text
type Unit struct {
	ID     int
	Path   string
	Text   string
	Digest [32]byte // BLAKE2b-256 of Text
}

// Registry maps source ids to units. Ids start at 1; 0 is left for
// throwaway parses that never get registered. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	units map[int]*Unit
	last  map[string]int // path -> id of its latest unit
	next  int
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		units: make(map[int]*Unit),
		last:  make(map[string]int),
		next:  1,
	}
}

// Add registers text under path and returns its id. Re-adding unchanged
// text for the same path returns the existing id, so repeated loads of a
// file do not grow the registry.
func (r *Registry) Add(path, text string) int {
	digest := blake2b.Sum256([]byte(text))

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.last[path]; ok && r.units[id].Digest == digest {
		return id
	}

	id := r.next
	r.next++
	r.units[id] = &Unit{ID: id, Path: path, Text: text, Digest: digest}
	r.last[path] = id
	return id
}

// Get returns the unit registered under id
func (r *Registry) Get(id int) (Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.units[id]
	if !ok {
		return Unit{}, false
	}
	return *u, true
}

// Len returns the number of registered units
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}

// Trace renders msg at offset of unit id
func (r *Registry) Trace(id, offset int, msg string) (string, error) {
	u, ok := r.Get(id)
	if !ok {
		return "", fmt.Errorf("unknown source id %d", id)
	}
	if offset < 0 || offset > len(u.Text) {
		return "", fmt.Errorf("offset %d out of range for %s (%d bytes)", offset, u.label(), len(u.Text))
	}
	return diag.Trace(u.Text, u.prefix(), offset, msg), nil
}

// Render formats err with a trace into the unit it came from. Errors that
// are not diagnostics, or whose unit is unknown, render as their message.
func (r *Registry) Render(err error) string {
	var de *diag.Error
	if !errors.As(err, &de) {
		return err.Error()
	}
	u, ok := r.Get(de.SourceID)
	if !ok || de.Kind == diag.KindNarrow {
		return err.Error()
	}
	return de.Render(u.Text, u.prefix())
}

// Parse registers text under path and parses it with the unit's id
func (r *Registry) Parse(path, text string, opts ...parser.ParserOpt) (int, []ast.Node, error) {
	id := r.Add(path, text)
	opts = append([]parser.ParserOpt{parser.WithPath(path)}, opts...)
	nodes, err := parser.Parse(text, id, opts...)
	return id, nodes, err
}

// prefix is the path as printed in front of row and column
func (u *Unit) prefix() string {
	if u.Path == "" {
		return ""
	}
	return u.Path + ":"
}

func (u *Unit) label() string {
	if u.Path == "" {
		return fmt.Sprintf("source %d", u.ID)
	}
	return u.Path
}
