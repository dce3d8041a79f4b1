/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package present

import (
	"fmt"
	"strings"
	"sync"
)

// Node is a single line in a resource tree. Content is the human-readable
// description of the resource and Indent is the fixed indentation level for
// its position in the hierarchy. A child's indent is always strictly greater
// than its parent's.
type Node interface {
	Content() string
	Indent() int
}

// Writer receives rendered tree lines. Implementations must be safe for use
// from a single goroutine; rendering is sequential.
type Writer interface {
	WriteLine(line string)
}

// StdoutWriter writes lines to standard output
type StdoutWriter struct{}

func (StdoutWriter) WriteLine(line string) {
	fmt.Println(line)
}

// BufferWriter captures lines in memory (for testing)
type BufferWriter struct {
	mu  sync.Mutex
	buf strings.Builder
}

// NewBufferWriter creates an empty buffer writer
func NewBufferWriter() *BufferWriter {
	return &BufferWriter{}
}

func (w *BufferWriter) WriteLine(line string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf.WriteString(line)
	w.buf.WriteByte('\n')
}

// String returns everything written so far
func (w *BufferWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

// StringOr dereferences s, substituting fallback when s is nil or empty.
// AWS describe responses model almost every field as an optional pointer;
// presenters use this to keep output lines total.
func StringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// Render writes a single node as an indented tree line
func Render(w Writer, n Node) {
	w.WriteLine(strings.Repeat(" ", n.Indent()) + "-> " + n.Content())
}

// RenderAll renders nodes in order
func RenderAll(w Writer, nodes []Node) {
	for _, n := range nodes {
		Render(w, n)
	}
}
