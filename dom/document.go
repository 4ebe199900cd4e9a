package dom

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

const (
	scriptPhase uint32 = iota
	layoutPhase
)

// Document owns the scheduling phase its elements' attributes are read and
// written under. Script-driven mutation happens with the document in the
// script phase; the layout thread reads through layout views only while the
// document is in the layout phase. The two phases never overlap, which is
// what makes the lock-free layout reads sound.
type Document struct {
	// Type is the document flavor, "html" or "xml".
	Type string

	phase      uint32
	generation uint64
	guards     int32
}

func NewDocument(docType string) *Document {
	return &Document{Type: docType}
}

func (d *Document) IsHTML() bool {
	return d.Type == "html"
}

// EnterLayoutPhase closes the document to mutation and opens it to layout
// reads. The owning thread must not hold any value guard when it parks for
// layout; doing so is a caller bug.
func (d *Document) EnterLayoutPhase() {
	if n := atomic.LoadInt32(&d.guards); n != 0 {
		panic(errors.Errorf("dom: entering layout phase with %d value guard(s) outstanding", n))
	}
	if !atomic.CompareAndSwapUint32(&d.phase, scriptPhase, layoutPhase) {
		panic(errors.New("dom: layout phase entered twice"))
	}
}

// ExitLayoutPhase reopens the document to mutation. Layout views captured
// before this call become stale and must not be used again.
func (d *Document) ExitLayoutPhase() {
	if !atomic.CompareAndSwapUint32(&d.phase, layoutPhase, scriptPhase) {
		panic(errors.New("dom: layout phase exited while not open"))
	}
	atomic.AddUint64(&d.generation, 1)
}

func (d *Document) inLayoutPhase() bool {
	return atomic.LoadUint32(&d.phase) == layoutPhase
}

func (d *Document) currentGeneration() uint64 {
	return atomic.LoadUint64(&d.generation)
}

func (d *Document) bumpGeneration() {
	atomic.AddUint64(&d.generation, 1)
}

func (d *Document) addGuard(delta int32) {
	atomic.AddInt32(&d.guards, delta)
}
