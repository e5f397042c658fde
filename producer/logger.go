package producer

import (
	"sync"

	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/producer/critsec"
)

// logger is the process-wide, one-shot-initialized holder spec §9
// describes: a single Dispatcher and pointer width, guarded by a
// platform-supplied critical section, with no re-initialization path.
type logger struct {
	dispatcher Dispatcher
	width      ids.PointerWidth
	cs         critsec.Interface
}

var (
	globalOnce sync.Once
	global     *logger
)

// Init installs the process-wide logger. Only the first call across the
// process's lifetime takes effect; subsequent calls are no-ops, matching
// the "expose no re-initialization path" design note (spec §9).
func Init(d Dispatcher, width ids.PointerWidth, cs critsec.Interface) {
	globalOnce.Do(func() {
		global = &logger{dispatcher: d, width: width, cs: cs}
	})
}

// Session is the handle an acquire()/release() pair hands out. It owns the
// critical section for its lifetime; all frame bytes written through its
// Formatter land in strict program order (spec §5).
type Session struct {
	l *logger
	f *Formatter
}

// Acquire blocks until the critical section is free, then returns a
// Session whose Formatter exclusively owns the logger's Dispatcher until
// Release is called. Acquire panics if Init was never called: there is no
// well-defined Dispatcher to write through.
func Acquire() *Session {
	if global == nil {
		panic("producer: logger.Init was never called")
	}
	global.cs.Enter()
	return &Session{l: global, f: NewFormatter(global.dispatcher, global.width)}
}

// Formatter returns the session's exclusively-owned Formatter.
func (s *Session) Formatter() *Formatter { return s.f }

// Release exits the critical section. It does not flush the dispatcher;
// flushing is the transport's problem (spec §5).
func (s *Session) Release() {
	s.l.cs.Exit()
}
