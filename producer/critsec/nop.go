package critsec

import "sync"

// NopCriticalSection is a plain mutex, the default for embedded/bare-metal
// builds that supply their own true interrupt-disable primitive and only
// need the host-testable logger path serialized against concurrent Go
// goroutines. It is not re-entrant: calling Enter twice from the same
// goroutine deadlocks.
type NopCriticalSection struct {
	mu sync.Mutex
}

func (c *NopCriticalSection) Enter() { c.mu.Lock() }
func (c *NopCriticalSection) Exit()  { c.mu.Unlock() }
