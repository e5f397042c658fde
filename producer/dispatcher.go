package producer

// Dispatcher is the abstract byte sink every encoder writes through. It is
// infallible by contract (spec §4.4, §7): backpressure and transport
// failures are the concrete implementation's problem, never the
// formatter's. A Dispatcher may be backed by a UART, a test buffer guarded
// by a critical section, or a shared ring buffer.
type Dispatcher interface {
	Write(p []byte)
}

// BufferDispatcher is an in-memory Dispatcher, useful for tests and for
// hosts that batch frames before handing them to a real transport.
type BufferDispatcher struct {
	buf []byte
}

// Write appends p to the buffer.
func (d *BufferDispatcher) Write(p []byte) {
	d.buf = append(d.buf, p...)
}

// Bytes returns the accumulated frame bytes.
func (d *BufferDispatcher) Bytes() []byte {
	return d.buf
}

// Reset empties the buffer for reuse.
func (d *BufferDispatcher) Reset() {
	d.buf = d.buf[:0]
}
