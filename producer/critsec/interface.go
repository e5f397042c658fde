// Package critsec provides the platform-specific critical-section
// primitive the process-wide logger singleton uses to serialize
// acquire()/write*/release() sequences (spec §5, §9). The true
// interrupt-disable primitive an embedded target needs is an external
// collaborator (spec §1); these implementations are host-side stand-ins
// good enough to make the module runnable end-to-end, modeled on the
// per-platform split the example corpus uses for flushing memory-mapped
// pages.
package critsec

// Interface is the minimal critical-section contract: Enter must block
// whatever concurrency source could otherwise call back into the logger,
// and Exit must undo exactly what the matching Enter did. Re-entrancy is
// implementation-defined; each implementation below documents its own
// stance (spec §5).
type Interface interface {
	Enter()
	Exit()
}
