//go:build linux || freebsd

package critsec

import "golang.org/x/sys/unix"

// UnixSignalMask blocks async-signal delivery to the calling thread for
// the critical section's duration by masking every signal, then restores
// the previous mask on Exit. This is NOT the embedded interrupt-disable
// primitive the spec treats as an external collaborator — it only blocks
// what a host process can reach, not hardware interrupts — but it is the
// closest host-side analogue and is documented as such. Not re-entrant.
type UnixSignalMask struct {
	prev unix.Sigset_t
}

func (c *UnixSignalMask) Enter() {
	var full unix.Sigset_t
	unix.Sigfillset(&full)
	_ = unix.PthreadSigmask(unix.SIG_BLOCK, &full, &c.prev)
}

func (c *UnixSignalMask) Exit() {
	_ = unix.PthreadSigmask(unix.SIG_SETMASK, &c.prev, nil)
}
