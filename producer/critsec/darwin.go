//go:build darwin

package critsec

import "golang.org/x/sys/unix"

// DarwinSignalMask is the macOS analogue of UnixSignalMask. Darwin's
// pthread_sigmask has the same shape as Linux/FreeBSD's, so the
// implementation is identical; it is split into its own build-tagged file
// because the rest of this package's sibling implementations are, and
// because a platform split here leaves room for a future Darwin-specific
// refinement without touching the Linux path.
type DarwinSignalMask struct {
	prev unix.Sigset_t
}

func (c *DarwinSignalMask) Enter() {
	var full unix.Sigset_t
	unix.Sigfillset(&full)
	_ = unix.PthreadSigmask(unix.SIG_BLOCK, &full, &c.prev)
}

func (c *DarwinSignalMask) Exit() {
	_ = unix.PthreadSigmask(unix.SIG_SETMASK, &c.prev, nil)
}
