//go:build windows

package critsec

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procInitializeCriticalSection = modkernel32.NewProc("InitializeCriticalSection")
	procEnterCriticalSection      = modkernel32.NewProc("EnterCriticalSection")
	procLeaveCriticalSection      = modkernel32.NewProc("LeaveCriticalSection")
)

// rtlCriticalSection mirrors the layout win32 expects for a
// CRITICAL_SECTION; callers never read its fields, only pass its address
// to the kernel32 procs below.
type rtlCriticalSection struct {
	debugInfo      uintptr
	lockCount      int32
	recursionCount int32
	owningThread   uintptr
	lockSemaphore  uintptr
	spinCount      uintptr
}

// WindowsCriticalSection wraps a win32 CRITICAL_SECTION, which is
// re-entrant by the same thread by design (spec §5's "explicitly
// documented not to be [re-entrant]" escape hatch does not apply here:
// this one is genuinely safe to re-enter from its owning thread).
type WindowsCriticalSection struct {
	once sync.Once
	cs   rtlCriticalSection
}

func (c *WindowsCriticalSection) init() {
	c.once.Do(func() {
		procInitializeCriticalSection.Call(uintptr(unsafe.Pointer(&c.cs)))
	})
}

func (c *WindowsCriticalSection) Enter() {
	c.init()
	procEnterCriticalSection.Call(uintptr(unsafe.Pointer(&c.cs)))
}

func (c *WindowsCriticalSection) Exit() {
	procLeaveCriticalSection.Call(uintptr(unsafe.Pointer(&c.cs)))
}
