//go:build linux
// +build linux

package main

import (
	"syscall"
	"unsafe"
)

// pRlimit wraps prlimit(2); pid 0 targets the calling process, which is
// the only caller here (raising our own open-file ceiling before the
// event loop starts multiplexing sublet sockets).
func pRlimit(pid int, limit uintptr, new *syscall.Rlimit, old *syscall.Rlimit) error {
	_, _, errno := syscall.RawSyscall6(syscall.SYS_PRLIMIT64,
		uintptr(pid),
		limit,
		uintptr(unsafe.Pointer(new)),
		uintptr(unsafe.Pointer(old)), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}
