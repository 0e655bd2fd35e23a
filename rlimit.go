// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"
	"syscall"
)

// raiseNoFileLimit raises the process's open-file limit to its hard
// ceiling. The X connection fd plus one fd per sublet socket can
// otherwise exhaust a low default limit on a session running many
// sublets.
func raiseNoFileLimit() {
	var cur syscall.Rlimit
	if err := pRlimit(0, uintptr(syscall.RLIMIT_NOFILE), nil, &cur); err != nil {
		log.Printf("could not read RLIMIT_NOFILE: %v\n", err)
		return
	}
	if cur.Cur >= cur.Max {
		return
	}
	want := syscall.Rlimit{Cur: cur.Max, Max: cur.Max}
	var junk syscall.Rlimit
	if err := pRlimit(0, uintptr(syscall.RLIMIT_NOFILE), &want, &junk); err != nil {
		log.Printf("could not raise RLIMIT_NOFILE to %d: %v\n", cur.Max, err)
	}
}
