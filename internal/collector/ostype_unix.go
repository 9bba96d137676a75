//go:build unix

package collector

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// kernelName returns the uname(2) sysname, falling back to GOOS.
func kernelName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}
	name := unix.ByteSliceToString(uts.Sysname[:])
	if name == "" {
		return runtime.GOOS
	}
	return name
}
