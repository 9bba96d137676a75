//go:build !unix && !windows

package collector

import "runtime"

func kernelName() string {
	return runtime.GOOS
}
