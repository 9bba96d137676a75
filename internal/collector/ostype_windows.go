//go:build windows

package collector

// kernelName returns the name every NT-based Windows reports for itself.
func kernelName() string {
	return "Windows_NT"
}
