//go:build arm64 && cgo

package simd

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		register(Kernel{Name: "NEON", Lanes: 4, fn: dotNEON})
	}
}
