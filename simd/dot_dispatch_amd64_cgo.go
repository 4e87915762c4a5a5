//go:build amd64 && cgo

package simd

import "golang.org/x/sys/cpu"

// Registered narrowest first; the last one registered backs DotSIMD.
func init() {
	if cpu.X86.HasSSE41 {
		register(Kernel{Name: "SSE4", Lanes: 4, fn: dotSSE4})
	}
	if cpu.X86.HasAVX2 {
		register(Kernel{Name: "AVX2", Lanes: 8, fn: dotAVX2})
	}
	if cpu.X86.HasAVX512F {
		register(Kernel{Name: "AVX-512", Lanes: 16, fn: dotAVX512})
	}
}
