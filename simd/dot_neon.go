//go:build arm64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <arm_neon.h>
#include <stddef.h>

static float dot_neon(const float* a, const float* b, size_t n) {
	float32x4_t acc = vdupq_n_f32(0.0f);
	size_t i = 0;
	for (; i + 4 <= n; i += 4) {
		float32x4_t va = vld1q_f32(a + i);
		float32x4_t vb = vld1q_f32(b + i);
		acc = vmlaq_f32(acc, va, vb);
	}
	float s = vaddvq_f32(acc);
	for (; i < n; i++) s += a[i] * b[i];
	return s;
}
*/
import "C"

import "unsafe"

// dotNEON requires len(a) == len(b) > 0.
func dotNEON(a, b []float32) float32 {
	return float32(C.dot_neon(
		(*C.float)(unsafe.Pointer(&a[0])),
		(*C.float)(unsafe.Pointer(&b[0])),
		C.size_t(len(a)),
	))
}
