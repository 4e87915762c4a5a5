//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <smmintrin.h>
#include <stddef.h>

__attribute__((target("sse4.1")))
static float hsum_m128(__m128 v) {
	v = _mm_hadd_ps(v, v);
	v = _mm_hadd_ps(v, v);
	return _mm_cvtss_f32(v);
}

__attribute__((target("sse4.1")))
static float dot_sse4(const float* a, const float* b, size_t n) {
	__m128 acc = _mm_setzero_ps();
	size_t i = 0;
	for (; i + 4 <= n; i += 4) {
		__m128 va = _mm_loadu_ps(a + i);
		__m128 vb = _mm_loadu_ps(b + i);
		acc = _mm_add_ps(acc, _mm_mul_ps(va, vb));
	}
	float s = hsum_m128(acc);
	for (; i < n; i++) s += a[i] * b[i];
	return s;
}
*/
import "C"

import "unsafe"

// dotSSE4 requires len(a) == len(b) > 0.
func dotSSE4(a, b []float32) float32 {
	return float32(C.dot_sse4(
		(*C.float)(unsafe.Pointer(&a[0])),
		(*C.float)(unsafe.Pointer(&b[0])),
		C.size_t(len(a)),
	))
}
