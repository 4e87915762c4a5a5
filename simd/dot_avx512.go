//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <immintrin.h>
#include <stddef.h>

__attribute__((target("avx512f")))
static float dot_avx512(const float* a, const float* b, size_t n) {
	__m512 acc = _mm512_setzero_ps();
	size_t i = 0;
	for (; i + 16 <= n; i += 16) {
		__m512 va = _mm512_loadu_ps(a + i);
		__m512 vb = _mm512_loadu_ps(b + i);
		acc = _mm512_fmadd_ps(va, vb, acc);
	}
	float s = _mm512_reduce_add_ps(acc);
	for (; i < n; i++) s += a[i] * b[i];
	return s;
}
*/
import "C"

import "unsafe"

// dotAVX512 requires len(a) == len(b) > 0. The lane update is a fused
// multiply-add, so each product is not rounded before it is accumulated.
func dotAVX512(a, b []float32) float32 {
	return float32(C.dot_avx512(
		(*C.float)(unsafe.Pointer(&a[0])),
		(*C.float)(unsafe.Pointer(&b[0])),
		C.size_t(len(a)),
	))
}
