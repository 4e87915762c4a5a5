//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <immintrin.h>
#include <stddef.h>

__attribute__((target("avx2")))
static float hsum_m256(__m256 v) {
	__m128 hi = _mm256_extractf128_ps(v, 1);
	__m128 lo = _mm256_castps256_ps128(v);
	__m128 sum4 = _mm_add_ps(hi, lo);
	__m128 sum2 = _mm_add_ps(sum4, _mm_movehl_ps(sum4, sum4));
	__m128 sum1 = _mm_add_ss(sum2, _mm_shuffle_ps(sum2, sum2, 0x1));
	return _mm_cvtss_f32(sum1);
}

__attribute__((target("avx2")))
static float dot_avx2(const float* a, const float* b, size_t n) {
	__m256 acc = _mm256_setzero_ps();
	size_t i = 0;
	for (; i + 8 <= n; i += 8) {
		__m256 va = _mm256_loadu_ps(a + i);
		__m256 vb = _mm256_loadu_ps(b + i);
		acc = _mm256_add_ps(acc, _mm256_mul_ps(va, vb));
	}
	float s = hsum_m256(acc);
	for (; i < n; i++) s += a[i] * b[i];
	return s;
}
*/
import "C"

import "unsafe"

// dotAVX2 requires len(a) == len(b) > 0.
func dotAVX2(a, b []float32) float32 {
	return float32(C.dot_avx2(
		(*C.float)(unsafe.Pointer(&a[0])),
		(*C.float)(unsafe.Pointer(&b[0])),
		C.size_t(len(a)),
	))
}
