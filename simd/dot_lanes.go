package simd

// Lanes is the lane width of the portable kernel: 8 float32 = one 256-bit register.
const Lanes = 8

// dotLanesGo is the portable lane kernel. Each of the 8 accumulators only sees
// indices congruent to its lane, the same way a ymm register accumulates, so it
// rounds like the AVX2 kernel rather than like dotScalar.
func dotLanesGo(a, b []float32) float32 {
	var acc [Lanes]float32
	n := len(a)
	b = b[:n]
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		va := (*[Lanes]float32)(a[i : i+Lanes])
		vb := (*[Lanes]float32)(b[i : i+Lanes])
		acc[0] += va[0] * vb[0]
		acc[1] += va[1] * vb[1]
		acc[2] += va[2] * vb[2]
		acc[3] += va[3] * vb[3]
		acc[4] += va[4] * vb[4]
		acc[5] += va[5] * vb[5]
		acc[6] += va[6] * vb[6]
		acc[7] += va[7] * vb[7]
	}
	s := reduceLanes(acc)
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// reduceLanes folds the high half onto the low half until one lane is left.
func reduceLanes(acc [Lanes]float32) float32 {
	for w := Lanes / 2; w > 0; w /= 2 {
		for j := 0; j < w; j++ {
			acc[j] += acc[j+w]
		}
	}
	return acc[0]
}
