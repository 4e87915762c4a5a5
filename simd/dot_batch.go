package simd

import "fmt"

// DotBatchFlat computes the dot product of query with each of n rows stored
// back to back in data: row i is data[i*d:(i+1)*d] with d = len(query).
// Returns a slice of length n.
func DotBatchFlat(query, data []float32, n int) ([]float32, error) {
	d := len(query)
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: negative row count %d", ErrLengthMismatch, n)
	case n == 0:
		return []float32{}, nil
	case d == 0:
		return nil, fmt.Errorf("%w: empty query", ErrLengthMismatch)
	case len(data) != n*d:
		return nil, fmt.Errorf("%w: len(data)=%d want %d rows of %d", ErrLengthMismatch, len(data), n, d)
	}
	fn := active.fn
	results := make([]float32, n)
	for i := range results {
		results[i] = fn(query, data[i*d:(i+1)*d])
	}
	return results, nil
}
