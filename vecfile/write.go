package vecfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrLengthMismatch is returned by Write when A and B differ in length.
var ErrLengthMismatch = errors.New("vecfile: length mismatch")

// Write stores the pair (a, b) at path, replacing any existing file.
func Write(path string, a, b []float32) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	hdr, err := EncodeHeader(&Header{Len: uint64(len(a))})
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := w.Write(hdr); err != nil {
		f.Close()
		return err
	}
	if err := writeFloats(w, a); err != nil {
		f.Close()
		return err
	}
	if err := writeFloats(w, b); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeFloats(w *bufio.Writer, v []float32) error {
	var buf [ElemSize]byte
	for _, x := range v {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(x))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}
