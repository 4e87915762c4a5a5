package vecfile

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// ErrTruncated is returned when the file is shorter than its header claims.
var ErrTruncated = errors.New("vecfile: truncated data")

// Pair is a read-only, mmap-backed (A, B) pair.
type Pair struct {
	f    *os.File
	data mmap.MMap
	hdr  Header
}

// Open maps the file at path and validates its header and size.
func Open(path string) (*Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	p := &Pair{f: f, data: m}
	h, err := DecodeHeader(m)
	if err != nil {
		p.Close()
		return nil, err
	}
	if h.DataOffset < HeaderSize || h.DataOffset%ElemSize != 0 {
		p.Close()
		return nil, fmt.Errorf("vecfile: bad data offset %d", h.DataOffset)
	}
	size := uint64(len(m))
	if h.DataOffset > size || h.Len > (size-h.DataOffset)/(2*ElemSize) {
		p.Close()
		return nil, fmt.Errorf("%w: %d bytes, header claims %d elements", ErrTruncated, size, h.Len)
	}
	if need := h.DataOffset + h.dataSize(); size < need {
		p.Close()
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrTruncated, size, need)
	}
	p.hdr = *h
	return p, nil
}

// Len returns the number of elements in each sequence.
func (p *Pair) Len() int {
	return int(p.hdr.Len)
}

// A returns a view of the first sequence. Valid until Close; must not be modified.
func (p *Pair) A() []float32 {
	return p.view(p.hdr.DataOffset)
}

// B returns a view of the second sequence. Valid until Close; must not be modified.
func (p *Pair) B() []float32 {
	return p.view(p.hdr.DataOffset + p.hdr.Len*ElemSize)
}

func (p *Pair) view(offset uint64) []float32 {
	if p.data == nil || p.hdr.Len == 0 {
		return []float32{}
	}
	ptr := unsafe.Pointer(&p.data[offset])
	return unsafe.Slice((*float32)(ptr), p.hdr.Len)
}

// Close unmaps the file and closes it.
func (p *Pair) Close() error {
	if p.data != nil {
		if err := p.data.Unmap(); err != nil {
			return err
		}
		p.data = nil
	}
	if p.f != nil {
		err := p.f.Close()
		p.f = nil
		return err
	}
	return nil
}
