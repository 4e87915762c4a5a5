package vecfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// HeaderSize is the fixed header size; data starts right after it.
	HeaderSize = 32

	// Magic identifies a vector pair file.
	Magic = "DOTV"

	// FormatVersion is the current file format version.
	FormatVersion uint16 = 1

	// ElemSize is the size of one float32 element.
	ElemSize = 4
)

var (
	ErrShortHeader = errors.New("vecfile: header too short")
	ErrBadMagic    = errors.New("vecfile: invalid magic")
	ErrVersion     = errors.New("vecfile: unsupported format version")
	ErrElemSize    = errors.New("vecfile: unsupported element size")
)

// Header holds the persisted pair metadata.
type Header struct {
	Magic      [4]byte
	Version    uint16
	ElemSize   uint16
	Len        uint64 // elements per sequence
	DataOffset uint64
	Reserved   [8]byte
}

// EncodeHeader fills in magic, version, element size and data offset, then
// returns the HeaderSize-byte encoding.
func EncodeHeader(h *Header) ([]byte, error) {
	if h == nil {
		return nil, errors.New("vecfile: header is nil")
	}
	copy(h.Magic[:], Magic)
	h.Version = FormatVersion
	h.ElemSize = ElemSize
	h.DataOffset = HeaderSize
	var w bytes.Buffer
	w.Grow(HeaderSize)
	if err := binary.Write(&w, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DecodeHeader reads the header from the start of src.
func DecodeHeader(src []byte) (*Header, error) {
	if len(src) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(src))
	}
	var h Header
	if err := binary.Read(bytes.NewReader(src[:HeaderSize]), binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if string(h.Magic[:]) != Magic {
		return nil, ErrBadMagic
	}
	if h.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	if h.ElemSize != ElemSize {
		return nil, fmt.Errorf("%w: %d", ErrElemSize, h.ElemSize)
	}
	return &h, nil
}

// dataSize returns the byte length of both sequences.
func (h *Header) dataSize() uint64 {
	return 2 * h.Len * ElemSize
}
