// Package vecfile stores one pair of float32 sequences (A, B) in a flat binary
// file and maps it back read-only for zero-copy dot products.
//
// The file format consists of:
//   - Header (32 bytes, little-endian): magic "DOTV", version, element size,
//     element count per sequence, data offset
//   - A: Len float32 values, little-endian
//   - B: Len float32 values, little-endian
//
// Views returned by Pair reinterpret the mapped bytes in place and therefore
// assume a little-endian host (amd64, arm64).
package vecfile
