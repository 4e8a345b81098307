package buffer

import "unsafe"

// Alignment is the byte alignment used for dense storage (one cache line,
// also the AVX-512 requirement).
const Alignment = 64

// allocAligned allocates a byte slice of the given size whose first byte
// sits at a 64-byte aligned address. Slightly more memory than requested is
// allocated so an aligned offset always exists; the underlying array is kept
// alive by the returned slice.
func allocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// allocAlignedFloat64 allocates a float64 slice of the given length with
// 64-byte alignment.
func allocAlignedFloat64(n int) []float64 {
	if n == 0 {
		return nil
	}

	byteSlice := allocAligned(n * 8)

	// Safe because allocAligned guarantees 64-byte alignment, which
	// satisfies the 8-byte requirement of float64.
	ptr := unsafe.Pointer(&byteSlice[0])    //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float64)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}
