package snapshot

import "errors"

const (
	// MagicNumber identifies boltzvec snapshot files (ASCII: "BXV0").
	MagicNumber = 0x42585630
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000

	headerCodecNameLen = 16

	// headerSize is the encoded size of FileHeader.
	headerSize = 64
	// checksumOffset is the byte offset of Checksum inside the encoded
	// header; the CRC is computed with these four bytes zeroed.
	checksumOffset = 36

	// maxMetaLen bounds the codec-encoded meta section. The meta carries a
	// kind tag and a namespace id, so anything near this limit is corrupt.
	maxMetaLen = 1 << 20
	// maxCompressionOverhead bounds how much larger than the raw payload a
	// compressed payload may claim to be (frame headers, incompressible
	// data).
	maxCompressionOverhead = 1 << 20
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidHeader      = errors.New("header field out of range")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrInvalidCompression = errors.New("unsupported compression type")
	ErrUnknownCodec       = errors.New("unknown codec name in header")
	ErrTruncatedPayload   = errors.New("payload shorter than count*dim")
)

// CompressionType selects the payload compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 frame compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZstd uses zstd compression (better ratio).
	CompressionZstd CompressionType = 2
)

// FileHeader is the fixed 64-byte header at the start of every snapshot.
// All multi-byte fields are little-endian. The checksum covers the whole
// file: the header itself (with Checksum zeroed) followed by the meta and
// payload bytes.
type FileHeader struct {
	Magic       uint32
	Version     uint32
	Compression uint8
	Padding1    [3]byte
	Count       uint64 // Number of vectors
	Dim         uint32 // Vector dimensionality
	MetaLen     uint32 // Byte length of the codec-encoded meta section
	PayloadLen  uint64 // Byte length of the (possibly compressed) payload
	Checksum    uint32 // CRC32 (IEEE) of the entire file, this field zeroed
	CodecName   [headerCodecNameLen]byte
	Reserved    [8]byte
}

// meta is the codec-encoded section following the header. It carries the
// variable-length identity the fixed header cannot: the buffer kind tag and
// the namespace id of the originating space.
type meta struct {
	Kind    string `json:"kind"`
	SpaceID string `json:"space_id,omitempty"`
}
