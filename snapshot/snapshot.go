// Package snapshot persists vector arrays in a compact binary format.
//
// A snapshot is a fixed 64-byte header, a codec-encoded meta section
// (buffer kind tag, namespace id) and a flat little-endian float64 payload,
// optionally lz4- or zstd-compressed. The header records the codec name and
// a CRC32 covering the entire file, so files are self-describing and
// corruption anywhere, header included, fails loudly on load.
//
// The persisted form of each vector is exactly its (kind tag, flat values)
// pair; decoding allocates fresh buffers and copies values in, so loaded
// vectors never alias the reader's memory.
package snapshot

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"

	"github.com/morlab/boltzvec/codec"
	"github.com/morlab/boltzvec/space"
	"github.com/morlab/boltzvec/vector"
)

type options struct {
	compression CompressionType
	codec       codec.Codec
}

// Option configures snapshot writing.
type Option func(*options)

// WithCompression selects the payload compression. Default is none.
func WithCompression(ct CompressionType) Option {
	return func(o *options) { o.compression = ct }
}

// WithCodec selects the codec for the meta section. If nil, codec.Default
// is used. The codec name is recorded in the header.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// Write serializes the array to w.
func Write(w io.Writer, arr *space.Array, opts ...Option) error {
	o := options{compression: CompressionNone, codec: codec.Default}
	for _, opt := range opts {
		opt(&o)
	}

	sp := arr.Space()
	count := arr.Len()
	dim := sp.Dim()

	metaBytes, err := o.codec.Marshal(meta{Kind: sp.Kind(), SpaceID: sp.ID()})
	if err != nil {
		return fmt.Errorf("snapshot: encode meta: %w", err)
	}

	raw := make([]byte, 8*count*dim)
	for i := 0; i < count; i++ {
		v, err := arr.At(i)
		if err != nil {
			return err
		}
		row := v.ToSlice(false)
		for j, val := range row {
			binary.LittleEndian.PutUint64(raw[8*(i*dim+j):], math.Float64bits(val))
		}
	}

	payload, err := compressPayload(raw, o.compression)
	if err != nil {
		return fmt.Errorf("snapshot: compress payload: %w", err)
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(o.compression),
		Count:       uint64(count),
		Dim:         uint32(dim),
		MetaLen:     uint32(len(metaBytes)),
		PayloadLen:  uint64(len(payload)),
	}
	copy(header.CodecName[:], o.codec.Name())

	// The checksum covers the whole file with its own field zeroed, so
	// encode the header first and patch the CRC in afterwards.
	var headerBuf bytes.Buffer
	if err := binary.Write(&headerBuf, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("snapshot: encode header: %w", err)
	}
	headerBytes := headerBuf.Bytes()

	crc := crc32.ChecksumIEEE(headerBytes)
	crc = crc32.Update(crc, crc32.IEEETable, metaBytes)
	crc = crc32.Update(crc, crc32.IEEETable, payload)
	binary.LittleEndian.PutUint32(headerBytes[checksumOffset:], crc)

	if _, err := w.Write(headerBytes); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if _, err := w.Write(metaBytes); err != nil {
		return fmt.Errorf("snapshot: write meta: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("snapshot: write payload: %w", err)
	}
	return nil
}

// Read deserializes an array from r.
func Read(r io.Reader) (*space.Array, error) {
	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	var header FileHeader
	if err := binary.Read(bytes.NewReader(headerBytes), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("snapshot: decode header: %w", err)
	}
	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}
	ct := CompressionType(header.Compression)
	if ct != CompressionNone && ct != CompressionLZ4 && ct != CompressionZstd {
		return nil, ErrInvalidCompression
	}

	// Every header field is attacker-controlled until the checksum passes,
	// and the checksum needs the sections read in, so bound all sizes with
	// overflow-safe arithmetic before the first allocation.
	rawLen, err := rawPayloadLen(header.Count, header.Dim)
	if err != nil {
		return nil, err
	}
	if header.MetaLen > maxMetaLen {
		return nil, fmt.Errorf("%w: meta length %d", ErrInvalidHeader, header.MetaLen)
	}
	if ct == CompressionNone {
		if header.PayloadLen != rawLen {
			return nil, fmt.Errorf("%w: payload length %d, want %d", ErrInvalidHeader, header.PayloadLen, rawLen)
		}
	} else if header.PayloadLen > rawLen+maxCompressionOverhead {
		return nil, fmt.Errorf("%w: payload length %d exceeds bound for %d raw bytes", ErrInvalidHeader, header.PayloadLen, rawLen)
	}

	metaBytes := make([]byte, header.MetaLen)
	if _, err := io.ReadFull(r, metaBytes); err != nil {
		return nil, fmt.Errorf("snapshot: read meta: %w", err)
	}
	payload := make([]byte, header.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("snapshot: read payload: %w", err)
	}

	binary.LittleEndian.PutUint32(headerBytes[checksumOffset:], 0)
	crc := crc32.ChecksumIEEE(headerBytes)
	crc = crc32.Update(crc, crc32.IEEETable, metaBytes)
	if crc32.Update(crc, crc32.IEEETable, payload) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	codecName := string(bytes.TrimRight(header.CodecName[:], "\x00"))
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}
	var m meta
	if err := c.Unmarshal(metaBytes, &m); err != nil {
		return nil, fmt.Errorf("snapshot: decode meta: %w", err)
	}

	raw, err := decompressPayload(payload, ct)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress payload: %w", err)
	}

	count := int(header.Count)
	dim := int(header.Dim)
	if uint64(len(raw)) < rawLen {
		return nil, ErrTruncatedPayload
	}

	sp, err := space.New(dim, space.WithID(m.SpaceID), space.WithKind(m.Kind))
	if err != nil {
		return nil, err
	}
	arr := space.NewArray(sp)
	row := make([]float64, dim)
	for i := 0; i < count; i++ {
		for j := range row {
			row[j] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*(i*dim+j):]))
		}
		v, err := sp.FromSlice(row, true)
		if err != nil {
			return nil, err
		}
		if err := arr.Append(v); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

// rawPayloadLen returns 8*count*dim, rejecting header values whose product
// cannot be represented (or allocated) as an int.
func rawPayloadLen(count uint64, dim uint32) (uint64, error) {
	if count > math.MaxInt {
		return 0, fmt.Errorf("%w: count %d", ErrInvalidHeader, count)
	}
	d := uint64(dim)
	if d != 0 && count > (math.MaxInt/8)/d {
		return 0, fmt.Errorf("%w: count %d with dimension %d", ErrInvalidHeader, count, dim)
	}
	return 8 * count * d, nil
}

// WriteVector serializes a single vector as a one-element array.
func WriteVector(w io.Writer, v *vector.Vector, opts ...Option) error {
	sp := space.ForVector(v, "")
	arr := space.NewArray(sp)
	if err := arr.Append(v); err != nil {
		return err
	}
	return Write(w, arr, opts...)
}

// ReadVector deserializes a single vector written by WriteVector.
func ReadVector(r io.Reader) (*vector.Vector, error) {
	arr, err := Read(r)
	if err != nil {
		return nil, err
	}
	return arr.At(0)
}

// Save writes the array to a file, replacing any existing content.
func Save(path string, arr *space.Array, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, arr, opts...); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads an array back from a file written by Save.
func Load(path string) (*space.Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}
