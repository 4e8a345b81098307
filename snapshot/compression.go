package snapshot

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// zstd encoder/decoder are stateless in EncodeAll/DecodeAll mode and safe
// for concurrent use; build them once.
var (
	zstdOnce    sync.Once
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func zstdInit() {
	// SpeedDefault balances compression ratio vs speed.
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
}

// compressPayload compresses raw with the given algorithm.
func compressPayload(raw []byte, ct CompressionType) ([]byte, error) {
	switch ct {
	case CompressionNone:
		return raw, nil
	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionZstd:
		zstdOnce.Do(zstdInit)
		return zstdEncoder.EncodeAll(raw, nil), nil
	default:
		return nil, ErrInvalidCompression
	}
}

// decompressPayload reverses compressPayload.
func decompressPayload(data []byte, ct CompressionType) ([]byte, error) {
	switch ct {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		zr := lz4.NewReader(bytes.NewReader(data))
		return io.ReadAll(zr)
	case CompressionZstd:
		zstdOnce.Do(zstdInit)
		return zstdDecoder.DecodeAll(data, nil)
	default:
		return nil, ErrInvalidCompression
	}
}
