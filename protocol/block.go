/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package protocol

import (
	"encoding/binary"
	"math"

	icerr "github.com/ALBA-Synchrotron/pyIcePAP/errors"
)

// BlockStartMark is the 32-bit magic that opens every binary block header.
const BlockStartMark uint32 = 0xA5AA555A

// EncodeWords reinterprets vals (one float per table row) as a sequence of
// little-endian uint16 words, per dtype: FLOAT/INT32 are 2 words, DOUBLE is
// 4 words, BYTE is packed 2-per-word. This mirrors the controller's native
// in-memory layout, not a lossy numeric cast.
func EncodeWords(dtype DType, vals []float64) []uint16 {
	switch dtype {
	case DTypeDouble:
		out := make([]uint16, 0, len(vals)*4)
		for _, v := range vals {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			out = append(out,
				binary.LittleEndian.Uint16(buf[0:2]),
				binary.LittleEndian.Uint16(buf[2:4]),
				binary.LittleEndian.Uint16(buf[4:6]),
				binary.LittleEndian.Uint16(buf[6:8]),
			)
		}
		return out
	case DTypeInt32:
		out := make([]uint16, 0, len(vals)*2)
		for _, v := range vals {
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], uint32(int32(v)))
			out = append(out, binary.LittleEndian.Uint16(buf[0:2]), binary.LittleEndian.Uint16(buf[2:4]))
		}
		return out
	case DTypeInt8:
		out := make([]uint16, 0, (len(vals)+1)/2)
		for i := 0; i < len(vals); i += 2 {
			lo := byte(int8(vals[i]))
			var hi byte
			if i+1 < len(vals) {
				hi = byte(int8(vals[i+1]))
			}
			out = append(out, uint16(lo)|uint16(hi)<<8)
		}
		return out
	default: // DTypeFloat
		out := make([]uint16, 0, len(vals)*2)
		for _, v := range vals {
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
			out = append(out, binary.LittleEndian.Uint16(buf[0:2]), binary.LittleEndian.Uint16(buf[2:4]))
		}
		return out
	}
}

// Checksum sums every word of payload modulo 2^32, the value the controller
// expects in byte 8-11 of the block header.
func Checksum(words []uint16) uint32 {
	var sum uint32
	for _, w := range words {
		sum += uint32(w)
	}
	return sum
}

// EncodeBlockHeader builds the 12-byte little-endian block header:
// startmark, word_count, checksum.
func EncodeBlockHeader(words []uint16) []byte {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint32(buf[0:4], BlockStartMark)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(words)))
	binary.LittleEndian.PutUint32(buf[8:12], Checksum(words))
	return buf
}

// EncodeBlockPayload serializes words as little-endian uint16s.
func EncodeBlockPayload(words []uint16) []byte {
	buf := make([]byte, len(words)*2)
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], w)
	}
	return buf
}

// DecodeBlockHeader parses a 12-byte header, validating the start mark.
func DecodeBlockHeader(hdr []byte) (wordCount int, checksum uint32, err error) {
	if len(hdr) < 12 {
		return 0, 0, icerr.Protocolf("block header: need 12 bytes, got %d", len(hdr))
	}
	if mark := binary.LittleEndian.Uint32(hdr[0:4]); mark != BlockStartMark {
		return 0, 0, icerr.Protocolf("block header: bad start mark 0x%08X", mark)
	}
	wordCount = int(binary.LittleEndian.Uint32(hdr[4:8]))
	checksum = binary.LittleEndian.Uint32(hdr[8:12])
	return wordCount, checksum, nil
}
