package swap

import "encoding/binary"

// Sequential field readers. Each consumes its fixed width from the front of
// the buffer and hands back the remainder, so multi-field payloads decode as
// a chain without any offset bookkeeping at the call site.

func readUint64(data []byte) (uint64, []byte, error) {
	if len(data) < 8 {
		return 0, nil, ErrTruncatedInput
	}
	return binary.LittleEndian.Uint64(data[:8]), data[8:], nil
}

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}
