package codec

import "fmt"

// Internal representation for a source of bytes to be unmarshaled. The buffer slice is advanced during reading.
type source struct {
	buffer []byte
}

// Available returns the number of bytes that are still available for reading.
func (s *source) Available() int {
	return len(s.buffer)
}

func (s *source) require(n int, op string) {
	if len(s.buffer) < n {
		panic(fmt.Sprintf("%s called, %d bytes required, but only %d bytes available", op, n, len(s.buffer)))
	}
}

// ReadUint8 reads a single byte. Panics if the source is empty.
func (s *source) ReadUint8() byte {
	s.require(1, "ReadUint8")
	value := s.buffer[0]
	s.buffer = s.buffer[1:]
	return value
}

// ReadBool reads a boolean encoded as a single byte, any value other than 0 or 1 is rejected.
func (s *source) ReadBool() bool {
	switch b := s.ReadUint8(); b {
	case 0:
		return false
	case 1:
		return true
	default:
		panic(fmt.Sprintf("ReadBool call failed, invalid value %d", b))
	}
}
