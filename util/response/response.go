package response

import (
	"encoding/binary"
	"io"
)

// Reader decodes the wire framing: each message is a 4-byte big-endian
// length header followed by the payload.
type Reader struct {
	src io.Reader
	buf []byte
	len int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{src: r}
}

// ReadLine returns the next message payload. The returned slice is
// only valid until the next call.
func (rr *Reader) ReadLine() (buf []byte, err error) {
	err = rr.read(4)
	if err != nil {
		return nil, err
	}

	messageSize := binary.BigEndian.Uint32(rr.buf)
	err = rr.read(int(messageSize))
	if err != nil {
		return nil, err
	}

	return rr.buf[:messageSize], nil
}

func (rr *Reader) read(n int) (err error) {
	if len(rr.buf) < n {
		rr.buf = make([]byte, n)
	}
	rr.len = 0

	for rr.len < n {
		rn, err := rr.src.Read(rr.buf[rr.len:n])
		if err != nil {
			return err
		}

		rr.len += rn
	}

	return nil
}
