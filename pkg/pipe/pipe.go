package pipe

import (
	"bytes"
	"encoding/binary"
	"io"
	"sync"

	"go-memsim/util/response"
)

const prefixSize = 4

var bin = binary.BigEndian

var EOS = []byte(`END`) // end of stream

// Pipe carries length-prefixed messages from a producing goroutine to
// the connection writer. The producer calls Write per message and
// finishes with EOS; WriteTo forwards frames until the EOS frame
// passes through.
type Pipe struct {
	m      *sync.Mutex
	prefix []byte
	reader *io.PipeReader
	writer *io.PipeWriter
}

func NewPipe(buf []byte) *Pipe {
	pr, pw := io.Pipe()
	p := &Pipe{
		m:      &sync.Mutex{},
		prefix: make([]byte, prefixSize),
		reader: pr,
		writer: pw,
	}

	if len(buf) > 0 {
		go func() {
			_, _ = p.Write(buf)
			_, _ = p.Write(EOS)
		}()
	}

	return p
}

func (p *Pipe) Read(data []byte) (n int, err error) {
	return p.reader.Read(data)
}

func (p *Pipe) Write(data []byte) (n int, err error) {
	prefix := p.prefix
	locked := p.m.TryLock()
	if !locked {
		prefix = make([]byte, prefixSize)
	}

	bin.PutUint32(prefix, uint32(len(data)))

	pn, err := p.writer.Write(prefix)
	if err != nil {
		return pn, err
	}

	if locked {
		p.m.Unlock()
	}

	n, err = p.writer.Write(data)
	n += pn
	if err != nil {
		return n, err
	}
	return n, nil
}

// WriteTo forwards framed messages to w and returns once the EOS
// frame has been forwarded, releasing the producing goroutine.
func (p *Pipe) WriteTo(w io.Writer) (n int64, err error) {
	defer p.CloseReader()

	rr := response.NewReader(p.reader)
	header := make([]byte, prefixSize)

	for {
		msg, err := rr.ReadLine()
		if err != nil {
			return n, err
		}

		bin.PutUint32(header, uint32(len(msg)))
		hn, err := w.Write(header)
		n += int64(hn)
		if err != nil {
			return n, err
		}

		mn, err := w.Write(msg)
		n += int64(mn)
		if err != nil {
			return n, err
		}

		if bytes.Equal(msg, EOS) {
			return n, nil
		}
	}
}

func (p *Pipe) CloseReader() error {
	return p.reader.Close()
}

func (p *Pipe) CloseWriter() error {
	return p.writer.Close()
}
