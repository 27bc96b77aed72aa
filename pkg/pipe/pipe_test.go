package pipe

import (
	"bytes"
	"testing"

	"go-memsim/util/response"

	"github.com/stretchr/testify/require"
)

func TestPipeForwardsFramesUntilEOS(t *testing.T) {
	p := NewPipe(nil)

	go func() {
		_, _ = p.Write([]byte("first"))
		_, _ = p.Write([]byte("second"))
		_, _ = p.Write(EOS)
	}()

	buf := &bytes.Buffer{}
	_, err := p.WriteTo(buf)
	require.NoError(t, err)

	rr := response.NewReader(buf)
	for _, want := range []string{"first", "second", "END"} {
		msg, err := rr.ReadLine()
		require.NoError(t, err)
		require.Equal(t, want, string(msg))
	}
}

func TestPipeWithInitialBuffer(t *testing.T) {
	p := NewPipe([]byte("only"))

	buf := &bytes.Buffer{}
	_, err := p.WriteTo(buf)
	require.NoError(t, err)

	rr := response.NewReader(buf)
	msg, err := rr.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "only", string(msg))

	msg, err = rr.ReadLine()
	require.NoError(t, err)
	require.Equal(t, EOS, msg)
}
