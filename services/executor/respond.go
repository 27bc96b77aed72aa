package executor

import (
	"io"

	"go-memsim/pkg/memory"
	"go-memsim/pkg/pipe"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
)

// respond encodes one JSON object and streams it to the caller,
// followed by the end-of-stream marker.
func respond(build func(obj *jwriter.ObjectState)) (io.WriterTo, error) {
	w := jwriter.NewWriter()
	obj := w.Object()
	build(&obj)
	obj.End()

	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	p := pipe.NewPipe(nil)
	go func() {
		_, _ = p.Write(w.Bytes())
		_, _ = p.Write(pipe.EOS)
	}()
	return p, nil
}

// writeState appends the block layout and the total size to the
// response object.
func writeState(obj *jwriter.ObjectState, views []memory.BlockView, total int) {
	state := obj.Name("memory_state").Array()
	for _, v := range views {
		b := state.Object()
		b.Name("start").Int(v.Start)
		b.Name("end").Int(v.End)
		b.Name("size").Int(v.Size)
		b.Name("status").String(v.Label)
		if v.Owner == "" {
			b.Name("process_id").Null()
		} else {
			b.Name("process_id").String(v.Owner)
		}
		b.End()
	}
	state.End()

	obj.Name("total_memory").Int(total)
}
