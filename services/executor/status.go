package executor

import (
	"io"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

func (es *ExecutorServiceT) status() (io.WriterTo, error) {
	return respond(func(obj *jwriter.ObjectState) {
		writeState(obj, es.manager.Status(), es.manager.TotalSize())
	})
}
