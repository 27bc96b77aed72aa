package executor

import (
	"io"

	"go-memsim/services/parser/query"
	"go-memsim/util/logger"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
)

func (es *ExecutorServiceT) reset(q *query.QueryReset) (io.WriterTo, error) {
	size := q.Size
	if size == 0 {
		size = es.manager.TotalSize()
	}

	if err := es.manager.Reset(size); err != nil {
		return nil, errors.Wrapf(err, "failed to reset memory to %d bytes", size)
	}

	logger.L.Infof("memory reset to initial state with %d bytes", size)

	return respond(func(obj *jwriter.ObjectState) {
		obj.Name("success").Bool(true)
		obj.Name("message").String("Memory manager successfully reset to initial state.")
		writeState(obj, es.manager.Status(), es.manager.TotalSize())
	})
}
