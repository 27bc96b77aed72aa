package executor

import (
	"fmt"
	"io"

	"go-memsim/services/parser/query"
	"go-memsim/util/logger"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
)

func (es *ExecutorServiceT) release(q *query.QueryRelease) (io.WriterTo, error) {
	if err := es.manager.Release(q.ProcessID); err != nil {
		return nil, errors.Wrapf(err, "failed to release memory of '%s'", q.ProcessID)
	}

	logger.L.Infof("released memory of process '%s'", q.ProcessID)

	return respond(func(obj *jwriter.ObjectState) {
		obj.Name("success").Bool(true)
		obj.Name("message").String(fmt.Sprintf("Memory successfully released for %s", q.ProcessID))
		writeState(obj, es.manager.Status(), es.manager.TotalSize())
	})
}
