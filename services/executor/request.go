package executor

import (
	"fmt"
	"io"

	"go-memsim/services/parser/query"
	"go-memsim/util/logger"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
)

func (es *ExecutorServiceT) request(q *query.QueryRequest) (io.WriterTo, error) {
	placement, err := es.manager.Allocate(q.ProcessID, q.Size, q.Strategy)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to allocate %d bytes for '%s'", q.Size, q.ProcessID)
	}

	logger.L.Infof(
		"allocated %d bytes at address %d for process '%s' (%s)",
		placement.Size, placement.Start, q.ProcessID, q.Strategy,
	)

	return respond(func(obj *jwriter.ObjectState) {
		obj.Name("success").Bool(true)
		obj.Name("message").String(fmt.Sprintf("Memory successfully allocated for %s", q.ProcessID))
		obj.Name("start").Int(placement.Start)
		obj.Name("size").Int(placement.Size)
		writeState(obj, es.manager.Status(), es.manager.TotalSize())
	})
}
