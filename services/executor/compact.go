package executor

import (
	"io"

	"go-memsim/util/logger"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

func (es *ExecutorServiceT) compact() (io.WriterTo, error) {
	es.manager.Compact()

	logger.L.Info("memory compacted")

	return respond(func(obj *jwriter.ObjectState) {
		obj.Name("success").Bool(true)
		obj.Name("message").String("Memory successfully compacted.")
		writeState(obj, es.manager.Status(), es.manager.TotalSize())
	})
}
