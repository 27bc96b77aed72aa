package executor

import (
	"fmt"
	"io"

	"go-memsim/config"
	"go-memsim/pkg/memory"
	"go-memsim/services/parser/query"

	"github.com/pkg/errors"
)

type ExecutorService interface {
	Exec(q query.Querier) (io.WriterTo, error)
}

type ExecutorServiceT struct {
	manager *memory.Manager
}

func New(configs *config.MemoryConfig) (*ExecutorServiceT, error) {
	manager, err := memory.NewManager(configs.TotalSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to initialize memory manager with %d bytes", configs.TotalSize)
	}

	return &ExecutorServiceT{manager: manager}, nil
}

func (es *ExecutorServiceT) Exec(q query.Querier) (io.WriterTo, error) {
	switch q.Type() {
		case query.REQUEST: return es.request(q.(*query.QueryRequest))
		case query.RELEASE: return es.release(q.(*query.QueryRelease))
		case query.COMPACT: return es.compact()
		case query.STATUS:  return es.status()
		case query.RESET:   return es.reset(q.(*query.QueryReset))
		default:            panic(fmt.Errorf("invalid query type: '%s'", q.Type()))
	}
}
