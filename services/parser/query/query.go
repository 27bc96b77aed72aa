package query

import (
	"go-memsim/pkg/memory"
)

type QueryCommandType string

const (
	// REQUEST allocates a block: RQ <pid> <size> <F|B|W>;
	REQUEST QueryCommandType = "RQ"
	// RELEASE frees a process' block: RL <pid>;
	RELEASE QueryCommandType = "RL"
	// COMPACT repacks allocated blocks toward address zero: C;
	COMPACT QueryCommandType = "C"
	// STATUS reports the block layout: STAT;
	STATUS QueryCommandType = "STAT"
	// RESET recreates the store: RESET [size];
	RESET QueryCommandType = "RESET"
)

type Querier interface {
	Type() QueryCommandType
}

type Query struct {
	Command QueryCommandType `json:"command"`
}

func (q *Query) Type() QueryCommandType {
	return q.Command
}

type QueryRequest struct {
	Query
	ProcessID string          `json:"process_id"`
	Size      int             `json:"size"`
	Strategy  memory.Strategy `json:"strategy"`
}

type QueryRelease struct {
	Query
	ProcessID string `json:"process_id"`
}

type QueryReset struct {
	Query
	// Size of the recreated space; 0 keeps the current total.
	Size int `json:"size"`
}
