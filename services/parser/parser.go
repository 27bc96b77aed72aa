package parser

import (
	"bytes"
	"strconv"
	"text/scanner"

	"go-memsim/pkg/memory"
	perrors "go-memsim/services/parser/errors"
	"go-memsim/services/parser/query"

	"github.com/pkg/errors"
)

type ParserService interface {
	ParseCommand(in []byte) (query.Querier, error)
}

type ParserServiceT struct{}

func New() *ParserServiceT {
	return &ParserServiceT{}
}

func (ps *ParserServiceT) ParseCommand(data []byte) (query.Querier, error) {
	tokens := tokenize(data)
	if len(tokens) == 0 {
		return nil, errors.Wrap(perrors.ErrSyntax, "empty command")
	}

	cmd, args := query.QueryCommandType(tokens[0]), tokens[1:]
	switch cmd {
		case query.REQUEST: return parseRequest(args)
		case query.RELEASE: return parseRelease(args)
		case query.RESET:   return parseReset(args)
		case query.COMPACT, query.STATUS:
			if len(args) != 0 {
				return nil, errors.Wrapf(perrors.ErrSyntax, "'%s' takes no arguments", cmd)
			}
			return &query.Query{Command: cmd}, nil
	}

	return nil, errors.Wrapf(perrors.ErrSyntax, "unsupported command: '%s'", tokens[0])
}

// tokenize splits a single ';' terminated command into its tokens,
// folding a leading minus sign into the number that follows it.
func tokenize(data []byte) []string {
	s := &scanner.Scanner{}
	s.Init(bytes.NewReader(data))
	s.Error = func(*scanner.Scanner, string) {}

	tokens := make([]string, 0, 4)
	neg := false
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		text := s.TokenText()
		switch text {
		case ";":
			continue
		case "-":
			neg = true
			continue
		}

		if neg {
			text = "-" + text
			neg = false
		}
		tokens = append(tokens, text)
	}
	return tokens
}

func parseRequest(args []string) (query.Querier, error) {
	if len(args) != 3 {
		return nil, errors.Wrap(perrors.ErrSyntax, "expected RQ <pid> <size> <F|B|W>")
	}

	size, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, errors.Wrapf(perrors.ErrInvalidSize, "not a number: '%s'", args[1])
	}

	strategy, err := memory.ParseStrategy(args[2])
	if err != nil {
		return nil, errors.Wrapf(perrors.ErrInvalidStrategy, "'%s'", args[2])
	}

	return &query.QueryRequest{
		Query:     query.Query{Command: query.REQUEST},
		ProcessID: args[0],
		Size:      size,
		Strategy:  strategy,
	}, nil
}

func parseRelease(args []string) (query.Querier, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(perrors.ErrNoProcessID, "expected RL <pid>")
	}
	if len(args) != 1 {
		return nil, errors.Wrap(perrors.ErrSyntax, "expected RL <pid>")
	}

	return &query.QueryRelease{
		Query:     query.Query{Command: query.RELEASE},
		ProcessID: args[0],
	}, nil
}

func parseReset(args []string) (query.Querier, error) {
	if len(args) > 1 {
		return nil, errors.Wrap(perrors.ErrSyntax, "expected RESET [size]")
	}

	size := 0
	if len(args) == 1 {
		var err error
		size, err = strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.Wrapf(perrors.ErrInvalidSize, "not a number: '%s'", args[0])
		}
	}

	return &query.QueryReset{
		Query: query.Query{Command: query.RESET},
		Size:  size,
	}, nil
}
