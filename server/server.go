package server

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"

	"go-memsim/config"
	"go-memsim/parser"
	"go-memsim/server/connection"
	"go-memsim/services/auth"
	"go-memsim/services/executor"
	sparser "go-memsim/services/parser"
	"go-memsim/util/logger"
	"go-memsim/util/response"

	"github.com/pkg/errors"
)

const PROTOCOL = "tcp"

const authTimeout = 30 // seconds

type Server struct {
	listener *net.TCPListener
	auth     *auth.AuthServiceT
	parser   *sparser.ParserServiceT
	executor *executor.ExecutorServiceT
}

func New(
	configs *config.ServerConfig,
	as *auth.AuthServiceT,
	ps *sparser.ParserServiceT,
	es *executor.ExecutorServiceT,
) (*Server, error) {
	url := fmt.Sprintf("%v:%v", configs.Host, configs.Port)
	addr, err := net.ResolveTCPAddr(PROTOCOL, url)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to resolve IP: %v", url)
	}

	listener, err := net.ListenTCP(PROTOCOL, addr)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to listen addr: %v", url)
	}

	logger.L.Infof("server started successfuly [%v]", listener.Addr())

	return &Server{
		listener: listener,
		auth:     as,
		parser:   ps,
		executor: es,
	}, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Start() <-chan error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.acceptLoop()
	}()
	return errChan
}

func (s *Server) Stop() error {
	return s.listener.Close()
}

func (s *Server) acceptLoop() error {
	defer s.listener.Close()

	for {
		conn, err := s.listener.AcceptTCP()
		if err != nil {
			return errors.Wrap(err, "error while accepting tcp connection")
		}

		if err := conn.SetKeepAlive(true); err != nil {
			logger.L.Errorf("unable to set keepalive: %v", err)
			conn.Close()
			continue
		}

		go s.handleConnection(&connection.Connection{Conn: conn})
	}
}

func (s *Server) handleConnection(c *connection.Connection) {
	logger.L.Infof("client connected: %s", c.Conn.RemoteAddr())
	defer func() {
		logger.L.Infof("client disconnected: %s", c.Conn.RemoteAddr())
		c.Conn.Close()
	}()

	scanner := response.NewReader(c.Conn)

	if err := c.Auth(scanner, authTimeout, s.auth.ValidateCredentials); err != nil {
		logger.L.Warnf("auth error: %v", err)
		if err := c.SendAuthError(); err != nil {
			logger.L.Errorf("sendAuthError: %v", err)
		}
		return
	}

	if err := c.SendAuthSuccess(); err != nil {
		logger.L.Errorf("sendAuthSuccess: %v", err)
		return
	}

	for {
		frame, err := scanner.ReadLine()
		if err != nil {
			if err != io.EOF {
				logger.L.Warnf("error while reading from client: %v", err)
			}
			return
		}

		s.serveFrame(c, frame)
	}
}

// serveFrame splits one inbound frame into ';' terminated commands and
// serves them in order.
func (s *Server) serveFrame(c *connection.Connection, frame []byte) {
	sc := bufio.NewScanner(bytes.NewReader(frame))
	sc.Split(parser.CommandDivider)

	for sc.Scan() {
		s.serveCommand(c, sc.Bytes())
	}
}

func (s *Server) serveCommand(c *connection.Connection, raw []byte) {
	q, err := s.parser.ParseCommand(raw)
	if err != nil {
		logger.L.Warnf("syntax error: %v", err)
		if err := c.SendSyntaxError(err); err != nil {
			logger.L.Errorf("error while responding to client: %v", err)
		}
		return
	}

	res, err := s.executor.Exec(q)
	if err != nil {
		logger.L.Warnf("'%s' failed: %v", q.Type(), err)
		if err := c.SendError(err); err != nil {
			logger.L.Errorf("error while responding to client: %v", err)
		}
		return
	}

	if _, err := res.WriteTo(c.Conn); err != nil {
		logger.L.Errorf("error while responding to client: %v", err)
	}
}
