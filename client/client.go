// Package client implements the wire protocol of the simulator
// server: authenticate once, then exchange framed commands and
// responses.
package client

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"

	"go-memsim/pkg/pipe"
	"go-memsim/util/response"

	"github.com/pkg/errors"
)

type Client struct {
	conn *net.TCPConn
	res  *response.Reader
}

func New(host, port, user, pass string) (*Client, error) {
	tcpServer, err := net.ResolveTCPAddr("tcp", host+":"+port)
	if err != nil {
		return nil, errors.Wrap(err, "ResolveTCPAddr failed")
	}

	conn, err := net.DialTCP("tcp", nil, tcpServer)
	if err != nil {
		return nil, errors.Wrap(err, "Dial failed")
	}

	if err := conn.SetKeepAlive(true); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "Unable to set keepalive")
	}

	c := &Client{conn: conn, res: response.NewReader(conn)}
	if err := c.auth(user, pass); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// Query sends one command and collects the response messages up to
// the end-of-stream marker.
func (c *Client) Query(command string) ([][]byte, error) {
	if err := c.send([]byte(command)); err != nil {
		return nil, err
	}
	return c.collect()
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) send(b []byte) error {
	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, uint32(len(b)))

	if _, err := c.conn.Write(header); err != nil {
		return errors.Wrap(err, "error while sending header")
	}
	if _, err := c.conn.Write(b); err != nil {
		return errors.Wrap(err, "error while sending data")
	}
	return nil
}

func (c *Client) collect() ([][]byte, error) {
	messages := make([][]byte, 0, 1)
	for {
		msg, err := c.res.ReadLine()
		if err != nil {
			return nil, errors.Wrap(err, "response error")
		}
		if bytes.Equal(msg, pipe.EOS) {
			return messages, nil
		}

		cp := make([]byte, len(msg))
		copy(cp, msg)
		messages = append(messages, cp)
	}
}

func (c *Client) auth(user, pass string) error {
	msgs, err := c.Query(fmt.Sprintf("%s:%s", user, pass))
	if err != nil {
		return errors.Wrap(err, "auth failed")
	}
	if len(msgs) == 0 || !bytes.Equal(msgs[0], []byte("Auth succeed")) {
		return errors.Errorf("auth failed: %q", msgs)
	}
	return nil
}
