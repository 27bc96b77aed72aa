package server

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
	"testing"

	"go-memsim/client"
	"go-memsim/config"
	"go-memsim/services/auth"
	"go-memsim/services/executor"
	sparser "go-memsim/services/parser"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func startServer(t *testing.T, total int) *net.TCPAddr {
	t.Helper()

	es, err := executor.New(&config.MemoryConfig{TotalSize: total})
	require.NoError(t, err)

	s, err := New(
		&config.ServerConfig{Host: "127.0.0.1", Port: 0},
		auth.New(), sparser.New(), es,
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop() })

	s.Start()
	return s.Addr().(*net.TCPAddr)
}

func dial(t *testing.T, addr *net.TCPAddr) *client.Client {
	t.Helper()

	c, err := client.New("127.0.0.1", strconv.Itoa(addr.Port), "username", "password")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func payload(t *testing.T, msgs [][]byte) map[string]interface{} {
	t.Helper()

	require.Len(t, msgs, 1)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(msgs[0], &out))
	return out
}

func TestServerRejectsBadCredentials(t *testing.T) {
	addr := startServer(t, 100)

	_, err := client.New("127.0.0.1", strconv.Itoa(addr.Port), "username", "hunter2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Auth failed")
}

func TestServerCommandRoundTrip(t *testing.T) {
	addr := startServer(t, 100)
	c := dial(t, addr)

	msgs, err := c.Query("RQ P1 30 F;")
	require.NoError(t, err)
	res := payload(t, msgs)
	require.Equal(t, true, res["success"])
	require.EqualValues(t, 0, res["start"])
	require.EqualValues(t, 30, res["size"])

	msgs, err = c.Query("STAT;")
	require.NoError(t, err)
	res = payload(t, msgs)
	require.EqualValues(t, 100, res["total_memory"])
	require.Len(t, res["memory_state"], 2)

	msgs, err = c.Query("RL P1;")
	require.NoError(t, err)
	res = payload(t, msgs)
	require.Equal(t, true, res["success"])
	require.Len(t, res["memory_state"], 1)

	msgs, err = c.Query("C;")
	require.NoError(t, err)
	require.Equal(t, true, payload(t, msgs)["success"])

	msgs, err = c.Query("RESET 200;")
	require.NoError(t, err)
	require.EqualValues(t, 200, payload(t, msgs)["total_memory"])
}

func TestServerReportsFailures(t *testing.T) {
	addr := startServer(t, 100)
	c := dial(t, addr)

	msgs, err := c.Query("RL PX;")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.True(t, strings.HasPrefix(string(msgs[0]), "Error:"))
	require.Contains(t, string(msgs[0]), "process not found")

	msgs, err = c.Query("FOO;")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.True(t, strings.HasPrefix(string(msgs[0]), "Syntax error:"))

	// the store survives failed commands
	msgs, err = c.Query("STAT;")
	require.NoError(t, err)
	require.EqualValues(t, 100, payload(t, msgs)["total_memory"])
}

func TestServerConcurrentStatusReaders(t *testing.T) {
	addr := startServer(t, 1024)

	var g errgroup.Group

	g.Go(func() error {
		c, err := client.New("127.0.0.1", strconv.Itoa(addr.Port), "username", "password")
		if err != nil {
			return err
		}
		defer c.Close()

		for i := 0; i < 100; i++ {
			owner := fmt.Sprintf("P%d", i%4)
			if _, err := c.Query(fmt.Sprintf("RQ %s 32 F;", owner)); err != nil {
				return err
			}
			if _, err := c.Query(fmt.Sprintf("RL %s;", owner)); err != nil {
				return err
			}
		}
		return nil
	})

	for r := 0; r < 4; r++ {
		g.Go(func() error {
			c, err := client.New("127.0.0.1", strconv.Itoa(addr.Port), "username", "password")
			if err != nil {
				return err
			}
			defer c.Close()

			for i := 0; i < 50; i++ {
				msgs, err := c.Query("STAT;")
				if err != nil {
					return err
				}

				out := map[string]interface{}{}
				if err := json.Unmarshal(msgs[0], &out); err != nil {
					return err
				}

				sum := 0.0
				for _, b := range out["memory_state"].([]interface{}) {
					sum += b.(map[string]interface{})["size"].(float64)
				}
				if sum != 1024 {
					return fmt.Errorf("torn snapshot: covered %v of 1024", sum)
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
