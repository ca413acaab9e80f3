package engine

import (
	"bufio"
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeServer reads whatever the Engine writes and replies with canned
// frames handed to it by the test, one per received line.
type fakeServer struct {
	conn    net.Conn
	reader  *bufio.Reader
	replies chan string
}

func newFakeServer(conn net.Conn) *fakeServer {
	return &fakeServer{conn: conn, reader: bufio.NewReader(conn), replies: make(chan string, 64)}
}

func (s *fakeServer) serve() {
	for {
		_, err := s.reader.ReadString('\n')
		if err != nil {
			return
		}
		reply, ok := <-s.replies
		if !ok {
			return
		}
		if _, err := s.conn.Write([]byte(reply)); err != nil {
			return
		}
	}
}

func newTestEngine(t *testing.T) (*Engine, *fakeServer) {
	t.Helper()
	client, server := net.Pipe()
	fs := newFakeServer(server)
	go fs.serve()

	e := New(NewNetTransport(client), 0)
	go e.Run(context.Background())

	t.Cleanup(func() {
		_ = client.Close()
		_ = server.Close()
	})
	return e, fs
}

func TestEngineRoundTrip(t *testing.T) {
	e, fs := newTestEngine(t)
	fs.replies <- "HD\r\n"

	resp, err := e.Submit(context.Background(), []byte("ms foo 3\r\nbar\r\n"))
	require.NoError(t, err)
	require.Equal(t, "HD", string(resp.Status))
}

func TestEngineConcurrentSubmissions(t *testing.T) {
	e, fs := newTestEngine(t)
	const n = 20
	for i := 0; i < n; i++ {
		fs.replies <- "HD\r\n"
	}

	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := e.Submit(context.Background(), []byte("mg k\r\n"))
			if err == nil {
				results[i] = string(resp.Status)
			}
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		require.Equal(t, "HD", r, "submission %d", i)
	}
}

func TestEngineAlreadyRunning(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	e := New(NewNetTransport(client), 0)
	go e.Run(context.Background())
	time.Sleep(10 * time.Millisecond)

	err := e.Run(context.Background())
	require.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestEngineTerminatesOnTransportClose(t *testing.T) {
	client, server := net.Pipe()
	e := New(NewNetTransport(client), 0)
	runErr := make(chan error, 1)
	go func() { runErr <- e.Run(context.Background()) }()

	require.NoError(t, server.Close())

	select {
	case <-runErr:
	case <-time.After(time.Second):
		t.Fatal("engine did not terminate after transport closed")
	}

	_, err := e.Submit(context.Background(), []byte("mg k\r\n"))
	require.Error(t, err)
}

func TestEngineSubmitRespectsContextCancellation(t *testing.T) {
	e, _ := newTestEngine(t)
	// No reply is ever queued, so the request hangs; cancellation must
	// still return promptly instead of blocking forever.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := e.Submit(ctx, []byte("mg k\r\n"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
