// Package mpv talks to a running mpv instance over its JSON IPC socket.
// The client carries the seek, play, pause, position and caption-overlay
// capabilities the playback sequencer depends on.
package mpv

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
)

// DefaultSocketPath is the default Unix socket path for mpv IPC.
const DefaultSocketPath = "/tmp/match-moments-mpv.sock"

var (
	// ErrNotConnected is returned when attempting operations on a
	// disconnected client.
	ErrNotConnected = errors.New("mpv: not connected")
	// ErrSocketNotFound is returned when the IPC socket cannot be reached.
	ErrSocketNotFound = errors.New("mpv: socket not found - is mpv running with --input-ipc-server?")

	// nextRequestID generates unique IPC request ids across all clients.
	nextRequestID uint64
)

type ipcRequest struct {
	Command   []interface{} `json:"command"`
	RequestID uint64        `json:"request_id"`
}

type ipcResponse struct {
	Data      interface{} `json:"data"`
	RequestID uint64      `json:"request_id"`
	Error     string      `json:"error"`
}

// Client is an mpv IPC client over a Unix socket. Commands are matched to
// responses by request id; interleaved event lines are skipped.
type Client struct {
	socketPath string

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

// NewClient creates a client for the given socket path. An empty path
// selects DefaultSocketPath.
func NewClient(socketPath string) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	return &Client{socketPath: socketPath}
}

// Connect dials the mpv IPC socket. Connecting twice is a no-op.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("%w (%s)", ErrSocketNotFound, c.socketPath)
	}
	c.conn = conn
	c.reader = bufio.NewReader(conn)
	return nil
}

// Close closes the connection to mpv.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	return err
}

// IsConnected reports whether the client holds a live connection.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// SocketPath returns the socket path this client is configured to use.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// GetProperty retrieves the value of an mpv property
// (e.g. "time-pos", "duration", "pause").
func (c *Client) GetProperty(name string) (interface{}, error) {
	return c.sendCommand("get_property", name)
}

// SetProperty sets the value of an mpv property (e.g. "pause", "speed").
func (c *Client) SetProperty(name string, value interface{}) error {
	_, err := c.sendCommand("set_property", name, value)
	return err
}

// sendCommand sends one newline-terminated JSON IPC command and reads
// response lines until the one carrying the matching request id arrives.
func (c *Client) sendCommand(command string, args ...interface{}) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrNotConnected
	}

	cmdArray := make([]interface{}, 0, len(args)+1)
	cmdArray = append(cmdArray, command)
	cmdArray = append(cmdArray, args...)

	reqID := atomic.AddUint64(&nextRequestID, 1)

	data, err := json.Marshal(ipcRequest{Command: cmdArray, RequestID: reqID})
	if err != nil {
		return nil, fmt.Errorf("mpv: failed to marshal command: %w", err)
	}
	data = append(data, '\n')
	if _, err := c.conn.Write(data); err != nil {
		return nil, fmt.Errorf("mpv: failed to send command: %w", err)
	}

	for {
		line, err := c.reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("mpv: failed to read response: %w", err)
		}

		var resp ipcResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			// Malformed lines are usually events; keep reading.
			continue
		}
		if resp.RequestID != reqID {
			continue
		}
		if resp.Error != "" && resp.Error != "success" {
			return nil, fmt.Errorf("mpv: %s", resp.Error)
		}
		return resp.Data, nil
	}
}

// toFloat64 converts a decoded JSON number to float64.
func toFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("mpv: unexpected numeric value type: %T", v)
	}
}
