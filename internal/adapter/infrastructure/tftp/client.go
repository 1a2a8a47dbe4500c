// Package tftp provides the TFTP client adapter implementation.
package tftp

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"tftp-router-flasher/internal/port"

	"github.com/pin/tftp/v3"
)

const (
	// Port is the well-known TFTP server port.
	Port = "69"

	// transferMode is binary; netascii would mangle firmware images.
	transferMode = "octet"

	packetTimeout = 5 * time.Second
	packetRetries = 5
)

// ClientAdapter is an adapter that implements the TFTPClient port using pin/tftp library.
type ClientAdapter struct {
	port string
}

// Ensure ClientAdapter implements the TFTPClient port
var _ port.TFTPClient = (*ClientAdapter)(nil)

// NewClientAdapter creates a new TFTP client adapter talking to port 69.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{port: Port}
}

// Send performs an RFC 1350 write request for remoteName on host and streams src to it.
// The context deadline bounds the whole transfer, not only the request.
func (c *ClientAdapter) Send(ctx context.Context, host, remoteName string, src io.Reader) error {
	client, err := tftp.NewClient(net.JoinHostPort(host, c.port))
	if err != nil {
		return fmt.Errorf("failed to create TFTP client: %w", err)
	}
	client.SetTimeout(packetTimeout)
	client.SetRetries(packetRetries)

	type result struct {
		n   int64
		err error
	}
	done := make(chan result, 1)

	go func() {
		rf, err := client.Send(remoteName, transferMode)
		if err != nil {
			done <- result{err: fmt.Errorf("write request for %s rejected: %w", remoteName, err)}
			return
		}
		n, err := rf.ReadFrom(src)
		done <- result{n: n, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("transfer to %s failed after %d bytes: %w", host, res.n, res.err)
		}
		return nil
	case <-ctx.Done():
		// The library has no cancellation; the sender goroutine ends on its own packet timeout.
		return fmt.Errorf("transfer to %s aborted: %w", host, ctx.Err())
	}
}
