// Package probe checks whether a configured server endpoint is accepting connections.
package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultTimeout bounds a readiness probe when the caller passes none.
const DefaultTimeout = 3 * time.Second

// GRPCReady dials address and waits until the connection is Ready or timeout elapses.
func GRPCReady(ctx context.Context, address string, timeout time.Duration) error {
	endpoint := strings.TrimSpace(address)
	if endpoint == "" {
		return errors.New("grpc address is empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	conn, err := grpc.NewClient(
		endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("dial grpc %q: %w", endpoint, err)
	}
	defer func() { _ = conn.Close() }()

	readyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	conn.Connect()
	if err := waitForReady(readyCtx, conn); err != nil {
		return fmt.Errorf("wait for grpc readiness at %q: %w", endpoint, err)
	}
	return nil
}

// waitForReady blocks until gRPC connection enters Ready or fails.
func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Shutdown:
			return errors.New("grpc connection entered shutdown state")
		}

		if !conn.WaitForStateChange(ctx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("grpc readiness wait timed out in state %s", state.String())
		}
	}
}
