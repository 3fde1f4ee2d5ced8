package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

const rpcDialTimeout = 5 * time.Second

// rpcClient drives a running server over its unix socket, one connection per
// call. Server-side errors come back with their code so the user can tell a
// missing entity from a broken store.
type rpcClient struct {
	socket  string
	timeout time.Duration
	seq     atomic.Int64
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int64  `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcRespError   `json:"error"`
	ID      any             `json:"id"`
}

type rpcRespError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newRPCClient(socket string) *rpcClient {
	return &rpcClient{socket: socket, timeout: rpcDialTimeout}
}

func (c *rpcClient) call(ctx context.Context, method string, params any, out any) error {
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "unix", c.socket)
	if err != nil {
		return fmt.Errorf("%s: dial %s: %w", method, c.socket, err)
	}
	defer func() { _ = conn.Close() }()

	if params == nil {
		// the server rejects absent params, an empty object means "none"
		params = map[string]any{}
	}
	req := rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: c.seq.Add(1)}
	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	var resp rpcResponse
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if resp.Error != nil {
		return fmt.Errorf("%s: server error %d: %s", method, resp.Error.Code, resp.Error.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}
