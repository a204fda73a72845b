// seomcp-proxy speaks newline-delimited JSON-RPC on stdin/stdout and
// forwards tool calls to the remote backend over HTTP. Diagnostics go to
// stderr; stdout carries protocol frames only.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/seomcp/seomcp-proxy/jsonrpc"
	"github.com/seomcp/seomcp-proxy/pkg/backend"
	"github.com/seomcp/seomcp-proxy/pkg/catalog"
	"github.com/seomcp/seomcp-proxy/pkg/config"
	"github.com/seomcp/seomcp-proxy/router"
	"github.com/seomcp/seomcp-proxy/stdio"
)

type stdioReadWriter struct {
	reader *os.File
	writer *os.File
}

func (s *stdioReadWriter) Read(p []byte) (n int, err error)  { return s.reader.Read(p) }
func (s *stdioReadWriter) Write(p []byte) (n int, err error) { return s.writer.Write(p) }

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rw := &stdioReadWriter{reader: os.Stdin, writer: os.Stdout}

	if err := run(rw, logger); err != nil {
		logger.Error("proxy.exit", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

// run wires the proxy and drives the framing loop until end of stream. A
// configuration failure emits exactly one diagnostic frame on the pipe
// before returning, so the peer sees why the process died.
func run(rw io.ReadWriter, logger *slog.Logger) error {
	cfg, err := config.FromEnv()
	if err != nil {
		emitFatalFrame(rw, err)
		return err
	}

	client, err := backend.NewClient(cfg)
	if err != nil {
		emitFatalFrame(rw, err)
		return err
	}

	reg := catalog.NewRegistry(client.ListTools, catalog.WithLogger(logger))
	h := router.NewHandler(reg, client, router.WithLogger(logger))

	return h.Handle(rw)
}

func emitFatalFrame(w io.Writer, err error) {
	frame := jsonrpc.NewErrorResponse(nil, jsonrpc.ErrorCodeParseError, err.Error(), nil)
	_ = stdio.NewWriter(w).WriteMessage(frame)
}
