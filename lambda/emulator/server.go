// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package emulator

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/netip"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	readHeaderTimeout = 15 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type TCPAddress struct {
	AddrPort netip.AddrPort
}

func (t *TCPAddress) String() string {
	return t.AddrPort.String()
}

// UpdateFromListener records the port picked by the kernel when the address
// asked for port 0.
func (t *TCPAddress) UpdateFromListener(listener net.Listener) {
	t.AddrPort = netip.MustParseAddrPort(listener.Addr().String())
}

// Server is a running emulator. Its lifetime ends with Shutdown, which also
// waits for the serving goroutine to return.
type Server struct {
	httpServer *http.Server
	Addr       *TCPAddress

	shutdownOnce sync.Once
	serveDone    chan struct{}
	doneCh       chan struct{}

	errMu sync.Mutex
	err   error
}

func StartServer(handler http.Handler, addr *TCPAddress) (*Server, error) {
	listener, err := net.Listen("tcp", addr.String())
	if err != nil {
		return nil, err
	}

	addr.UpdateFromListener(listener)

	s := &Server{
		httpServer: &http.Server{Handler: handler, ReadHeaderTimeout: readHeaderTimeout},
		Addr:       addr,
		serveDone:  make(chan struct{}),
		doneCh:     make(chan struct{}),
	}

	go func() {
		defer close(s.serveDone)
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			go s.Shutdown(err)
		}
	}()

	log.WithField("address", addr.String()).Info("Lambda invoke emulator listening")
	return s, nil
}

// URL is the endpoint clients should use, e.g. as the Lambda endpoint of
// Step Functions Local.
func (s *Server) URL() string {
	return "http://" + s.Addr.String()
}

// Shutdown stops accepting connections, waits for in-flight invocations up to
// a timeout and then closes the remaining connections. Only the first call
// has an effect; err is the reason reported by Err.
func (s *Server) Shutdown(err error) {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info("Shutting down Lambda invoke emulator...")
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			log.WithError(shutdownErr).Warn("could not gracefully shutdown emulator http server")
			_ = s.httpServer.Close()
		}
		<-s.serveDone

		if err != nil {
			s.errMu.Lock()
			s.err = err
			s.errMu.Unlock()
		}
		close(s.doneCh)
	})
}

// Close shuts the server down without a reason. It blocks until the server
// has stopped, even when another goroutine started the shutdown.
func (s *Server) Close() {
	s.Shutdown(nil)
	<-s.doneCh
}

func (s *Server) Done() <-chan struct{} {
	return s.doneCh
}

func (s *Server) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *Server) AttachShutdownSignalHandler(sigCh chan os.Signal) {
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		select {
		case sig := <-sigCh:
			log.WithField("signal", sig.String()).Info("Received signal")
			s.Shutdown(nil)
		case <-s.doneCh:
		}
		signal.Stop(sigCh)
	}()
}
