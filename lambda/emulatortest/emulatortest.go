// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package emulatortest runs the Lambda invoke emulator for the lifetime of a
// test or of a whole test binary, so that Step Functions Local state machines
// can call registered Go functions.
package emulatortest

import (
	"fmt"
	"net/netip"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/aws/stepfunctions-lambda-emulator/lambda/emulator"
	"github.com/aws/stepfunctions-lambda-emulator/lambda/registry"
)

// Start serves reg on a free loopback port until the test ends.
func Start(tb testing.TB, reg *registry.Registry) *emulator.Server {
	tb.Helper()

	addr := &emulator.TCPAddress{AddrPort: netip.AddrPortFrom(netip.MustParseAddr("127.0.0.1"), 0)}
	s, err := emulator.StartServer(emulator.NewHTTPHandler(reg, nil), addr)
	if err != nil {
		tb.Fatalf("could not start lambda emulator: %v", err)
	}
	tb.Cleanup(s.Close)
	return s
}

// Session is an emulator shared by every test of a package.
type Session struct {
	Server                   *emulator.Server
	LambdaEndpointURL        string
	StepFunctionsEndpointURL string
}

// StartSession starts the emulator configured from the environment, see
// emulator.Options.
func StartSession(reg *registry.Registry) (*Session, error) {
	opts, _, err := emulator.ParseOptions(nil)
	if err != nil {
		return nil, fmt.Errorf("could not read emulator options: %w", err)
	}

	s, err := emulator.RunWithOptions(opts, reg, nil)
	if err != nil {
		return nil, err
	}

	return &Session{
		Server:                   s,
		LambdaEndpointURL:        s.URL(),
		StepFunctionsEndpointURL: opts.StepFunctionsEndpointURL,
	}, nil
}

func (s *Session) Close() {
	s.Server.Close()
	if err := s.Server.Err(); err != nil {
		log.WithError(err).Warn("lambda emulator stopped with an error")
	}
}

// RunMain wraps m.Run with an emulator session. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(emulatortest.RunMain(m, registry.Default))
//	}
func RunMain(m *testing.M, reg *registry.Registry) int {
	session, err := StartSession(reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start lambda emulator: %v\n", err)
		return 1
	}
	defer session.Close()

	return m.Run()
}
