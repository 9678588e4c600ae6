// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package emulator

import (
	"fmt"
	"net"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/aws/stepfunctions-lambda-emulator/lambda/logging"
	"github.com/aws/stepfunctions-lambda-emulator/lambda/registry"
)

// Run parses args, configures logging and starts serving the functions of
// reg. The caller owns the returned server and must shut it down.
func Run(args []string, reg *registry.Registry, sigCh chan os.Signal) (*Server, error) {
	opts, _, err := ParseOptions(args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command line arguments: %w", err)
	}

	return RunWithOptions(opts, reg, sigCh)
}

func RunWithOptions(opts Options, reg *registry.Registry, sigCh chan os.Signal) (*Server, error) {
	ConfigureLogging(opts.LogLevel)

	addr, err := ParseAddr(opts.ListenAddr(), net.JoinHostPort(DefaultAddress, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid emulator address: %w", err)
	}

	if reg == nil {
		reg = registry.Default
	}

	var platformLogger logging.PlatformLogger
	if opts.PlatformLogs {
		platformLogger = logging.NewPlatformLogger(os.Stdout)
	}

	s, err := StartServer(NewHTTPHandler(reg, platformLogger), &TCPAddress{AddrPort: addr})
	if err != nil {
		return nil, fmt.Errorf("could not start emulator server: %w", err)
	}

	log.WithFields(log.Fields{
		"functions":             strings.Join(reg.Identifiers(), ","),
		"stepFunctionsEndpoint": opts.StepFunctionsEndpointURL,
	}).Debug("emulator started")

	if sigCh != nil {
		s.AttachShutdownSignalHandler(sigCh)
	}

	return s, nil
}
