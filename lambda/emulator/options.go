// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package emulator

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/aws/stepfunctions-lambda-emulator/lambda/logging"
)

const (
	DefaultAddress                  = "0.0.0.0"
	DefaultPort                     = "13000"
	DefaultStepFunctionsEndpointURL = "http://0.0.0.0:8083"
)

type Options struct {
	LogLevel                 string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"Log level (panic, fatal, error, warn, info, debug, trace)."`
	Address                  string `long:"lambda-address" env:"STEPFUNCTIONS_LAMBDA_ADDRESS" default:"0.0.0.0" description:"Address the Lambda invoke emulator listens on."`
	Port                     string `long:"lambda-port" env:"STEPFUNCTIONS_LAMBDA_PORT" default:"13000" description:"Port the Lambda invoke emulator listens on. 0 picks a free port."`
	StepFunctionsEndpointURL string `long:"stepfunctions-endpoint-url" env:"STEPFUNCTIONS_ENDPOINT_URL" default:"http://0.0.0.0:8083" description:"Endpoint of the Step Functions Local service under test."`
	PlatformLogs             bool   `long:"platform-logs" env:"STEPFUNCTIONS_LAMBDA_PLATFORM_LOGS" description:"Print START, END and REPORT lines for every invocation."`
}

// ParseOptions parses command line arguments, falling back to environment
// variables and then to defaults. Unknown arguments are returned untouched.
func ParseOptions(args []string) (Options, []string, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	args, err := parser.ParseArgs(args)
	return opts, args, err
}

// ListenAddr is the host:port pair the emulator binds.
func (o Options) ListenAddr() string {
	return net.JoinHostPort(o.Address, o.Port)
}

func ConfigureLogging(levelStr string) {
	if err := logging.SetLogLevel(levelStr); err != nil {
		log.WithError(err).Warn("falling back to info log level")
		_ = logging.SetLogLevel("info")
	}
}

func ParseAddr(addrStr, defaultAddr string) (netip.AddrPort, error) {
	if addrStr == "" {
		addrStr = defaultAddr
	}

	host, portStr, err := net.SplitHostPort(addrStr)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("invalid address: %w", err)
	}

	port, err := net.LookupPort("tcp", portStr)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("invalid port: %w", err)
	}

	ip, err := netip.ParseAddr(host)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("invalid IP: %w", err)
	}

	return netip.AddrPortFrom(ip, uint16(port)), nil
}
