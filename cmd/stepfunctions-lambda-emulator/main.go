// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/aws/stepfunctions-lambda-emulator/lambda/emulator"
	"github.com/aws/stepfunctions-lambda-emulator/lambda/invoke"
	"github.com/aws/stepfunctions-lambda-emulator/lambda/registry"
)

func main() {
	registerBuiltins(registry.Default)

	server, err := emulator.Run(os.Args, registry.Default, make(chan os.Signal, 1))
	if err != nil {
		log.WithError(err).Error("lambda emulator failed")
		os.Exit(1)
	}

	<-server.Done()
	if err := server.Err(); err != nil {
		log.WithError(err).Warn("lambda emulator stopped")
		os.Exit(1)
	}
}

// registerBuiltins installs functions that are handy for wiring up a state
// machine before any real function exists.
func registerBuiltins(reg *registry.Registry) {
	reg.MustRegister("builtin.echo", func(event interface{}) (interface{}, error) {
		return event, nil
	})
	reg.MustRegister("builtin.context", func(ctx context.Context) (*invoke.InvocationContext, error) {
		ic, _ := invoke.InvocationContextFromContext(ctx)
		return ic, nil
	})
	reg.MustRegister("builtin.fail", func(event map[string]interface{}) error {
		return invoke.NewException("%v", event["message"])
	})
}
