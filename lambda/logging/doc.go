// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*

The emulator emits two kinds of logs:

1. Internal logs: the emulator's own application logs (logrus), carrying the request id of the
   invocation they belong to when one is known.
2. Platform logs: START, END and REPORT lines around every invocation, formatted like the lines
   Lambda writes into a function's log stream. They are optional and off by default.

*/
package logging
