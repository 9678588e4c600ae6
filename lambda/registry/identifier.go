// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"regexp"
	"strings"
)

// IdentifierPattern is the grammar of a function identifier as it appears in
// the invoke path.
const IdentifierPattern = `[A-Za-z0-9_.]+`

var identifierRegexp = regexp.MustCompile(`^` + IdentifierPattern + `$`)

// ValidIdentifier reports whether identifier only uses characters allowed in
// an invoke path.
func ValidIdentifier(identifier string) bool {
	return identifierRegexp.MatchString(identifier)
}

// SplitIdentifier splits identifier on its last separator into the module path
// and the member name, e.g. "pkg.mod.add" -> ("pkg.mod", "add").
func SplitIdentifier(identifier string) (modulePath string, memberName string, err error) {
	idx := strings.LastIndex(identifier, ".")
	if idx < 0 {
		return "", "", &InvalidIdentifierError{Identifier: identifier, Reason: "missing module separator '.'"}
	}
	return identifier[:idx], identifier[idx+1:], nil
}
