// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package brewbump patches a Homebrew formula with a new checksum and version tag
package brewbump

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// ChecksumPattern matches a sha256 entry, capturing its value
	//
	// The capture is greedy and does not cross line boundaries
	ChecksumPattern = regexp.MustCompile(`sha256 "(.*)"`)

	// TagPattern matches a vMAJOR.MINOR.PATCH version anywhere in a formula
	TagPattern = regexp.MustCompile(`v[0-9]+\.[0-9]+\.[0-9]+`)
)

// ReplaceChecksum swaps the checksum owned by target for hash
//
// targets lists checksum owners in document order, contents must contain exactly
// len(targets) sha256 entries. Every occurrence of the old value is replaced, not
// only the one inside the selected entry.
func ReplaceChecksum(contents string, targets []Target, target Target, hash string) (string, error) {
	matches := ChecksumPattern.FindAllStringSubmatch(contents, -1)
	if len(matches) != len(targets) {
		return "", &ShapeError{Matches: len(matches), Expected: len(targets)}
	}

	idx := indexOf(targets, target)
	if idx < 0 {
		return "", &InvalidTargetError{Target: target}
	}

	current := matches[idx][1]
	if current == "" {
		return "", fmt.Errorf("%w: target %s", ErrEmptyChecksum, target)
	}

	return strings.ReplaceAll(contents, current, hash), nil
}

// ReplaceTag replaces every version in contents with tag
func ReplaceTag(contents, tag string) string {
	return TagPattern.ReplaceAllLiteralString(contents, tag)
}

// validTag reports whether tag is a plain vMAJOR.MINOR.PATCH version
//
// Tags outside that shape are still written, but will not be found by TagPattern
// on the next release.
func validTag(tag string) bool {
	if !strings.HasPrefix(tag, "v") {
		return false
	}
	v, err := semver.StrictNewVersion(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return false
	}
	return v.Prerelease() == "" && v.Metadata() == ""
}
