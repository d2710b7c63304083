// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package brewbump

// Target is a build target identifier (a rust-style target triple)
type Target string

const (
	// TargetDarwin is the macOS x86_64 build, owning the first checksum in a formula
	TargetDarwin Target = "x86_64-apple-darwin"
	// TargetLinux is the Linux x86_64 build, owning the second checksum in a formula
	TargetLinux Target = "x86_64-unknown-linux-gnu"
)

// DefaultTargets returns the targets in the order their checksums appear in a formula
func DefaultTargets() []Target {
	return []Target{TargetDarwin, TargetLinux}
}

// String implements the fmt.Stringer interface
func (t Target) String() string {
	return string(t)
}

// indexOf returns the checksum position owned by target, or -1
func indexOf(targets []Target, target Target) int {
	for i, t := range targets {
		if t == target {
			return i
		}
	}
	return -1
}
