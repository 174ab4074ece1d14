// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides the build version of the daogov daemon.
package version

import "fmt"

const (
	// Major, Minor and Patch follow the semantic versioning rules.
	Major = 0
	Minor = 3
	Patch = 0
)

// BuildMetadata may be set at link time using
// -ldflags "-X github.com/privacyvote/daogov/version.BuildMetadata=...".
var BuildMetadata = ""

// Version is the full version string of the daemon.
var Version = String()

// String returns the semantic version string including any build metadata.
func String() string {
	v := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if BuildMetadata != "" {
		v += "+" + BuildMetadata
	}
	return v
}
