// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zkproof

import "github.com/privacyvote/daogov/logger"

var log = logger.NewSubsystemLogger("ZKPF")
