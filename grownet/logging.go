// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import "log"

// logGrowth reports a structural change at Printf-style verbosity,
// rather than through a structured logging library.
func logGrowth(format string, args ...any) {
	log.Printf("grownet: "+format, args...)
}
