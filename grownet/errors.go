// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import "errors"

// errInvalidField builds a plain validation error. Kept as a helper so
// Validate methods read as a flat list of checks.
func errInvalidField(msg string) error {
	return errors.New(msg)
}

// joinErrors is errors.Join with the common case of an empty slice
// returning nil made explicit at the call site for readability.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
