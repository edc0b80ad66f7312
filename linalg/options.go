// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for the JSON loaders.
// This file defines:
//   - LoadOption (functional option with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherLoadOptions helper that applies them.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes loader behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package linalg

import "io/fs"

// DefaultRejectNonFinite controls whether loaders reject values that become
// ±Inf when narrowed from float64 to float32. JSON itself cannot carry NaN.
const DefaultRejectNonFinite = false

const panicNilFS = "linalg: WithFS: fsys must be non-nil"

// LoadOption mutates internal loader options. Safe to apply repeatedly.
type LoadOption func(*loadOptions)

// loadOptions is the effective loader configuration after applying LoadOption setters.
type loadOptions struct {
	fsys            fs.FS // nil ⇒ operating-system filesystem
	rejectNonFinite bool  // DefaultRejectNonFinite
}

// WithFS makes LoadVector4/LoadMatrix4 resolve paths inside fsys instead of
// the operating-system filesystem. Paths must then follow fs.ValidPath rules.
//
// Panics when fsys is nil.
func WithFS(fsys fs.FS) LoadOption {
	if fsys == nil {
		panic(panicNilFS)
	}

	return func(o *loadOptions) { o.fsys = fsys }
}

// WithRejectNonFinite makes loaders fail with ErrNaNInf when a number is out of
// float32 range (narrowing would yield ±Inf) instead of storing the infinity.
func WithRejectNonFinite() LoadOption {
	return func(o *loadOptions) { o.rejectNonFinite = true }
}

// gatherLoadOptions resolves opts on top of the defaults. Nil entries are skipped.
func gatherLoadOptions(opts ...LoadOption) loadOptions {
	o := loadOptions{rejectNonFinite: DefaultRejectNonFinite}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
