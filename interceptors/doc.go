// Package interceptors bundles ready-made debugging interceptors for
// dissect: overmeasure tinting, layout bounds drawing, and call tracing.
package interceptors
