// Package ciutil provides utilities for CI and environment-specific
// functionality used by tests: detecting a CI run and locating a MongoDB
// server supplied by the environment.
package ciutil
