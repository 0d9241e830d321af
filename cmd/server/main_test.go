package main

import (
	"testing"
)

// main must return immediately under SKIP_SERVER_RUN so the package test
// run never binds a port or blocks on signals.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}
