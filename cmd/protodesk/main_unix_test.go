//go:build linux || darwin

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestFormatRlimit(t *testing.T) {
	assert.Equal(t, "infinity", formatRlimit(unix.RLIM_INFINITY))
	assert.Equal(t, "0", formatRlimit(0))
	assert.Equal(t, "1024", formatRlimit(1024))
}
