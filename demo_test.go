package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunDemo(&buf))
	out := buf.String()

	for _, want := range []string{
		"(key, value)\n(1,19) (2,2)\nroot: 1 nodes: 2\n",
		"(1,6) (2,3.4) (3,5) (7,4.332) (12,1) (14,1.22)\nroot: 3 nodes: 6\n",
		"find(7): 4.332\n",
		"find(8): end\n",
		"at(20) = 2.5\n",
		"(1,6) (2,3.4) (7,4.332) (12,1) (14,1.22)\nroot: 7 nodes: 5\n",
		"skewed by sequential inserts, height 9",
		"balanced, height 4",
		"root: 15 nodes: 11\n",
	} {
		require.Contains(t, out, want)
	}
}
