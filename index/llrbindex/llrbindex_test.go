package llrbindex

import (
	"testing"

	"github.com/bstmap-bench/bmark/index"
	"github.com/bstmap-bench/bmark/index/indextest"
)

func TestLLRBIndex(t *testing.T) {
	indextest.Run(t, func(t *testing.T) index.Index { return New() })
}
