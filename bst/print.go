package bst

import (
	"fmt"
	"io"
	"strings"
)

// String lists the pairs in key order, as "(k,v) (k,v) ...".
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	for it := t.Begin(); !it.AtEnd(); it.Next() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%v,%v)", it.cur.pair.Key, it.cur.pair.Value)
	}
	return b.String()
}

// Dump writes a header line, the pairs in key order, and a summary of
// the root key and node count.
func (t *Tree[K, V]) Dump(w io.Writer) error {
	root := "<nil>"
	if t.root != nil {
		root = fmt.Sprint(t.root.pair.Key)
	}
	_, err := fmt.Fprintf(w, "(key, value)\n%s\nroot: %s nodes: %d\n", t, root, t.count)
	return err
}

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print - display an ASCII graphic representation of the tree, the
// right sub-tree on top. Each node shows key → value and ^parent key.
func (t *Tree[K, V]) Print(w io.Writer) error {
	p := printer[K, V]{w: w}
	p.print(t.root, "", rootBranch)
	return p.err
}

type printer[K, V any] struct {
	w   io.Writer
	err error
}

func (p *printer[K, V]) printf(format string, args ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer[K, V]) print(n *node[K, V], prefix string, br branch) {
	if n == nil {
		return
	}
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		p.print(n.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		p.printf("%s|------+ ", prefix)
	case leftBranch:
		p.printf("%s\\------+ ", prefix)
	case rightBranch:
		p.printf("%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if n.parent != nil {
		up = n.parent.pair.Key
	}
	p.printf("%v → %v ^%v\n", n.pair.Key, n.pair.Value, up)
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		p.print(n.left, prefix+t, leftBranch)
	}
}
