package trie

import (
	"io"

	"github.com/arloliu/varind/errs"
	"github.com/arloliu/varind/internal/pool"
	"github.com/arloliu/varind/varint"
)

const (
	magic        = "TRIE"
	version byte = 1

	flagTerminal byte = 1 << 0
	flagKindMask byte = 0b11 << 1
)

func encodeFlags(n *Node) byte {
	f := byte(0)
	if n.Terminal {
		f |= flagTerminal
	}
	f |= byte(n.Kind) << 1
	return f
}

func decodeFlags(f byte) (terminal bool, kind SegmentKind) {
	terminal = f&flagTerminal != 0
	kind = SegmentKind((f & flagKindMask) >> 1)
	return
}

func putTaggedStr(buf *pool.Buffer, s string) {
	var tmp [9]byte
	n := varint.PutTagged(tmp[:], uint64(len(s)))
	buf.MustWrite(tmp[:n])
	buf.MustWrite([]byte(s))
}

func writeNode(buf *pool.Buffer, n *Node) {
	buf.MustWrite([]byte{encodeFlags(n)})
	putTaggedStr(buf, n.Segment)

	var tmp [9]byte
	w := varint.PutTagged(tmp[:], uint64(len(n.Subscribers)))
	buf.MustWrite(tmp[:w])
	for _, s := range n.Subscribers {
		w = varint.PutTagged(tmp[:], s.ID)
		buf.MustWrite(tmp[:w])
		putTaggedStr(buf, s.Name)
	}

	w = varint.PutTagged(tmp[:], uint64(len(n.Children)))
	buf.MustWrite(tmp[:w])
	for _, c := range n.Children {
		writeNode(buf, c)
	}
}

// countAll mirrors Stats but is kept local to avoid coupling the wire header to the public Stats shape.
func countAll(n *Node) (nodes, patterns, subs int) {
	nodes = 1
	if n.Terminal {
		patterns = 1
		subs = len(n.Subscribers)
	}
	for _, c := range n.Children {
		cn, cp, cs := countAll(c)
		nodes += cn
		patterns += cp
		subs += cs
	}
	return
}

// Save writes the trie's binary persisted form to w.
func (t *Trie) Save(w io.Writer) error {
	nodeCount, patternCount, subCount := countAll(t.root)

	buf := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(buf)

	buf.MustWrite([]byte(magic))
	buf.MustWrite([]byte{version})

	var tmp [9]byte
	n := varint.PutTagged(tmp[:], uint64(patternCount))
	buf.MustWrite(tmp[:n])
	n = varint.PutTagged(tmp[:], uint64(nodeCount))
	buf.MustWrite(tmp[:n])
	n = varint.PutTagged(tmp[:], uint64(subCount))
	buf.MustWrite(tmp[:n])

	writeNode(buf, t.root)

	_, err := buf.WriteTo(w)
	return err
}

type byteCursor struct {
	b   []byte
	pos int
}

func (c *byteCursor) remaining() []byte { return c.b[c.pos:] }

func (c *byteCursor) readTagged() (uint64, error) {
	if c.pos >= len(c.b) {
		return 0, errs.ErrCorruptHeader
	}
	v, n := varint.GetTagged(c.remaining())
	if n == 0 || c.pos+n > len(c.b) {
		return 0, errs.ErrCorruptHeader
	}
	c.pos += n
	return v, nil
}

func (c *byteCursor) readString() (string, error) {
	ln, err := c.readTagged()
	if err != nil {
		return "", err
	}
	if c.pos+int(ln) > len(c.b) {
		return "", errs.ErrCorruptHeader
	}
	s := string(c.b[c.pos : c.pos+int(ln)])
	c.pos += int(ln)
	return s, nil
}

func (c *byteCursor) readByte() (byte, error) {
	if c.pos >= len(c.b) {
		return 0, errs.ErrCorruptHeader
	}
	b := c.b[c.pos]
	c.pos++
	return b, nil
}

func readNode(c *byteCursor) (*Node, error) {
	flags, err := c.readByte()
	if err != nil {
		return nil, err
	}
	terminal, kind := decodeFlags(flags)

	segment, err := c.readString()
	if err != nil {
		return nil, err
	}

	n := newNode(segment, kind)

	subCount, err := c.readTagged()
	if err != nil {
		return nil, err
	}
	n.Subscribers = make([]Subscriber, 0, subCount)
	for i := uint64(0); i < subCount; i++ {
		id, err := c.readTagged()
		if err != nil {
			return nil, err
		}
		name, err := c.readString()
		if err != nil {
			return nil, err
		}
		n.Subscribers = append(n.Subscribers, Subscriber{ID: id, Name: name})
	}
	n.rebuildIndex()
	n.Terminal = terminal

	childCount, err := c.readTagged()
	if err != nil {
		return nil, err
	}
	n.Children = make([]*Node, 0, childCount)
	for i := uint64(0); i < childCount; i++ {
		child, err := readNode(c)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}

	return n, nil
}

// Load reads a trie previously written by Save. It rejects any stream
// whose magic, version, or decoded counts disagree with the actual tree.
func Load(r io.Reader) (*Trie, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.ErrIOFailure
	}
	if len(raw) == 0 {
		return nil, errs.ErrEmptyBuffer
	}

	c := &byteCursor{b: raw}

	if len(raw) < 4 || string(raw[:4]) != magic {
		return nil, errs.ErrInvalidMagic
	}
	c.pos = 4

	v, err := c.readByte()
	if err != nil {
		return nil, err
	}
	if v != version {
		return nil, errs.ErrInvalidVersion
	}

	patternCount, err := c.readTagged()
	if err != nil {
		return nil, err
	}
	nodeCount, err := c.readTagged()
	if err != nil {
		return nil, err
	}
	subCount, err := c.readTagged()
	if err != nil {
		return nil, err
	}

	root, err := readNode(c)
	if err != nil {
		return nil, err
	}

	gotNodes, gotPatterns, gotSubs := countAll(root)
	if uint64(gotNodes) != nodeCount || uint64(gotPatterns) != patternCount || uint64(gotSubs) != subCount {
		return nil, errs.ErrCountMismatch
	}

	return &Trie{root: root}, nil
}
