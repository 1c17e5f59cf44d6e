package trie

// Subscriber is one listener attached to a terminal node.
type Subscriber struct {
	ID   uint64
	Name string
}

// Node is one trie segment. Terminal is true iff Subscribers is
// non-empty; it is never set directly by callers.
//
// subIndex maps a subscriber ID to its position in Subscribers, mirroring
// the teacher's metric-name-tracker's dual list/index structure. It is
// rebuilt from Subscribers on load and never persisted.
type Node struct {
	Segment    string
	Kind       SegmentKind
	Terminal   bool
	Subscribers []Subscriber
	Children   []*Node

	subIndex map[uint64]int
}

func newNode(segment string, kind SegmentKind) *Node {
	return &Node{Segment: segment, Kind: kind, subIndex: make(map[uint64]int)}
}

// childFor returns the existing child matching kind+segment, or nil.
func (n *Node) childFor(kind SegmentKind, segment string) *Node {
	for _, c := range n.Children {
		if c.Kind == kind && c.Segment == segment {
			return c
		}
	}
	return nil
}

func (n *Node) childOrCreate(kind SegmentKind, segment string) *Node {
	if c := n.childFor(kind, segment); c != nil {
		return c
	}
	c := newNode(segment, kind)
	n.Children = append(n.Children, c)
	return c
}

func (n *Node) addSubscriber(sub Subscriber) {
	if n.subIndex == nil {
		n.subIndex = make(map[uint64]int)
	}
	if idx, ok := n.subIndex[sub.ID]; ok {
		n.Subscribers[idx] = sub // update name in place, no duplicate entry
		return
	}
	n.subIndex[sub.ID] = len(n.Subscribers)
	n.Subscribers = append(n.Subscribers, sub)
	n.Terminal = true
}

// removeSubscriber removes the subscriber with id, reports whether one
// was found. Lazy deletion: the node itself is never pruned here, even
// if Subscribers becomes empty, keeping removal O(path length).
func (n *Node) removeSubscriber(id uint64) bool {
	idx, ok := n.subIndex[id]
	if !ok {
		return false
	}

	last := len(n.Subscribers) - 1
	moved := n.Subscribers[last]
	n.Subscribers[idx] = moved
	n.Subscribers = n.Subscribers[:last]
	n.subIndex[moved.ID] = idx
	delete(n.subIndex, id)

	n.Terminal = len(n.Subscribers) > 0
	return true
}

func (n *Node) rebuildIndex() {
	n.subIndex = make(map[uint64]int, len(n.Subscribers))
	for i, s := range n.Subscribers {
		n.subIndex[s.ID] = i
	}
	n.Terminal = len(n.Subscribers) > 0
}
