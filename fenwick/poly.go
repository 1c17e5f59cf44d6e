package fenwick

import "github.com/arloliu/varind/cell"

// PolyTree is the mixed-type Fenwick variant: every node holds a
// cell.Cell rather than a single fixed T, so a tree can mix int64/uint64/
// float32/float64 deltas across updates. Promotion on mismatch follows
// cell.Add's rule (double > float > signed > unsigned); a single-tier
// contiguous array is used throughout since the polymorphic variant is
// for heterogeneous small trees, not the bulk numeric case Small/Full
// tiering targets.
type PolyTree struct {
	tree []cell.Cell // tree[0] unused; tree[1..n]
}

// NewPolyTree returns an empty PolyTree with logical length n.
func NewPolyTree(n int) *PolyTree {
	tree := make([]cell.Cell, n+1)
	for i := range tree {
		tree[i] = cell.Void()
	}
	return &PolyTree{tree: tree}
}

// Len returns the tree's logical length.
func (p *PolyTree) Len() int { return len(p.tree) - 1 }

// Update adds delta at idx under the promotion rule, promoting that
// node's stored type if delta's kind outranks it.
func (p *PolyTree) Update(idx int, delta cell.Cell) error {
	for i := idx + 1; i < len(p.tree); i += i & -i {
		sum, err := cell.Add(p.tree[i], delta)
		if err != nil {
			return err
		}
		p.tree[i] = sum
	}
	return nil
}

// Query returns the prefix sum over [0, idx].
func (p *PolyTree) Query(idx int) (cell.Cell, error) {
	acc := cell.Void()
	for i := idx + 1; i > 0; i -= i & -i {
		sum, err := cell.Add(acc, p.tree[i])
		if err != nil {
			return cell.Cell{}, err
		}
		acc = sum
	}
	return acc, nil
}

// Range returns the sum over [l, r].
func (p *PolyTree) Range(l, r int) (cell.Cell, error) {
	hi, err := p.Query(r)
	if err != nil {
		return cell.Cell{}, err
	}
	if l == 0 {
		return hi, nil
	}
	lo, err := p.Query(l - 1)
	if err != nil {
		return cell.Cell{}, err
	}
	return cell.Sub(hi, lo)
}

// Get returns the logical value at idx.
func (p *PolyTree) Get(idx int) (cell.Cell, error) {
	if idx == 0 {
		return p.Query(0)
	}
	hi, err := p.Query(idx)
	if err != nil {
		return cell.Cell{}, err
	}
	lo, err := p.Query(idx - 1)
	if err != nil {
		return cell.Cell{}, err
	}
	return cell.Sub(hi, lo)
}

// Set overwrites the logical value at idx.
func (p *PolyTree) Set(idx int, v cell.Cell) error {
	cur, err := p.Get(idx)
	if err != nil {
		return err
	}
	delta, err := cell.Sub(v, cur)
	if err != nil {
		return err
	}
	return p.Update(idx, delta)
}

// Clear resets every logical value to void (the additive identity).
func (p *PolyTree) Clear() {
	for i := range p.tree {
		p.tree[i] = cell.Void()
	}
}

// Grow extends the tree's logical length to n, preserving existing
// values, by materializing the old logical values and rebuilding.
func (p *PolyTree) Grow(n int) error {
	old := p.Len()
	if n <= old {
		return nil
	}

	vals := make([]cell.Cell, old)
	for i := 0; i < old; i++ {
		v, err := p.Get(i)
		if err != nil {
			return err
		}
		vals[i] = v
	}

	p.tree = make([]cell.Cell, n+1)
	for i := range p.tree {
		p.tree[i] = cell.Void()
	}
	for i, v := range vals {
		if err := p.Update(i, v); err != nil {
			return err
		}
	}
	return nil
}
