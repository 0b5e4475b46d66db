package voronoi

// beachline is the arena-backed red-black tree of beach sections
// (spec.md §3's "Beach Line"). Each arc's tree-structural fields (left,
// right, parent, prev, next, red) and its payload (site, edge, pending
// circle event) live in parallel slices addressed by arcID; removing an
// arc returns its slot to freeArcs for reuse by a later insertion, the
// arena discipline spec.md §5/§9 call for in place of the cyclic
// pointer-linked structure a direct port of the classic algorithm uses.
type beachline struct {
	root arcID

	left, right, parent, prev, next []arcID
	red                              []bool

	site   []Vertex
	edge   []edgeID
	circle []*circleEvent

	freeArcs []arcID
}

func newBeachline() *beachline {
	return &beachline{root: nilArc}
}

// alloc reserves an arc slot (reused from the freelist when possible) and
// returns its id with tree-structural fields reset.
func (b *beachline) alloc(site Vertex) arcID {
	var id arcID
	if n := len(b.freeArcs); n > 0 {
		id = b.freeArcs[n-1]
		b.freeArcs = b.freeArcs[:n-1]
	} else {
		id = arcID(len(b.left))
		b.left = append(b.left, nilArc)
		b.right = append(b.right, nilArc)
		b.parent = append(b.parent, nilArc)
		b.prev = append(b.prev, nilArc)
		b.next = append(b.next, nilArc)
		b.red = append(b.red, false)
		b.site = append(b.site, Vertex{})
		b.edge = append(b.edge, noEdge)
		b.circle = append(b.circle, nil)
	}
	b.left[id] = nilArc
	b.right[id] = nilArc
	b.parent[id] = nilArc
	b.prev[id] = nilArc
	b.next[id] = nilArc
	b.red[id] = false
	b.site[id] = site
	b.edge[id] = noEdge
	b.circle[id] = nil
	return id
}

func (b *beachline) free(id arcID) {
	b.freeArcs = append(b.freeArcs, id)
}

func (b *beachline) getFirst(node arcID) arcID {
	for b.left[node] != nilArc {
		node = b.left[node]
	}
	return node
}

// insertSuccessor inserts a new arc for site immediately after node
// (nilArc to insert at the very front), rebalancing the tree. Ported
// directly from the classic rhill/d3-voronoi red-black tree, with
// pointer fields replaced by arcID indices into the arena.
func (b *beachline) insertSuccessor(node arcID, site Vertex) arcID {
	successor := b.alloc(site)

	var parent arcID = nilArc
	if node != nilArc {
		b.prev[successor] = node
		b.next[successor] = b.next[node]
		if b.next[node] != nilArc {
			b.prev[b.next[node]] = successor
		}
		b.next[node] = successor
		if b.right[node] != nilArc {
			n := b.right[node]
			for b.left[n] != nilArc {
				n = b.left[n]
			}
			b.left[n] = successor
			parent = n
		} else {
			b.right[node] = successor
			parent = node
		}
	} else if b.root != nilArc {
		n := b.getFirst(b.root)
		b.prev[successor] = nilArc
		b.next[successor] = n
		b.prev[n] = successor
		b.left[n] = successor
		parent = n
	} else {
		b.prev[successor] = nilArc
		b.next[successor] = nilArc
		b.root = successor
		parent = nilArc
	}
	b.left[successor] = nilArc
	b.right[successor] = nilArc
	b.parent[successor] = parent
	b.red[successor] = true

	node = successor
	for parent != nilArc && b.red[parent] {
		grandpa := b.parent[parent]
		if parent == b.left[grandpa] {
			uncle := b.right[grandpa]
			if uncle != nilArc && b.red[uncle] {
				b.red[parent] = false
				b.red[uncle] = false
				b.red[grandpa] = true
				node = grandpa
			} else {
				if node == b.right[parent] {
					b.rotateLeft(parent)
					node = parent
					parent = b.parent[node]
				}
				b.red[parent] = false
				b.red[grandpa] = true
				b.rotateRight(grandpa)
			}
		} else {
			uncle := b.left[grandpa]
			if uncle != nilArc && b.red[uncle] {
				b.red[parent] = false
				b.red[uncle] = false
				b.red[grandpa] = true
				node = grandpa
			} else {
				if node == b.left[parent] {
					b.rotateRight(parent)
					node = parent
					parent = b.parent[node]
				}
				b.red[parent] = false
				b.red[grandpa] = true
				b.rotateLeft(grandpa)
			}
		}
		parent = b.parent[node]
	}
	b.red[b.root] = false
	return successor
}

func (b *beachline) removeNode(id arcID) {
	removed := id
	node := id
	if b.next[node] != nilArc {
		b.prev[b.next[node]] = b.prev[node]
	}
	if b.prev[node] != nilArc {
		b.next[b.prev[node]] = b.next[node]
	}
	b.next[node] = nilArc
	b.prev[node] = nilArc

	parent := b.parent[node]
	left := b.left[node]
	right := b.right[node]
	var next arcID
	if left == nilArc {
		next = right
	} else if right == nilArc {
		next = left
	} else {
		next = b.getFirst(right)
	}
	if parent != nilArc {
		if b.left[parent] == node {
			b.left[parent] = next
		} else {
			b.right[parent] = next
		}
	} else {
		b.root = next
	}

	var isRed bool
	if left != nilArc && right != nilArc {
		isRed = b.red[next]
		b.red[next] = b.red[node]
		b.left[next] = left
		b.parent[left] = next
		if next != right {
			p := b.parent[next]
			b.parent[next] = b.parent[node]
			nd := b.right[next]
			b.left[p] = nd
			b.right[next] = right
			b.parent[right] = next
			node = nd
			parent = p
		} else {
			b.parent[next] = parent
			parent = next
			node = b.right[next]
		}
	} else {
		isRed = b.red[node]
		node = next
	}
	if node != nilArc {
		b.parent[node] = parent
	}

	b.free(removed)
	if isRed {
		return
	}
	if node != nilArc && b.red[node] {
		b.red[node] = false
		return
	}

	var sibling arcID
	for {
		if node == b.root {
			break
		}
		if node == b.left[parent] {
			sibling = b.right[parent]
			if b.red[sibling] {
				b.red[sibling] = false
				b.red[parent] = true
				b.rotateLeft(parent)
				sibling = b.right[parent]
			}
			if (b.left[sibling] != nilArc && b.red[b.left[sibling]]) || (b.right[sibling] != nilArc && b.red[b.right[sibling]]) {
				if b.right[sibling] == nilArc || !b.red[b.right[sibling]] {
					b.red[b.left[sibling]] = false
					b.red[sibling] = true
					b.rotateRight(sibling)
					sibling = b.right[parent]
				}
				b.red[sibling] = b.red[parent]
				b.red[parent] = false
				b.red[b.right[sibling]] = false
				b.rotateLeft(parent)
				node = b.root
				break
			}
		} else {
			sibling = b.left[parent]
			if b.red[sibling] {
				b.red[sibling] = false
				b.red[parent] = true
				b.rotateRight(parent)
				sibling = b.left[parent]
			}
			if (b.left[sibling] != nilArc && b.red[b.left[sibling]]) || (b.right[sibling] != nilArc && b.red[b.right[sibling]]) {
				if b.left[sibling] == nilArc || !b.red[b.left[sibling]] {
					b.red[b.right[sibling]] = false
					b.red[sibling] = true
					b.rotateLeft(sibling)
					sibling = b.left[parent]
				}
				b.red[sibling] = b.red[parent]
				b.red[parent] = false
				b.red[b.left[sibling]] = false
				b.rotateRight(parent)
				node = b.root
				break
			}
		}
		b.red[sibling] = true
		node = parent
		parent = b.parent[parent]
		if b.red[node] {
			break
		}
	}
	if node != nilArc {
		b.red[node] = false
	}
}

func (b *beachline) rotateLeft(node arcID) {
	p := node
	q := b.right[p]
	parent := b.parent[p]
	if parent != nilArc {
		if b.left[parent] == p {
			b.left[parent] = q
		} else {
			b.right[parent] = q
		}
	} else {
		b.root = q
	}
	b.parent[q] = parent
	b.parent[p] = q
	b.right[p] = b.left[q]
	if b.right[p] != nilArc {
		b.parent[b.right[p]] = p
	}
	b.left[q] = p
}

func (b *beachline) rotateRight(node arcID) {
	p := node
	q := b.left[p]
	parent := b.parent[p]
	if parent != nilArc {
		if b.left[parent] == p {
			b.left[parent] = q
		} else {
			b.right[parent] = q
		}
	} else {
		b.root = q
	}
	b.parent[q] = parent
	b.parent[p] = q
	b.left[p] = b.right[q]
	if b.left[p] != nilArc {
		b.parent[b.left[p]] = p
	}
	b.right[q] = p
}
