package orderbook

// levelTree is a red-black tree of price levels keyed by price, with the
// best-price node cached so the matching loop reads it in O(1). A bid tree
// is built descending (best = highest price), an ask tree ascending
// (best = lowest price); walk order follows the same direction.

type nodeColor bool

const (
	red   nodeColor = true
	black nodeColor = false
)

type treeNode struct {
	price  int32
	level  *priceLevel
	color  nodeColor
	left   *treeNode
	right  *treeNode
	parent *treeNode
}

type levelTree struct {
	root       *treeNode
	size       int
	minNode    *treeNode
	maxNode    *treeNode
	descending bool
}

func newLevelTree(descending bool) *levelTree {
	return &levelTree{descending: descending}
}

func (t *levelTree) len() int {
	return t.size
}

// best returns the level the matching loop should consume next:
// the maximum price for a descending (bid) tree, the minimum otherwise.
func (t *levelTree) best() *priceLevel {
	node := t.minNode
	if t.descending {
		node = t.maxNode
	}
	if node == nil {
		return nil
	}
	return node.level
}

func (t *levelTree) get(price int32) *priceLevel {
	node := t.search(price)
	if node == nil {
		return nil
	}
	return node.level
}

func (t *levelTree) insert(level *priceLevel) {
	node := &treeNode{
		price: level.price,
		level: level,
		color: red,
	}

	if t.root == nil {
		node.color = black
		t.root = node
		t.minNode = node
		t.maxNode = node
		t.size = 1
		return
	}

	var parent *treeNode
	current := t.root
	for current != nil {
		parent = current
		switch {
		case level.price < current.price:
			current = current.left
		case level.price > current.price:
			current = current.right
		default:
			current.level = level
			return
		}
	}

	node.parent = parent
	if level.price < parent.price {
		parent.left = node
	} else {
		parent.right = node
	}

	t.size++

	if level.price < t.minNode.price {
		t.minNode = node
	}
	if level.price > t.maxNode.price {
		t.maxNode = node
	}

	t.insertFixup(node)
}

func (t *levelTree) delete(price int32) {
	node := t.search(price)
	if node == nil {
		return
	}

	t.size--

	if node == t.minNode {
		t.minNode = t.successor(node)
	}
	if node == t.maxNode {
		t.maxNode = t.predecessor(node)
	}

	t.deleteNode(node)
}

// walk visits every level best-first and stops early when fn returns false.
func (t *levelTree) walk(fn func(*priceLevel) bool) {
	if t.descending {
		t.walkDescending(t.root, fn)
	} else {
		t.walkAscending(t.root, fn)
	}
}

func (t *levelTree) search(price int32) *treeNode {
	current := t.root
	for current != nil {
		switch {
		case price < current.price:
			current = current.left
		case price > current.price:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

func (t *levelTree) walkAscending(node *treeNode, fn func(*priceLevel) bool) bool {
	if node == nil {
		return true
	}
	if !t.walkAscending(node.left, fn) {
		return false
	}
	if !fn(node.level) {
		return false
	}
	return t.walkAscending(node.right, fn)
}

func (t *levelTree) walkDescending(node *treeNode, fn func(*priceLevel) bool) bool {
	if node == nil {
		return true
	}
	if !t.walkDescending(node.right, fn) {
		return false
	}
	if !fn(node.level) {
		return false
	}
	return t.walkDescending(node.left, fn)
}

func (t *levelTree) successor(node *treeNode) *treeNode {
	if node.right != nil {
		current := node.right
		for current.left != nil {
			current = current.left
		}
		return current
	}
	parent := node.parent
	for parent != nil && node == parent.right {
		node = parent
		parent = parent.parent
	}
	return parent
}

func (t *levelTree) predecessor(node *treeNode) *treeNode {
	if node.left != nil {
		current := node.left
		for current.right != nil {
			current = current.right
		}
		return current
	}
	parent := node.parent
	for parent != nil && node == parent.left {
		node = parent
		parent = parent.parent
	}
	return parent
}

func (t *levelTree) rotateLeft(x *treeNode) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *levelTree) rotateRight(x *treeNode) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

func (t *levelTree) insertFixup(z *treeNode) {
	for z.parent != nil && z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y != nil && y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y != nil && y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

// transplant replaces the subtree rooted at u with the one rooted at v.
func (t *levelTree) transplant(u, v *treeNode) {
	if u.parent == nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *levelTree) deleteNode(z *treeNode) {
	var x, xParent *treeNode
	y := z
	yColor := y.color

	if z.left == nil {
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	} else if z.right == nil {
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	} else {
		y = z.right
		for y.left != nil {
			y = y.left
		}
		yColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yColor == black {
		t.deleteFixup(x, xParent)
	}
}

func (t *levelTree) deleteFixup(x, xParent *treeNode) {
	for x != t.root && (x == nil || x.color == black) {
		if x == xParent.left {
			w := xParent.right
			if w != nil && w.color == red {
				w.color = black
				xParent.color = red
				t.rotateLeft(xParent)
				w = xParent.right
			}
			if w == nil || ((w.left == nil || w.left.color == black) && (w.right == nil || w.right.color == black)) {
				if w != nil {
					w.color = red
				}
				x = xParent
				xParent = x.parent
			} else {
				if w.right == nil || w.right.color == black {
					if w.left != nil {
						w.left.color = black
					}
					w.color = red
					t.rotateRight(w)
					w = xParent.right
				}
				w.color = xParent.color
				xParent.color = black
				if w.right != nil {
					w.right.color = black
				}
				t.rotateLeft(xParent)
				x = t.root
			}
		} else {
			w := xParent.left
			if w != nil && w.color == red {
				w.color = black
				xParent.color = red
				t.rotateRight(xParent)
				w = xParent.left
			}
			if w == nil || ((w.right == nil || w.right.color == black) && (w.left == nil || w.left.color == black)) {
				if w != nil {
					w.color = red
				}
				x = xParent
				xParent = x.parent
			} else {
				if w.left == nil || w.left.color == black {
					if w.right != nil {
						w.right.color = black
					}
					w.color = red
					t.rotateLeft(w)
					w = xParent.left
				}
				w.color = xParent.color
				xParent.color = black
				if w.left != nil {
					w.left.color = black
				}
				t.rotateRight(xParent)
				x = t.root
			}
		}
	}
	if x != nil {
		x.color = black
	}
}
