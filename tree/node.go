package tree

type Node struct {
	Name     string
	Children []*Node
}

func New(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node) Size() int {
	res := 0
	n.Visit(func(*Node, int) error {
		res++
		return nil
	})
	return res
}

// Depth returns the number of levels in the tree rooted at n; a leaf has
// depth 1.
func (n *Node) Depth() int {
	res := 0
	n.Visit(func(_ *Node, depth int) error {
		res = max(res, depth+1)
		return nil
	})
	return res
}

// Visit calls f on each node of the tree rooted at n in pre-order, with the
// root at depth 0. It stops at the first error f returns.
func (n *Node) Visit(f func(n *Node, depth int) error) error {
	return n.visit(f, 0)
}

func (n *Node) visit(f func(n *Node, depth int) error, depth int) error {
	if err := f(n, depth); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.visit(f, depth+1); err != nil {
			return err
		}
	}
	return nil
}
