package dom

// NodeList is a live collection of a parent's child nodes: every query walks
// the tree at call time, so it always reflects the latest structural state.
type NodeList struct {
	parent *Node
}

// newNodeList creates a new live NodeList for the given parent node.
func newNodeList(parent *Node) *NodeList {
	return &NodeList{parent: parent}
}

// Length returns the number of nodes in the collection.
func (nl *NodeList) Length() int {
	count := 0
	for child := nl.parent.firstChild; child != nil; child = child.nextSibling {
		count++
	}
	return count
}

// Item returns the node at the given index, or nil if the index is out of bounds.
func (nl *NodeList) Item(index int) *Node {
	if index < 0 {
		return nil
	}
	i := 0
	for child := nl.parent.firstChild; child != nil; child = child.nextSibling {
		if i == index {
			return child
		}
		i++
	}
	return nil
}
