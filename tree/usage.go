// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"slices"
	"strings"
)

// Usage lists every executable path below the root, one line per path.
// Literal aliases are joined with "|", arguments are shown as "<name>" and a
// consume-rest node is followed by "[...]".
func Usage(root *Node, sep string) []string {
	var lines []string
	onPath := make(map[*Node]bool)

	var walk func(n *Node, words []string)
	walk = func(n *Node, words []string) {
		if onPath[n] {
			return
		}
		onPath[n] = true
		defer delete(onPath, n)

		if n.executor != nil && len(words) != 0 {
			line := words
			if n.consumeRest {
				line = append(slices.Clone(words), "[...]")
			}
			lines = append(lines, strings.Join(line, sep))
		}
		// Children of a consume-rest node are never evaluated.
		if n.consumeRest && len(words) != 0 {
			return
		}

		for _, child := range n.literalGroups() {
			keys := n.keysOf(child)
			walk(child, append(slices.Clone(words), strings.Join(keys, "|")))
		}
		for _, child := range n.arguments {
			walk(child, append(slices.Clone(words), placeholder(child)))
		}
	}

	walk(root, nil)
	return lines
}

// literalGroups returns the distinct literal children in the order of their
// first registered key.
func (n *Node) literalGroups() []*Node {
	var nodes []*Node
	for _, key := range n.literalKeys {
		if child := n.literals[key]; !slices.Contains(nodes, child) {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

// keysOf returns all literal keys bound to the child.
func (n *Node) keysOf(child *Node) []string {
	var keys []string
	for _, key := range n.literalKeys {
		if n.literals[key] == child {
			keys = append(keys, key)
		}
	}
	return keys
}
