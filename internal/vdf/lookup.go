package vdf

// Lookup walks keys through nested nodes. It reports false when a key is
// missing or a value on the path is not a node while keys remain. An empty
// path yields the node itself.
func Lookup(node Node, keys []string) (Value, bool) {
	var cur Value = node
	for _, key := range keys {
		n, ok := cur.(Node)
		if !ok {
			return nil, false
		}
		next, ok := n[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func (n Node) Lookup(keys ...string) (Value, bool) {
	return Lookup(n, keys)
}
