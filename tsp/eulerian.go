package tsp

// eulerianCircuit returns an Eulerian tour (circuit) of the undirected
// multigraph given by adjacency lists adj, starting and ending at vertex
// start. It implements Hierholzer's algorithm in O(E).
func eulerianCircuit(adj [][]int, start int) []int {
	// Local copy of edge lists so edges can be consumed.
	local := make([][]int, len(adj))
	for u := range adj {
		local[u] = append([]int(nil), adj[u]...)
	}

	var circuit []int
	stack := []int{start}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			// No more edges: backtrack.
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
		} else {
			// Traverse one edge u→v.
			v := local[u][len(local[u])-1]
			local[u] = local[u][:len(local[u])-1]
			// Remove the reverse edge v→u.
			for i, x := range local[v] {
				if x == u {
					local[v] = append(local[v][:i], local[v][i+1:]...)
					break
				}
			}
			stack = append(stack, v)
		}
	}

	return circuit
}
