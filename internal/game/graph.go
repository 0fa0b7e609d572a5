package game

// An edgeKey packs an unordered pair of adjacent cell indices into one
// word: smaller index in the high byte.
type edgeKey uint16

// EdgeSet is the set of cell-to-cell edges currently severed by walls.
type EdgeSet map[edgeKey]struct{}

func cellIndex(pos Position) uint16 {
	return uint16(pos.Row*BoardSize + pos.Col)
}

func newEdgeKey(a, b Position) edgeKey {
	ai, bi := cellIndex(a), cellIndex(b)
	if ai < bi {
		return edgeKey(ai<<8 | bi)
	}
	return edgeKey(bi<<8 | ai)
}

// WallEdges returns the two edges a wall severs. A horizontal wall cuts
// the vertical edges under its top-left and top-right corners; a vertical
// wall cuts the horizontal edges right of its top-left and bottom-left
// corners.
func WallEdges(w Wall) [2]edgeKey {
	topLeft := Position{Row: w.Row, Col: w.Col}
	topRight := Position{Row: w.Row, Col: w.Col + 1}
	bottomLeft := Position{Row: w.Row + 1, Col: w.Col}
	bottomRight := Position{Row: w.Row + 1, Col: w.Col + 1}

	if w.Orientation == Horizontal {
		return [2]edgeKey{
			newEdgeKey(topLeft, bottomLeft),
			newEdgeKey(topRight, bottomRight),
		}
	}
	return [2]edgeKey{
		newEdgeKey(topLeft, topRight),
		newEdgeKey(bottomLeft, bottomRight),
	}
}

// BlockedEdges rebuilds the blocked-edge set from a wall list.
func BlockedEdges(walls []Wall) EdgeSet {
	blocked := make(EdgeSet, len(walls)*2)
	for _, w := range walls {
		for _, e := range WallEdges(w) {
			blocked[e] = struct{}{}
		}
	}
	return blocked
}

func (s EdgeSet) Blocked(a, b Position) bool {
	_, ok := s[newEdgeKey(a, b)]
	return ok
}

var cardinalDeltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func adjacentPositions(pos Position) []Position {
	result := make([]Position, 0, 4)
	for _, d := range cardinalDeltas {
		next := Position{Row: pos.Row + d[0], Col: pos.Col + d[1]}
		if next.InBounds() {
			result = append(result, next)
		}
	}
	return result
}

// HasPath reports whether start can reach any cell on goalRow over plain
// 4-directional adjacency. Jump rules are irrelevant here: this is the
// legality witness for wall placement, and any plain route suffices.
func HasPath(start Position, goalRow int, blocked EdgeSet) bool {
	queue := []Position{start}
	visited := map[Position]struct{}{start: {}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.Row == goalRow {
			return true
		}
		for _, neighbor := range adjacentPositions(node) {
			if blocked.Blocked(node, neighbor) {
				continue
			}
			if _, seen := visited[neighbor]; !seen {
				visited[neighbor] = struct{}{}
				queue = append(queue, neighbor)
			}
		}
	}
	return false
}

// unreachableDistance keeps evaluation well-defined if a position is ever
// walled in despite placement-time legality checks.
const unreachableDistance = 99

type distNode struct {
	pos  Position
	dist int
}

// ShortestDistance is a BFS over move-legal adjacency: the opponent's
// cell acts as a hop point exactly as in pawn movement, so the result is
// a realistic move count rather than plain graph distance.
func ShortestDistance(start Position, goalRow int, blocked EdgeSet, opponent Position) int {
	queue := []distNode{{pos: start}}
	visited := map[Position]struct{}{start: {}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.pos.Row == goalRow {
			return node.dist
		}
		for _, neighbor := range ValidPawnMoves(node.pos, opponent, blocked) {
			if _, seen := visited[neighbor]; !seen {
				visited[neighbor] = struct{}{}
				queue = append(queue, distNode{pos: neighbor, dist: node.dist + 1})
			}
		}
	}
	return unreachableDistance
}
