package geo

// QueueEntry is a single entry in the priority queue.
type QueueEntry struct {
	Index       int     // index of the item in the heap.
	Score       float64 // priority of the item in the queue.
	Origin      int     // origin tile / corner ID
	Destination int     // destination tile / corner ID
}

// AscPriorityQueue implements heap.Interface and holds Items.
// Priority is ascending (lowest score first), ties are broken by the
// destination ID so that the pop order is fully deterministic.
type AscPriorityQueue []*QueueEntry

func (pq AscPriorityQueue) Len() int { return len(pq) }

func (pq AscPriorityQueue) Less(i, j int) bool {
	if pq[i].Score != pq[j].Score {
		return pq[i].Score < pq[j].Score // 1, 2, 3
	}
	return pq[i].Destination < pq[j].Destination
}

func (pq *AscPriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.Index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}

func (pq *AscPriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*QueueEntry)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq AscPriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index, pq[j].Index = i, j
}

// Peek returns the lowest entry without removing it.
func (pq AscPriorityQueue) Peek() *QueueEntry {
	return pq[0]
}
