package scheduler

// readyItem is an arrived flight waiting for the resource. pos is its index
// in arrival-sorted order.
type readyItem struct {
	pos      int
	duration int
}

// readyQueue is a container/heap min-heap ordered by (duration, pos).
type readyQueue []readyItem

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].duration != q[j].duration {
		return q[i].duration < q[j].duration
	}
	return q[i].pos < q[j].pos
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) { *q = append(*q, x.(readyItem)) }

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
