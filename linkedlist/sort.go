package linkedlist

// Sort orders the chain with a recursive merge sort. The chain is split by
// alternating node assignment rather than by midpoint counting; merging
// re-threads the successor links and ties favor the left sub-chain. The
// tail reference is re-attached once the sort completes.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.head == nil {
		return
	}

	l.head = mergeSortChain(l.head, less)

	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	l.tail = tail
}

func mergeSortChain[T any](head *node[T], less func(a, b T) bool) *node[T] {
	if head.next == nil {
		return head
	}

	left, right := splitAlternating(head)

	left = mergeSortChain(left, less)
	right = mergeSortChain(right, less)

	return mergeChains(left, right, less)
}

// splitAlternating deals the chain into two sub-chains, node 1 to the left,
// node 2 to the right, node 3 to the left, and so on. Both sub-chains are
// non-empty for chains of two or more nodes.
func splitAlternating[T any](head *node[T]) (left, right *node[T]) {
	left = head
	right = head.next

	lastLeft := left
	lastRight := right
	toLeft := true

	for current := right.next; current != nil; current = current.next {
		if toLeft {
			lastLeft.next = current
			lastLeft = current
		} else {
			lastRight.next = current
			lastRight = current
		}
		toLeft = !toLeft
	}

	lastLeft.next = nil
	lastRight.next = nil

	return left, right
}

// mergeChains repeatedly takes the smaller head, preferring the left
// sub-chain on ties, and re-threads the successor links.
func mergeChains[T any](left, right *node[T], less func(a, b T) bool) *node[T] {
	var head *node[T]

	if less(right.value, left.value) {
		head = right
		right = right.next
	} else {
		head = left
		left = left.next
	}

	tail := head

	for left != nil && right != nil {
		if less(right.value, left.value) {
			tail.next = right
			right = right.next
		} else {
			tail.next = left
			left = left.next
		}
		tail = tail.next
	}

	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}

	return head
}
