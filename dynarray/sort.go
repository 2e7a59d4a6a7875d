package dynarray

// mergeSort sorts data in place. Slices of two elements are ordered by a
// direct comparison; longer slices are split at the midpoint into freshly
// allocated halves that are sorted recursively and merged back.
func mergeSort[T any](data []T, less func(a, b T) bool) {
	if len(data) < 2 {
		return
	}

	if len(data) == 2 {
		if less(data[1], data[0]) {
			data[0], data[1] = data[1], data[0]
		}

		return
	}

	middle := len(data) / 2

	left := make([]T, middle)
	right := make([]T, len(data)-middle)
	copy(left, data[:middle])
	copy(right, data[middle:])

	mergeSort(left, less)
	mergeSort(right, less)

	merge(data, left, right, less)
}

// merge interleaves two sorted halves into dst. An element from the right
// half is taken only when it is strictly smaller, so equal elements keep
// the left half first.
func merge[T any](dst, left, right []T, less func(a, b T) bool) {
	li, ri, di := 0, 0, 0

	for li < len(left) && ri < len(right) {
		if less(right[ri], left[li]) {
			dst[di] = right[ri]
			ri++
		} else {
			dst[di] = left[li]
			li++
		}
		di++
	}

	for li < len(left) {
		dst[di] = left[li]
		li++
		di++
	}

	for ri < len(right) {
		dst[di] = right[ri]
		ri++
		di++
	}
}
