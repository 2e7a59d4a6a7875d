package dynarray

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/structlab/collections"
)

var intLess = func(a, b int) bool { return a < b }

var _ = Describe("Array", func() {
	var a *Array[int]

	BeforeEach(func() {
		a = MakeBuilder[int]().WithCapacity(10).Build("Array")
	})

	It("should start empty", func() {
		Expect(a.Len()).To(Equal(0))
		Expect(a.Capacity()).To(Equal(10))
	})

	It("should append and access elements", func() {
		a.Append(3)
		a.Append(5)

		Expect(a.Len()).To(Equal(2))

		v, err := a.At(0)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(3))

		v, err = a.At(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(5))
	})

	It("should reject out-of-range access without mutating", func() {
		a.Append(1)

		_, err := a.At(-1)
		Expect(err).To(MatchError(collections.ErrIndexOutOfBounds))

		_, err = a.At(1)
		Expect(err).To(MatchError(collections.ErrIndexOutOfBounds))

		err = a.Set(1, 9)
		Expect(err).To(MatchError(collections.ErrIndexOutOfBounds))

		err = a.Remove(1)
		Expect(err).To(MatchError(collections.ErrIndexOutOfBounds))

		err = a.Insert(2, 9)
		Expect(err).To(MatchError(collections.ErrIndexOutOfBounds))

		Expect(a.Len()).To(Equal(1))
	})

	It("should insert in the middle by shifting right", func() {
		a.Append(1)
		a.Append(3)

		Expect(a.Insert(1, 2)).To(Succeed())

		Expect(contents(a)).To(Equal([]int{1, 2, 3}))
	})

	It("should remove in the middle by shifting left", func() {
		for _, v := range []int{1, 2, 3, 4} {
			a.Append(v)
		}

		Expect(a.Remove(1)).To(Succeed())
		Expect(contents(a)).To(Equal([]int{1, 3, 4}))

		Expect(a.RemoveLast()).To(Succeed())
		Expect(contents(a)).To(Equal([]int{1, 3}))
	})

	It("should grow by the golden ratio when full", func() {
		for i := 0; i < 10; i++ {
			a.Append(i)
		}
		Expect(a.Capacity()).To(Equal(10))

		a.Append(10)

		// floor(10 * 1.618) = 16.
		Expect(a.Capacity()).To(Equal(16))
		Expect(a.Len()).To(Equal(11))
		Expect(contents(a)).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	})

	It("should grow repeatedly without losing elements", func() {
		for i := 0; i < 100; i++ {
			a.Append(i)
		}

		Expect(a.Len()).To(Equal(100))
		Expect(a.Capacity()).To(BeNumerically(">=", 100))

		for i := 0; i < 100; i++ {
			v, err := a.At(i)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(i))
		}
	})

	It("should shrink by the golden ratio when underutilized", func() {
		a = MakeBuilder[int]().WithCapacity(34).Build("Array")

		for i := 0; i < 34; i++ {
			a.Append(i)
		}

		// floor(34 / 1.618^2) = 12 is the shrink trigger point.
		for a.Len() > 12 {
			Expect(a.RemoveLast()).To(Succeed())
		}

		// floor(34 / 1.618) = 21.
		Expect(a.Capacity()).To(Equal(21))
		Expect(contents(a)).To(Equal(
			[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}))
	})

	It("should never shrink below the capacity floor", func() {
		for i := 0; i < 15; i++ {
			a.Append(i)
		}

		for a.Len() > 0 {
			Expect(a.RemoveLast()).To(Succeed())
		}

		Expect(a.Capacity()).To(Equal(16))
	})

	It("should sort", func() {
		for _, v := range []int{9, 4, 7, 1, 8, 1, 4, 0, 6, 2, 5, 3} {
			a.Append(v)
		}

		a.Sort(intLess)

		Expect(contents(a)).To(Equal(
			[]int{0, 1, 1, 2, 3, 4, 4, 5, 6, 7, 8, 9}))
	})

	It("should sort idempotently", func() {
		for _, v := range []int{3, 1, 2} {
			a.Append(v)
		}

		a.Sort(intLess)
		sortedOnce := contents(a)

		a.Sort(intLess)

		Expect(contents(a)).To(Equal(sortedOnce))
	})

	It("should keep the left half first among equal elements", func() {
		type record struct {
			key     int
			arrival int
		}

		r := MakeBuilder[record]().WithCapacity(10).Build("Array")
		for i, key := range []int{2, 1, 2, 1, 2, 1, 2, 1} {
			r.Append(record{key: key, arrival: i})
		}

		r.Sort(func(a, b record) bool { return a.key < b.key })

		arrivals := make([]int, 0, r.Len())
		for i := 0; i < r.Len(); i++ {
			v, err := r.At(i)
			Expect(err).ToNot(HaveOccurred())
			arrivals = append(arrivals, v.arrival)
		}

		Expect(arrivals).To(Equal([]int{1, 3, 5, 7, 0, 2, 4, 6}))
	})

	It("should panic on invalid configuration", func() {
		Expect(func() {
			MakeBuilder[int]().WithCapacity(-1).Build("Array")
		}).To(Panic())

		Expect(func() {
			MakeBuilder[int]().WithInitialLength(11).Build("Array")
		}).To(Panic())
	})
})

func contents(a *Array[int]) []int {
	out := make([]int, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		v, err := a.At(i)
		Expect(err).ToNot(HaveOccurred())
		out = append(out, v)
	}

	return out
}
