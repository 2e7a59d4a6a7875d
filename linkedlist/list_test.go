package linkedlist

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/structlab/collections"
)

var intLess = func(a, b int) bool { return a < b }

func drain(l *List[int]) []int {
	out := make([]int, 0, l.Len())
	for !l.IsEmpty() {
		v, err := l.Pop()
		Expect(err).ToNot(HaveOccurred())
		out = append(out, v)
	}

	return out
}

var _ = Describe("List", func() {
	var l *List[int]

	BeforeEach(func() {
		l = MakeBuilder[int]().Build("List")
	})

	It("should start empty", func() {
		Expect(l.IsEmpty()).To(BeTrue())
		Expect(l.Len()).To(Equal(0))
	})

	It("should pop in FIFO order", func() {
		l.Add(1)
		l.Add(2)
		l.Add(3)

		Expect(drain(l)).To(Equal([]int{1, 2, 3}))
	})

	It("should peek without removing", func() {
		l.Add(7)
		l.Add(8)

		v, err := l.Peek()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(7))
		Expect(l.Len()).To(Equal(2))
	})

	It("should fail to peek or pop when empty, staying empty", func() {
		_, err := l.Peek()
		Expect(err).To(MatchError(collections.ErrEmptyCollection))

		_, err = l.Pop()
		Expect(err).To(MatchError(collections.ErrEmptyCollection))

		Expect(l.IsEmpty()).To(BeTrue())
		Expect(l.Len()).To(Equal(0))
	})

	It("should find elements by condition", func() {
		l.Add(1)
		l.Add(2)
		l.Add(3)

		Expect(l.Contains(func(v int) bool { return v == 2 })).To(BeTrue())
		Expect(l.Contains(func(v int) bool { return v > 5 })).To(BeFalse())
	})

	It("should reverse in place", func() {
		l.Add(1)
		l.Add(2)
		l.Add(3)

		l.Reverse()

		Expect(drain(l)).To(Equal([]int{3, 2, 1}))
	})

	It("should restore the original order when reversed twice", func() {
		for _, v := range []int{4, 8, 15, 16, 23, 42} {
			l.Add(v)
		}

		l.Reverse()
		l.Reverse()

		Expect(drain(l)).To(Equal([]int{4, 8, 15, 16, 23, 42}))
	})

	It("should keep the tail consistent after reversing", func() {
		l.Add(1)
		l.Add(2)

		l.Reverse()
		l.Add(3)

		Expect(drain(l)).To(Equal([]int{2, 1, 3}))
	})

	It("should tolerate reversing empty and single-element lists", func() {
		l.Reverse()
		Expect(l.IsEmpty()).To(BeTrue())

		l.Add(1)
		l.Reverse()

		Expect(drain(l)).To(Equal([]int{1}))
	})

	It("should sort into non-decreasing order", func() {
		for _, v := range []int{5, 3, 8, 1, 9, 2, 7, 2, 6, 4} {
			l.Add(v)
		}

		l.Sort(intLess)

		Expect(drain(l)).To(Equal([]int{1, 2, 2, 3, 4, 5, 6, 7, 8, 9}))
	})

	It("should sort idempotently", func() {
		for _, v := range []int{3, 1, 2} {
			l.Add(v)
		}

		l.Sort(intLess)
		l.Sort(intLess)

		Expect(drain(l)).To(Equal([]int{1, 2, 3}))
	})

	It("should keep the tail consistent after sorting", func() {
		for _, v := range []int{2, 3, 1} {
			l.Add(v)
		}

		l.Sort(intLess)
		l.Add(4)

		Expect(drain(l)).To(Equal([]int{1, 2, 3, 4}))
	})

	It("should sort empty and single-element lists", func() {
		l.Sort(intLess)
		Expect(l.IsEmpty()).To(BeTrue())

		l.Add(1)
		l.Sort(intLess)

		Expect(drain(l)).To(Equal([]int{1}))
	})

	It("should clear", func() {
		l.Add(1)
		l.Add(2)

		l.Clear()

		Expect(l.IsEmpty()).To(BeTrue())
		Expect(l.Len()).To(Equal(0))
	})

	It("should store as a count followed by the elements", func() {
		l.Add(10)
		l.Add(20)
		l.Add(30)

		var sb strings.Builder
		Expect(l.Store(&sb)).To(Succeed())

		Expect(sb.String()).To(Equal("3 10 20 30"))
	})

	It("should load what it stored", func() {
		for _, v := range []int{10, 20, 30} {
			l.Add(v)
		}

		var sb strings.Builder
		Expect(l.Store(&sb)).To(Succeed())

		loaded := MakeBuilder[int]().Build("List")
		Expect(loaded.Load(strings.NewReader(sb.String()))).To(Succeed())

		Expect(drain(loaded)).To(Equal([]int{10, 20, 30}))
	})

	It("should replace existing contents on load", func() {
		l.Add(99)

		Expect(l.Load(strings.NewReader("2 1 2"))).To(Succeed())

		Expect(drain(l)).To(Equal([]int{1, 2}))
	})
})
