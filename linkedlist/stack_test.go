package linkedlist

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/structlab/collections"
)

var _ = Describe("Stack", func() {
	var s *Stack[int]

	BeforeEach(func() {
		s = MakeStackBuilder[int]().Build("Stack")
	})

	It("should pop in LIFO order", func() {
		s.Add(1)
		s.Add(2)
		s.Add(3)

		out := make([]int, 0, 3)
		for !s.IsEmpty() {
			v, err := s.Pop()
			Expect(err).ToNot(HaveOccurred())
			out = append(out, v)
		}

		Expect(out).To(Equal([]int{3, 2, 1}))
	})

	It("should peek at the most recently added value", func() {
		s.Add(1)
		s.Add(2)

		v, err := s.Peek()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(2))
		Expect(s.Len()).To(Equal(2))
	})

	It("should fail to pop when empty, staying empty", func() {
		_, err := s.Pop()
		Expect(err).To(MatchError(collections.ErrEmptyCollection))
		Expect(s.IsEmpty()).To(BeTrue())
	})

	It("should inherit the remaining list behavior", func() {
		s.Add(1)
		s.Add(2)
		s.Add(3)

		Expect(s.Len()).To(Equal(3))
		Expect(s.Contains(func(v int) bool { return v == 1 })).To(BeTrue())

		s.Clear()
		Expect(s.IsEmpty()).To(BeTrue())
	})
})
