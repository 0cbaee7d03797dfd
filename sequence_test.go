package slist_test

import (
	"errors"
	"strings"
	"sync"

	"github.com/mgnsk/slist"
	"github.com/mgnsk/slist/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("creating a sequence", func() {
	When("values are given", func() {
		Specify("they are kept in order", func() {
			s, err := slist.FromSlice([]int{10, 20, 30})
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Len()).To(Equal(3))
			Expect(s.Front()).To(Equal(10))
			Expect(s.Back()).To(Equal(30))
			Expect(s.Get(1)).To(Equal(20))
		})
	})

	When("no values are given", func() {
		Specify("it fails with invalid argument", func() {
			s, err := slist.FromSlice([]int{})
			Expect(err).To(MatchError(slist.ErrInvalidArgument))
			Expect(s).To(BeNil())

			_, err = slist.FromSlice[int](nil)
			Expect(err).To(MatchError(slist.ErrInvalidArgument))
		})
	})

	Specify("New creates an empty sequence", func() {
		s := slist.New[string]()
		Expect(s.Len()).To(BeZero())
		Expect(s.IsEmpty()).To(BeTrue())
		Expect(s.String()).To(Equal("size: 0, nil"))
	})
})

var _ = Describe("inserting values", func() {
	var s *slist.Sequence[int]

	BeforeEach(func() {
		var err error
		s, err = slist.FromSlice([]int{1, 2, 3})
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("the inserted value is found at its index",
		func(index int) {
			Expect(s.Insert(index, 42)).To(Succeed())
			Expect(s.Len()).To(Equal(4))
			Expect(s.Get(index)).To(Equal(42))
			Expect(s.Contains(42)).To(BeTrue())
		},
		Entry("front", 0),
		Entry("middle", 1),
		Entry("before back", 2),
		Entry("back", 3),
	)

	DescribeTable("an invalid index leaves the sequence unchanged",
		func(index int) {
			err := s.Insert(index, 42)
			Expect(err).To(MatchError(slist.ErrIndexOutOfRange))
			Expect(s.Values()).To(Equal([]int{1, 2, 3}))
		},
		Entry("negative", -1),
		Entry("past the end", 4),
	)

	Specify("push front then pop front is identity", func() {
		s.PushFront(0)
		Expect(s.PopFront()).To(Equal(0))
		Expect(s.Values()).To(Equal([]int{1, 2, 3}))
	})

	Specify("push back then pop back is identity", func() {
		s.PushBack(4)
		Expect(s.PopBack()).To(Equal(4))
		Expect(s.Values()).To(Equal([]int{1, 2, 3}))
	})
})

var _ = Describe("removing values", func() {
	var s *slist.Sequence[string]

	BeforeEach(func() {
		var err error
		s, err = slist.FromSlice([]string{"one", "two", "three"})
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("the removed value is returned",
		func(index int, expected string, rest []string) {
			Expect(s.Remove(index)).To(Equal(expected))
			Expect(s.Len()).To(Equal(2))
			Expect(s.Values()).To(Equal(rest))
		},
		Entry("front", 0, "one", []string{"two", "three"}),
		Entry("middle", 1, "two", []string{"one", "three"}),
		Entry("back", 2, "three", []string{"one", "two"}),
	)

	DescribeTable("positional operations reject the index equal to length",
		func(op func(s *slist.Sequence[string]) error) {
			err := op(s)
			Expect(err).To(MatchError(slist.ErrIndexOutOfRange))

			var idxErr *slist.IndexError
			Expect(errors.As(err, &idxErr)).To(BeTrue())
			Expect(idxErr.Index).To(Equal(3))
			Expect(idxErr.Max).To(Equal(3))

			Expect(s.Values()).To(Equal([]string{"one", "two", "three"}))
		},
		Entry("remove", func(s *slist.Sequence[string]) error {
			_, err := s.Remove(s.Len())
			return err
		}),
		Entry("get", func(s *slist.Sequence[string]) error {
			_, err := s.Get(s.Len())
			return err
		}),
		Entry("set", func(s *slist.Sequence[string]) error {
			return s.Set(s.Len(), "four")
		}),
	)

	When("the value exists once", func() {
		Specify("it is no longer contained", func() {
			Expect(s.RemoveValue("two")).To(BeTrue())
			Expect(s.Contains("two")).To(BeFalse())
			Expect(s.Len()).To(Equal(2))
		})
	})

	When("the value does not exist", func() {
		Specify("the sequence is unchanged", func() {
			Expect(s.RemoveValue("four")).To(BeFalse())
			Expect(s.Values()).To(Equal([]string{"one", "two", "three"}))
		})
	})

	When("the sequence is emptied", func() {
		Specify("front and back operations fail", func() {
			s.Clear()
			Expect(s.IsEmpty()).To(BeTrue())

			_, err := s.PopFront()
			Expect(err).To(MatchError(slist.ErrIndexOutOfRange))
			_, err = s.PopBack()
			Expect(err).To(MatchError(slist.ErrIndexOutOfRange))
			_, err = s.Front()
			Expect(err).To(MatchError(slist.ErrIndexOutOfRange))
			_, err = s.Back()
			Expect(err).To(MatchError(slist.ErrIndexOutOfRange))
		})
	})
})

var _ = Describe("interleaved operations", func() {
	Specify("push back three values and remove the middle one", func() {
		s := slist.New[int]()

		s.PushBack(1)
		s.PushBack(2)
		s.PushBack(3)

		Expect(s.Remove(1)).To(Equal(2))

		var values []int
		for _, v := range s.All() {
			values = append(values, v)
		}
		Expect(values).To(Equal([]int{1, 3}))
	})

	Specify("set overwrites in place", func() {
		s, err := slist.FromSlice([]int{1, 2, 3})
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Set(0, 10)).To(Succeed())
		Expect(s.String()).To(Equal("size: 3, 10 -> 2 -> 3 -> nil"))
	})
})

var _ = Describe("custom equality", func() {
	Specify("it is used for lookup and removal", func() {
		s := slist.New(slist.WithEqual(strings.EqualFold))

		s.PushBack("Hello")
		s.PushBack("World")

		Expect(s.Contains("hello")).To(BeTrue())
		Expect(s.RemoveValue("WORLD")).To(BeTrue())
		Expect(s.Values()).To(Equal([]string{"Hello"}))
	})
})

var _ = Describe("compound operations", func() {
	var s *slist.Sequence[int]

	BeforeEach(func() {
		var err error
		s, err = slist.FromSlice([]int{1, 2, 3})
		Expect(err).NotTo(HaveOccurred())
	})

	Specify("Update applies several operations", func() {
		err := s.Update(func(l *list.List[int]) error {
			v, err := l.PopFront()
			if err != nil {
				return err
			}
			l.PushBack(v)
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Values()).To(Equal([]int{2, 3, 1}))
	})

	Specify("Update returns the error of f", func() {
		err := s.Update(func(l *list.List[int]) error {
			return l.Insert(10, 0)
		})
		Expect(err).To(MatchError(slist.ErrIndexOutOfRange))
	})

	Specify("View reads the list", func() {
		var sum int
		s.View(func(l *list.List[int]) {
			l.Do(func(v int) bool {
				sum += v
				return true
			})
		})
		Expect(sum).To(Equal(6))
	})
})

var _ = Describe("concurrent access", func() {
	Specify("concurrent pushes are all kept", func() {
		s := slist.New[int]()

		n := 50
		perWorker := 20

		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()

				for j := 0; j < perWorker; j++ {
					if j%2 == 0 {
						s.PushFront(i*perWorker + j)
					} else {
						s.PushBack(i*perWorker + j)
					}
					_ = s.Contains(i)
				}
			}(i)
		}

		wg.Wait()

		Expect(s.Len()).To(Equal(n * perWorker))
		Expect(s.Values()).To(HaveLen(n * perWorker))
		for i := 0; i < n*perWorker; i++ {
			Expect(s.Contains(i)).To(BeTrue())
		}
	})
})
