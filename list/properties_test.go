package list_test

import (
	"github.com/erdragh/structures/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func mustGet[T any](l *list.List[T], i int) T {
	v, err := l.Get(i)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return v
}

var _ = Describe("putting values", func() {
	DescribeTable("every value is readable at its position",
		func(values []string) {
			l := list.New[string]()
			for _, v := range values {
				l.Put(v)
			}

			Expect(l.Len()).To(Equal(len(values)))
			for k, v := range values {
				Expect(mustGet(l, k)).To(Equal(v))
			}
		},
		Entry("no values", []string{}),
		Entry("one value", []string{"a"}),
		Entry("many values", []string{"a", "b", "c", "d", "e", "f"}),
	)
})

var _ = Describe("positional operations", func() {
	var (
		l   *list.List[int]
		old []int
	)

	BeforeEach(func() {
		l = list.New[int]()
		for i := 0; i < 5; i++ {
			l.Put(i * 10)
		}
		old = l.Values()
	})

	When("a value is pushed", func() {
		Specify("it becomes the front and the rest shift up", func() {
			l.Push(-1)

			Expect(mustGet(l, 0)).To(Equal(-1))
			for k := range old {
				Expect(mustGet(l, k+1)).To(Equal(old[k]))
			}
		})
	})

	When("the front is pulled", func() {
		Specify("the rest shift down", func() {
			v, ok := l.Pull()
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(old[0]))

			Expect(l.Len()).To(Equal(len(old) - 1))
			for k := 0; k < l.Len(); k++ {
				Expect(mustGet(l, k)).To(Equal(old[k+1]))
			}
		})
	})

	When("the back is taken", func() {
		Specify("it returns the last value and shrinks the list", func() {
			v, ok := l.Take()
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(old[len(old)-1]))
			Expect(l.Values()).To(Equal(old[:len(old)-1]))
		})
	})

	DescribeTable("inserting",
		func(i int) {
			Expect(l.Insert(i, 99)).To(Succeed())

			Expect(l.Len()).To(Equal(len(old) + 1))
			Expect(mustGet(l, i)).To(Equal(99))
			for k := 0; k < i; k++ {
				Expect(mustGet(l, k)).To(Equal(old[k]))
			}
			for k := i + 1; k < l.Len(); k++ {
				Expect(mustGet(l, k)).To(Equal(old[k-1]))
			}
		},
		Entry("at the front", 0),
		Entry("in the middle", 2),
		Entry("at the back", 4),
		Entry("past the back", 5),
	)

	DescribeTable("removing",
		func(i int) {
			Expect(l.Remove(i)).To(Succeed())

			Expect(l.Len()).To(Equal(len(old) - 1))
			for k := 0; k < i; k++ {
				Expect(mustGet(l, k)).To(Equal(old[k]))
			}
			for k := i; k < l.Len(); k++ {
				Expect(mustGet(l, k)).To(Equal(old[k+1]))
			}
		},
		Entry("at the front", 0),
		Entry("in the middle", 2),
		Entry("at the back", 4),
	)

	DescribeTable("setting",
		func(i int) {
			Expect(l.Set(i, 99)).To(Succeed())

			for k := range old {
				if k == i {
					Expect(mustGet(l, k)).To(Equal(99))
				} else {
					Expect(mustGet(l, k)).To(Equal(old[k]))
				}
			}
		},
		Entry("at the front", 0),
		Entry("in the middle", 2),
		Entry("at the back", 4),
	)

	When("setting at the length", func() {
		Specify("the value is appended", func() {
			Expect(l.Set(len(old), 99)).To(Succeed())
			Expect(l.Values()).To(Equal(append(old, 99)))
		})
	})

	DescribeTable("removing before",
		func(i int) {
			Expect(l.RemoveBefore(i)).To(Succeed())

			Expect(mustGet(l, 0)).To(Equal(old[i]))
			Expect(l.Values()).To(Equal(old[i:]))
		},
		Entry("the front", 0),
		Entry("the middle", 2),
		Entry("the back", 4),
	)

	DescribeTable("removing after",
		func(i int) {
			Expect(l.RemoveAfter(i)).To(Succeed())
			Expect(l.Values()).To(Equal(old[:i+1]))
		},
		Entry("the front", 0),
		Entry("the middle", 2),
		Entry("the back", 4),
	)

	DescribeTable("out of range indexes leave the list unchanged",
		func(op func(l *list.List[int]) error) {
			Expect(op(l)).To(MatchError(list.ErrIndexOutOfRange))
			Expect(l.Values()).To(Equal(old))
		},
		Entry("get", func(l *list.List[int]) error {
			_, err := l.Get(5)
			return err
		}),
		Entry("set", func(l *list.List[int]) error { return l.Set(6, 0) }),
		Entry("remove", func(l *list.List[int]) error { return l.Remove(5) }),
		Entry("insert", func(l *list.List[int]) error { return l.Insert(6, 0) }),
		Entry("remove after", func(l *list.List[int]) error { return l.RemoveAfter(5) }),
		Entry("remove before", func(l *list.List[int]) error { return l.RemoveBefore(6) }),
	)

	When("the list is cleared", func() {
		Specify("reads fail", func() {
			l.Clear()

			Expect(l.Len()).To(BeZero())
			_, err := l.Get(0)
			Expect(err).To(MatchError(list.ErrIndexOutOfRange))
		})
	})
})
