package cache

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Set", func() {
	It("should assign strictly increasing recency on every visit", func() {
		set := &Set{
			Blocks: []*Block{{WayID: 0}, {WayID: 1}},
		}

		set.Visit(set.Blocks[0])
		set.Visit(set.Blocks[1])
		set.Visit(set.Blocks[0])

		Expect(set.Blocks[0].LastUse).To(BeNumerically(">",
			set.Blocks[1].LastUse))
	})
})
