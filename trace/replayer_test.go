package trace

import (
	"bytes"
	"log"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/sarchlab/cachesim/cache"
)

var _ = Describe("Replayer", func() {
	var (
		mockCtrl *gomock.Controller
		accessor *MockAccessor
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		accessor = NewMockAccessor(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	replay := func(traceText string, tracer Tracer, logger *log.Logger) {
		r := MakeBuilder().
			WithAccessor(accessor).
			WithReader(strings.NewReader(traceText)).
			WithTracer(tracer).
			WithVerboseLogger(logger).
			Build()

		Expect(r.Replay()).To(Succeed())
	}

	It("should access once for a load and once for a store", func() {
		accessor.EXPECT().Access(uint64(0x10)).Return(cache.AccessResult{})
		accessor.EXPECT().Access(uint64(0x20)).Return(cache.AccessResult{})

		replay(" L 10,4\n S 20,4\n", nil, nil)
	})

	It("should access twice for a modify", func() {
		accessor.EXPECT().
			Access(uint64(0x10)).
			Return(cache.AccessResult{}).
			Times(2)

		replay(" M 10,4\n", nil, nil)
	})

	It("should ignore instruction fetches", func() {
		replay("I 0400d7d4,8\n", nil, nil)
	})

	It("should skip malformed lines and continue", func() {
		accessor.EXPECT().Access(uint64(0x10)).Return(cache.AccessResult{})
		accessor.EXPECT().Access(uint64(0x20)).Return(cache.AccessResult{})

		replay(" L 10,4\ngarbage line\n S 20,4\n", nil, nil)
	})

	It("should report every access to the tracer in order", func() {
		tracer := NewMockTracer(mockCtrl)

		missResult := cache.AccessResult{}
		hitResult := cache.AccessResult{Hit: true}

		accessor.EXPECT().Access(uint64(0x10)).Return(missResult)
		accessor.EXPECT().Access(uint64(0x10)).Return(hitResult)

		gomock.InOrder(
			tracer.EXPECT().TraceAccess(
				uint64(1),
				Event{Op: OpModify, Address: 0x10, Size: 4},
				missResult,
			),
			tracer.EXPECT().TraceAccess(
				uint64(2),
				Event{Op: OpModify, Address: 0x10, Size: 4},
				hitResult,
			),
		)

		replay(" M 10,4\n", tracer, nil)
	})

	It("should log every access when verbose", func() {
		buf := &bytes.Buffer{}
		logger := log.New(buf, "", 0)

		accessor.EXPECT().Access(uint64(0x10)).Return(cache.AccessResult{})
		accessor.EXPECT().Access(uint64(0x20)).Return(
			cache.AccessResult{Hit: true})
		accessor.EXPECT().Access(uint64(0x30)).Return(
			cache.AccessResult{Evicted: true})

		replay(" L 10,4\n S 20,8\n L 30,4\n", nil, logger)

		Expect(buf.String()).To(Equal(
			"L 10,4 miss\nS 20,8 hit\nL 30,4 miss eviction\n"))
	})
})
