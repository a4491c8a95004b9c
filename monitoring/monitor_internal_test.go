package monitoring

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Monitor", func() {
	var monitor *Monitor

	BeforeEach(func() {
		monitor = NewMonitor()
	})

	It("should register subjects", func() {
		monitor.RegisterSubject("cache", struct{}{})

		Expect(monitor.subjects).To(HaveKey("cache"))
	})

	It("should reject duplicated subject names", func() {
		monitor.RegisterSubject("cache", struct{}{})

		Expect(func() {
			monitor.RegisterSubject("cache", struct{}{})
		}).To(Panic())
	})

	It("should track progress bars", func() {
		bar := monitor.CreateProgressBar("Replaying trace", 100)
		bar.IncrementFinished(30)
		bar.IncrementFinished(20)

		Expect(bar.Finished).To(Equal(uint64(50)))
		Expect(monitor.progressBars).To(HaveLen(1))

		monitor.CompleteProgressBar(bar)

		Expect(monitor.progressBars).To(BeEmpty())
	})

	It("should fall back to a random port for privileged ports", func() {
		monitor.WithPortNumber(80)

		Expect(monitor.portNumber).To(Equal(0))
	})
})
