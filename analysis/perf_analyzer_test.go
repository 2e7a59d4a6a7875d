package analysis

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/structlab/collections/hooking"
)

var _ = Describe("OpCounter", func() {
	It("should count hook invocations", func() {
		counter := NewOpCounter()

		Expect(counter.CurrentOp()).To(Equal(int64(0)))

		for i := 0; i < 3; i++ {
			counter.Func(hooking.HookCtx{})
		}

		Expect(counter.CurrentOp()).To(Equal(int64(3)))
	})
})

var _ = Describe("PerfAnalyzer", func() {
	var (
		mockCtrl  *gomock.Controller
		container *MockContainer
		analyzer  *PerfAnalyzer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		container = NewMockContainer(mockCtrl)

		analyzer = MakePerfAnalyzerBuilder().
			WithPeriod(10).
			WithDBFilename(filepath.Join(GinkgoT().TempDir(), "perf")).
			Build()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should attach a counter, a level analyzer, and a rate analyzer",
		func() {
			container.EXPECT().AcceptHook(gomock.Any()).Times(3)

			analyzer.RegisterContainer(container)
		})

	It("should share one operation count across containers", func() {
		container.EXPECT().AcceptHook(gomock.Any()).Times(3)

		analyzer.RegisterContainer(container)

		analyzer.opCounter.Func(hooking.HookCtx{})
		analyzer.opCounter.Func(hooking.HookCtx{})

		Expect(analyzer.CurrentOp()).To(Equal(int64(2)))
	})
})

var _ = Describe("CSVBackend", func() {
	It("should write entries as CSV rows", func() {
		filename := filepath.Join(GinkgoT().TempDir(), "perf")

		backend := NewCSVPerfAnalyzerBackend(filename)
		backend.AddDataEntry(PerfEntry{
			Start:     0,
			End:       10,
			Where:     "Queue",
			What:      "Level",
			EntryType: "Container",
			Value:     0.9,
			Unit:      "",
		})
		backend.Flush()

		data, err := os.ReadFile(filename + ".csv")
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(
			"Start,End,Where,What,EntryType,Value,Unit"))
		Expect(string(data)).To(ContainSubstring("0,10,Queue,Level,Container"))
	})
})
