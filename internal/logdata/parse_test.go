package logdata_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avatar-tools/logscan/internal/logdata"
)

var _ = Describe("Parsing", func() {
	day := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	at := func(h, m, s int) int64 {
		return time.Date(2024, time.March, 9, h, m, s, 0, time.UTC).Unix()
	}

	DescribeTable("LogTimestamp",
		func(text string, want int64, wantOK bool) {
			ts, ok := logdata.LogTimestamp(text, day)
			Expect(ok).To(Equal(wantOK))
			if wantOK {
				Expect(ts).To(Equal(want))
			}
		},
		Entry("24 hour clock", "09.03.2024 17:05:09", at(17, 5, 9), true),
		Entry("PM marker", "3/9/2024 5:05:09 PM", at(17, 5, 9), true),
		Entry("lower case pm", "3/9/2024 5:05:09 pm", at(17, 5, 9), true),
		Entry("AM marker", "3/9/2024 5:05:09 AM", at(5, 5, 9), true),
		Entry("noon", "3/9/2024 12:30:00 PM", at(12, 30, 0), true),
		Entry("midnight", "3/9/2024 12:30:00 AM", at(0, 30, 0), true),
		Entry("date from the filename wins", "1/1/1999 01:02:03", at(1, 2, 3), true),
		Entry("missing time", "3/9/2024", int64(0), false),
		Entry("too many parts", "3/9/2024 5:05:09 PM extra", int64(0), false),
		Entry("short time", "3/9/2024 5:05", int64(0), false),
		Entry("long time", "3/9/2024 5:05:09:01", int64(0), false),
		Entry("garbage", "3/9/2024 a:b:c", int64(0), false),
		Entry("out of range", "3/9/2024 25:00:00", int64(0), false),
	)

	Describe("StatsTimestamp", func() {
		It("should accept a stats line", func() {
			ts, ok := logdata.StatsTimestamp("[3/9/2024 5:05:09 PM] AdventurerLevel: 80 ProducerLevel: 40", day)
			Expect(ok).To(BeTrue())
			Expect(ts).To(Equal(at(17, 5, 9)))
		})

		It("should ignore other chat lines", func() {
			_, ok := logdata.StatsTimestamp("[3/9/2024 5:05:09 PM] Bob: hello", day)
			Expect(ok).To(BeFalse())
		})

		It("should ignore lines without a timestamp", func() {
			_, ok := logdata.StatsTimestamp("AdventurerLevel: 80", day)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("StatsText", func() {
		line := "[3/9/2024 5:05:09 PM] AdventurerLevel: 80 Strength: 55"

		It("should return the text after the bracket for a matching timestamp", func() {
			text, ok := logdata.StatsText(line, at(17, 5, 9), day)
			Expect(ok).To(BeTrue())
			Expect(text).To(Equal(" AdventurerLevel: 80 Strength: 55"))
		})

		It("should reject a different timestamp", func() {
			_, ok := logdata.StatsText(line, at(17, 5, 10), day)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Filenames helpers", func() {
		It("should extract the date of a log file", func() {
			d, ok := logdata.FileDate("/logs/SotAChatLog_Some_Avatar_2024-03-09.txt")
			Expect(ok).To(BeTrue())
			Expect(d).To(BeTemporally("==", day))
		})

		It("should reject a file without a date", func() {
			_, ok := logdata.FileDate("/logs/notes.txt")
			Expect(ok).To(BeFalse())
		})

		It("should extract avatar names containing underscores", func() {
			name, ok := logdata.AvatarName("SotAChatLog_Some_Avatar_2024-03-09.txt")
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("Some_Avatar"))
		})

		It("should build filenames", func() {
			Expect(logdata.Filename("Bob", day)).To(Equal("SotAChatLog_Bob_2024-03-09.txt"))
		})
	})
})
