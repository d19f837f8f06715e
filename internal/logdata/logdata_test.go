package logdata_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avatar-tools/logscan/internal/logdata"
	"github.com/avatar-tools/logscan/internal/models"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

func unix(date string, h, m, s int) int64 {
	d, err := time.Parse("2006-01-02", date)
	Expect(err).NotTo(HaveOccurred())
	return d.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second).Unix()
}

var _ = Describe("LogData", func() {
	var (
		ctx context.Context
		dir string
		ld  *logdata.LogData
	)

	BeforeEach(func() {
		ctx = context.Background()
		dir = GinkgoT().TempDir()

		var err error
		ld, err = logdata.New(dir, 2)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ld.Close()
	})

	Describe("Filenames", func() {
		BeforeEach(func() {
			writeLog(dir, "Bob", "2024-03-09", "[3/9/2024 1:00:00 PM] hi")
			writeLog(dir, "Bob", "2024-03-10", "[3/10/2024 1:00:00 PM] hi")
			writeLog(dir, "Alice.X", "2024-03-10", "[3/10/2024 1:00:00 PM] hi")
			Expect(os.WriteFile(filepath.Join(dir, "SotAChatLog_Bob_latest.txt"), nil, 0o644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "readme.txt"), nil, 0o644)).To(Succeed())
		})

		It("should list every chat log", func() {
			names, err := logdata.Filenames(dir, "", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(ConsistOf(
				"SotAChatLog_Alice.X_2024-03-10.txt",
				"SotAChatLog_Bob_2024-03-09.txt",
				"SotAChatLog_Bob_2024-03-10.txt",
			))
		})

		It("should filter by avatar and day", func() {
			ts := unix("2024-03-10", 20, 0, 0)
			names, err := logdata.Filenames(dir, "Bob", &ts)
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(Equal([]string{"SotAChatLog_Bob_2024-03-10.txt"}))
		})

		It("should treat the avatar name literally", func() {
			names, err := logdata.Filenames(dir, "Alice.", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(BeEmpty())
		})

		It("should report a missing folder", func() {
			_, err := logdata.Filenames(filepath.Join(dir, "missing"), "", nil)
			Expect(srvErrors.IsLogFolderError(err)).To(BeTrue())
		})
	})

	Describe("Avatars", func() {
		It("should return sorted unique names", func() {
			writeLog(dir, "Zed", "2024-03-09", "x")
			writeLog(dir, "Bob", "2024-03-09", "x")
			writeLog(dir, "Bob", "2024-03-10", "x")

			avatars, err := ld.Avatars()
			Expect(err).NotTo(HaveOccurred())
			Expect(avatars).To(Equal([]string{"Bob", "Zed"}))
		})

		It("should return an empty list for an empty folder", func() {
			avatars, err := ld.Avatars()
			Expect(err).NotTo(HaveOccurred())
			Expect(avatars).To(BeEmpty())
		})
	})

	Describe("StatsTimestamps", func() {
		// Given stats dumps spread over several files
		// When the timestamps are collected
		// Then they are all returned, most recent first
		It("should merge timestamps from every file newest first", func() {
			writeLog(dir, "Bob", "2024-03-09",
				"[3/9/2024 1:00:00 PM] AdventurerLevel: 10",
				"[3/9/2024 1:00:05 PM] Bob: hello",
				"[3/9/2024 11:00:00 PM] AdventurerLevel: 11",
			)
			writeLog(dir, "Bob", "2024-03-10",
				"[3/10/2024 8:15:00 AM] AdventurerLevel: 12",
			)
			writeLog(dir, "Alice", "2024-03-11",
				"[3/11/2024 8:15:00 AM] AdventurerLevel: 99",
			)

			ts, err := ld.StatsTimestamps(ctx, "Bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(ts).To(Equal([]int64{
				unix("2024-03-10", 8, 15, 0),
				unix("2024-03-09", 23, 0, 0),
				unix("2024-03-09", 13, 0, 0),
			}))
		})

		It("should return an empty list when nothing matches", func() {
			writeLog(dir, "Bob", "2024-03-09", "[3/9/2024 1:00:00 PM] Bob: hi")

			ts, err := ld.StatsTimestamps(ctx, "Bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(ts).To(BeEmpty())
		})

		It("should stop when the context is cancelled", func() {
			for i := 1; i <= 9; i++ {
				writeLog(dir, "Bob", fmt.Sprintf("2024-03-0%d", i), "[1/1/2024 1:00:00 PM] AdventurerLevel: 1")
			}
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := ld.StatsTimestamps(cctx, "Bob")
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("Stats", func() {
		It("should return the stats logged at the timestamp", func() {
			writeLog(dir, "Bob", "2024-03-09",
				"[3/9/2024 1:00:00 PM] AdventurerLevel: 10 Strength: 20",
				"[3/9/2024 2:00:00 PM] AdventurerLevel: 11 Strength: 21",
			)

			stats, err := ld.Stats(ctx, "Bob", unix("2024-03-09", 14, 0, 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Avatar).To(Equal("Bob"))
			Expect(stats.Fields()).To(Equal([]models.StatField{
				{Name: "AdventurerLevel", Value: "11"},
				{Name: "Strength", Value: "21"},
			}))
		})

		// Given a short stats line followed by untimestamped lines
		// When the stats are loaded
		// Then the continuation lines are part of the stats
		It("should join stats split over several lines", func() {
			writeLog(dir, "Bob", "2024-03-09",
				"[3/9/2024 1:00:00 PM] AdventurerLevel: 10",
				"Strength: 20",
				"Dexterity: 30",
				"[3/9/2024 1:00:01 PM] Bob: done",
			)

			stats, err := ld.Stats(ctx, "Bob", unix("2024-03-09", 13, 0, 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Fields()).To(HaveLen(3))
			Expect(stats.Fields()[2]).To(Equal(models.StatField{Name: "Dexterity", Value: "30"}))
		})

		It("should return a not found error for an unknown timestamp", func() {
			writeLog(dir, "Bob", "2024-03-09", "[3/9/2024 1:00:00 PM] AdventurerLevel: 10")

			_, err := ld.Stats(ctx, "Bob", unix("2024-03-09", 13, 0, 1))
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Describe("FindLogEntries", func() {
		It("should return matches oldest first across files", func() {
			writeLog(dir, "Bob", "2024-03-09",
				"[3/9/2024 1:00:00 PM] Bob: found a dragon",
				"[3/9/2024 1:00:01 PM] Bob: nothing here",
				"[3/9/2024 1:00:02 PM] Bob: another dragon",
			)
			writeLog(dir, "Bob", "2024-03-10",
				"[3/10/2024 1:00:00 PM] Bob: dragon again",
			)

			search, err := models.NewSearch("dragon", false)
			Expect(err).NotTo(HaveOccurred())

			res, err := ld.FindLogEntries(ctx, "Bob", search)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Truncated).To(BeFalse())
			Expect(res.Text).To(Equal(strings.Join([]string{
				"[3/9/2024 1:00:00 PM] Bob: found a dragon",
				"[3/9/2024 1:00:02 PM] Bob: another dragon",
				"[3/10/2024 1:00:00 PM] Bob: dragon again",
			}, "\n") + "\n"))
		})

		It("should support regular expressions", func() {
			writeLog(dir, "Bob", "2024-03-09",
				"[3/9/2024 1:00:00 PM] Bob: gold 100",
				"[3/9/2024 1:00:01 PM] Bob: gold lots",
			)

			search, err := models.NewSearch(`gold \d+`, true)
			Expect(err).NotTo(HaveOccurred())

			res, err := ld.FindLogEntries(ctx, "Bob", search)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Text).To(Equal("[3/9/2024 1:00:00 PM] Bob: gold 100\n"))
		})

		// Given more matching text than the search budget
		// When searching
		// Then only the most recent budget worth of lines is returned
		It("should keep only the most recent mebibyte of matches", func() {
			line := "[3/9/2024 1:00:00 PM] Bob: " + strings.Repeat("x", 200)
			for d := 1; d <= 5; d++ {
				lines := make([]string, 0, 2000)
				for i := range 2000 {
					lines = append(lines, fmt.Sprintf("%s %d-%04d", line, d, i))
				}
				writeLog(dir, "Bob", fmt.Sprintf("2024-03-0%d", d), lines...)
			}

			search, err := models.NewSearch("Bob:", false)
			Expect(err).NotTo(HaveOccurred())

			res, err := ld.FindLogEntries(ctx, "Bob", search)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Truncated).To(BeTrue())

			lines := strings.Split(strings.TrimSuffix(res.Text, "\n"), "\n")
			Expect(len(lines)).To(BeNumerically("<", 5*2000))
			Expect(len(res.Text)).To(BeNumerically("<=", logdata.SearchLimit+len(lines)+len(lines[0])))
			Expect(lines[len(lines)-1]).To(HaveSuffix(" 5-1999"))
		})

		It("should return empty text when nothing matches", func() {
			writeLog(dir, "Bob", "2024-03-09", "[3/9/2024 1:00:00 PM] Bob: hi")

			search, err := models.NewSearch("dragon", false)
			Expect(err).NotTo(HaveOccurred())

			res, err := ld.FindLogEntries(ctx, "Bob", search)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Text).To(BeEmpty())
		})
	})

	Describe("Close", func() {
		It("should make later scans return no data", func() {
			writeLog(dir, "Bob", "2024-03-09", "[3/9/2024 1:00:00 PM] AdventurerLevel: 10")
			ld.Close()

			ts, err := ld.StatsTimestamps(ctx, "Bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(ts).To(BeEmpty())
		})
	})
})
