package models_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avatar-tools/logscan/internal/models"
)

var (
	riftStart = time.Date(1997, 9, 2, 0, 0, 0, 0, time.UTC)
	valeStart = time.Date(2018, 2, 23, 13, 0, 0, 0, time.UTC)
)

func openRifts(rifts []models.Portal) []string {
	var open []string
	for _, r := range rifts {
		if r.Open {
			open = append(open, r.Place)
		}
	}
	return open
}

var _ = Describe("Portals", func() {
	Describe("LunarRifts", func() {
		It("should open Blood River at the start of a cycle", func() {
			rifts := models.LunarRifts(riftStart)
			Expect(rifts).To(HaveLen(8))
			Expect(openRifts(rifts)).To(Equal([]string{"Blood River"}))
			Expect(rifts[0].Remaining).To(Equal(525 * time.Second))
			Expect(rifts[1]).To(Equal(models.Portal{Place: "Solace Bridge", Remaining: 525 * time.Second}))
			Expect(rifts[2].Remaining).To(Equal(1050 * time.Second))
			Expect(rifts[7].Remaining).To(Equal(3675 * time.Second))
		})

		// Given an instant 25 seconds into the fourth phase of a later cycle
		// When the rifts are computed
		// Then Brookside is open and the earlier rifts wait for the next cycle
		It("should follow the phase within any cycle", func() {
			now := riftStart.Add(1000*70*time.Minute + 3*525*time.Second + 25*time.Second)

			rifts := models.LunarRifts(now)
			Expect(openRifts(rifts)).To(Equal([]string{"Brookside"}))
			Expect(rifts[3].Remaining).To(Equal(500 * time.Second))
			Expect(rifts[4].Remaining).To(Equal(500 * time.Second))
			Expect(rifts[2].Remaining).To(Equal(3650 * time.Second))
		})

		It("should wrap instants before the epoch", func() {
			rifts := models.LunarRifts(riftStart.Add(-time.Second))
			Expect(openRifts(rifts)).To(Equal([]string{"Etceter"}))
			Expect(rifts[7].Remaining).To(Equal(time.Second))
			Expect(rifts[0].Remaining).To(Equal(time.Second))
		})

		It("should ignore the location of the instant", func() {
			now := riftStart.Add(17 * time.Minute)
			local := now.In(time.FixedZone("UTC+9", 9*60*60))
			Expect(models.LunarRifts(local)).To(Equal(models.LunarRifts(now)))
		})
	})

	Describe("NextRifts", func() {
		It("should start with the open rift and keep the cycle order", func() {
			now := riftStart.Add(6*525*time.Second + time.Minute)

			next := models.NextRifts(now)
			Expect(next).To(HaveLen(8))
			Expect(next[0].Place).To(Equal("Brittany Graveyard"))
			Expect(next[0].Open).To(BeTrue())
			Expect(next[1].Place).To(Equal("Etceter"))
			Expect(next[2].Place).To(Equal("Blood River"))
			for i := 2; i < len(next); i++ {
				Expect(next[i].Remaining - next[i-1].Remaining).To(Equal(525 * time.Second))
			}
		})
	})

	DescribeTable("LostVale",
		func(offset time.Duration, open bool, remaining time.Duration) {
			vale := models.LostVale(valeStart.Add(offset))
			Expect(vale.Place).To(Equal("Lost Vale"))
			Expect(vale.Open).To(Equal(open))
			Expect(vale.Remaining).To(Equal(remaining))
		},
		Entry("opening of the first segment", time.Duration(0), true, time.Hour),
		Entry("inside the first open hour", 30*time.Minute, true, 30*time.Minute),
		Entry("closed in the first segment", time.Hour, false, 10*time.Hour),
		Entry("opening of the second segment", 11*time.Hour, true, time.Hour),
		Entry("closed late in the second segment", 20*time.Hour, false, 2*time.Hour),
		Entry("opening of the short segment", 22*time.Hour, true, time.Hour),
		Entry("closed in the short segment", 23*time.Hour+30*time.Minute, false, 4*time.Hour+30*time.Minute),
		Entry("next window", 28*time.Hour, true, time.Hour),
		Entry("before the first sighting", -30*time.Minute, false, 30*time.Minute),
	)
})
