package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avatar-tools/logscan/internal/models"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

var _ = Describe("Stats", func() {
	Describe("Fields", func() {
		It("should pair names and values", func() {
			s := models.Stats{Text: " AdventurerLevel: 80 Strength: 55.5 Intelligence: 3,25"}
			Expect(s.Fields()).To(Equal([]models.StatField{
				{Name: "AdventurerLevel", Value: "80"},
				{Name: "Strength", Value: "55.5"},
				{Name: "Intelligence", Value: "3,25"},
			}))
		})

		It("should skip stray words and stop at a dangling name", func() {
			s := models.Stats{Text: "noise AdventurerLevel: 80 more noise Strength:"}
			Expect(s.Fields()).To(Equal([]models.StatField{
				{Name: "AdventurerLevel", Value: "80"},
			}))
		})

		It("should parse comma decimal separators", func() {
			v, ok := models.StatField{Name: "X", Value: "3,25"}.Float()
			Expect(ok).To(BeTrue())
			Expect(v).To(BeNumerically("~", 3.25, 1e-9))
		})
	})

	Describe("Filter", func() {
		s := models.Stats{Text: "AirResistance: 10 FireResistance: 5 Title: Sir Strength: 55"}

		It("should keep numeric fields matching the filter ignoring case", func() {
			Expect(s.Filter("resist")).To(Equal([]models.StatField{
				{Name: "AirResistance", Value: "10"},
				{Name: "FireResistance", Value: "5"},
			}))
		})

		It("should keep every numeric field without a filter", func() {
			Expect(s.Filter("")).To(HaveLen(3))
		})
	})

	Describe("Resists", func() {
		// Given resistances, attunements and magic resistance
		// When effective resists are computed
		// Then attunement counts half and magic applies to all elements but chaos
		It("should compute effective resistances", func() {
			s := models.Stats{Text: "AirResistance: 10 AirAttunement: 4 ChaosResistance: 3 " +
				"FireAttunement: 1,5 MagicResistance: 2 Strength: 40"}

			Expect(s.Resists()).To(Equal([]models.Resist{
				{Element: "Air", Value: 14},
				{Element: "Chaos", Value: 3},
				{Element: "Fire", Value: 2.75},
			}))
		})

		It("should return nothing without resistance stats", func() {
			s := models.Stats{Text: "Strength: 40"}
			Expect(s.Resists()).To(BeEmpty())
		})
	})
})

var _ = Describe("Search", func() {
	It("should match substrings", func() {
		s, err := models.NewSearch("dragon", false)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Match("a red dragon")).To(BeTrue())
		Expect(s.Match("a red Dragon")).To(BeFalse())
		Expect(s.IsRegex()).To(BeFalse())
	})

	It("should match regular expressions", func() {
		s, err := models.NewSearch(`(?i)dragon`, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Match("a red Dragon")).To(BeTrue())
	})

	It("should reject an invalid regular expression", func() {
		_, err := models.NewSearch("(", true)
		Expect(srvErrors.IsInvalidArgumentError(err)).To(BeTrue())
	})

	It("should reject an empty term", func() {
		_, err := models.NewSearch("", false)
		Expect(srvErrors.IsInvalidArgumentError(err)).To(BeTrue())
	})

	It("should highlight plain matches", func() {
		s, err := models.NewSearch("lich", false)
		Expect(err).NotTo(HaveOccurred())
		mark := func(m string) string { return "<" + m + ">" }
		Expect(s.Highlight("a lich and a lich", mark)).To(Equal("a <lich> and a <lich>"))
	})

	It("should highlight regexp matches", func() {
		s, err := models.NewSearch(`\d+ gold`, true)
		Expect(err).NotTo(HaveOccurred())
		mark := func(m string) string { return "<" + m + ">" }
		Expect(s.Highlight("looted 12 gold and 3 gold", mark)).To(Equal("looted <12 gold> and <3 gold>"))
	})
})
