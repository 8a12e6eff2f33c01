package ofximport_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofximport"
)

var _ = Describe("ofximport", func() {
	Describe("ParseDate()", func() {
		Context("when given a valid date string", func() {
			DescribeTable("should parse to a time.", func(input, expected string) {
				e, _ := time.Parse(time.RFC3339, expected)
				got, err := ofximport.ParseDate(input)
				Expect(err).To(Succeed())
				Expect(*got).To(BeTemporally("==", e))
			},
				Entry("YYYYMMDD", "20191001", "2019-10-01T00:00:00Z"),
				Entry("YYYYMMDD with trailing digits", "201910011", "2019-10-01T00:00:00Z"),
				Entry("YYYYMMDDHHMMSS", "20171108090000", "2017-11-08T09:00:00Z"),
				Entry("YYYYMMDDHHMMSS.f[z:Z]", "20170226120000.000[0:GMT]", "2017-02-26T12:00:00Z"),
				Entry("YYYYMMDDHHMMSS.f[z:Z]", "20180313093000.000[-10:EDT]", "2018-03-13T09:30:00Z"),
			)
		})
		Context("when given a invalid date string", func() {
			DescribeTable("should return an error.", func(input string) {
				got, err := ofximport.ParseDate(input)
				Expect(got).To(BeNil())
				Expect(err).To(MatchError("error - date string can not be parsed"))
			},
				Entry("Empty", ""),
				Entry("Invalid text", "test"),
				Entry("Invalid format", "2019/01/02"),
				Entry("Missing month and date", "2019"),
				Entry("Missing date", "2019-01"),
			)
		})
	})
	Describe("DateOnly()", func() {
		It("should truncate to date precision", func() {
			t := time.Date(2024, 1, 15, 12, 34, 56, 789, time.UTC)
			Expect(ofximport.DateOnly(t)).To(Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
		})
	})
})
