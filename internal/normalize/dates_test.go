package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart string
		wantEnd   string
	}{
		{name: "plain years", start: "2020", end: "2022", wantStart: "2020", wantEnd: "2022"},
		{name: "year months", start: "2020-01", end: "2022-12", wantStart: "2020-01", wantEnd: "2022-12"},
		{name: "year range in start", start: "2023-2024", wantStart: "2023", wantEnd: "2024"},
		{name: "range overrides raw end", start: "2023-2024", end: "2030", wantStart: "2023", wantEnd: "2024"},
		{name: "month range in start", start: "2021-03 - 2023-11", wantStart: "2021-03", wantEnd: "2023-11"},
		{name: "en dash", start: "2019 – 2021", wantStart: "2019", wantEnd: "2021"},
		{name: "em dash", start: "2019—2021", wantStart: "2019", wantEnd: "2021"},
		{name: "to", start: "2018 to 2020", wantStart: "2018", wantEnd: "2020"},
		{name: "until", start: "2018-05 until 2019", wantStart: "2018-05", wantEnd: "2019"},
		{name: "through uppercase", start: "2018 THROUGH 2019", wantStart: "2018", wantEnd: "2019"},
		{name: "range held by end", start: "", end: "2015-2017", wantStart: "2015", wantEnd: "2017"},
		{name: "range held by end overrides start", start: "2010", end: "2015 to 2017", wantStart: "2015", wantEnd: "2017"},
		{name: "start range wins over end range", start: "2001-2002", end: "2015-2017", wantStart: "2001", wantEnd: "2002"},
		{name: "slash month", start: "2020/06", wantStart: "2020-06"},
		{name: "present end", start: "2022", end: "Present", wantStart: "2022"},
		{name: "range to present", start: "2022 - Present", wantStart: "2022"},
		{name: "full date", start: "2024-05-17", wantStart: "2024-05"},
		{name: "invalid month", start: "2024-13", wantStart: "2024"},
		{name: "out of range century", start: "1899", end: "2101"},
		{name: "out of range start year in range", start: "1899-1900"},
		{name: "out of range start keeps valid end", start: "1899", end: "1901", wantEnd: "1901"},
		{name: "two digit year", start: "24", end: "25"},
		{name: "prose", start: "sometime in spring"},
		{name: "year inside prose", start: "Started in 2019", wantStart: "2019"},
		{name: "empty", start: "", end: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := DateRange(tt.start, tt.end)
			assert.Equal(t, tt.wantStart, start, "start")
			assert.Equal(t, tt.wantEnd, end, "end")
		})
	}
}

func TestDate_CanonicalOrEmpty(t *testing.T) {
	inputs := []string{
		"2020", "2020-01", "1999-12", "May 2021", "2021.07", "20210", "x2020",
		"2020-00", "3000", "", "2020-2021", "2024-123",
	}

	for _, in := range inputs {
		got := Date(in)
		if got == "" {
			continue
		}
		assert.Regexp(t, `^(19|20)\d{2}(-(0[1-9]|1[0-2]))?$`, got, "input %q", in)
	}
}

func TestDate_YearRangeYieldsStartingYear(t *testing.T) {
	assert.Equal(t, "2023", Date("2023-2024"))
	assert.Equal(t, "2024", Date("2024-123"))
	assert.Equal(t, "", Date("1899-1900"))
	assert.Equal(t, "", Date("1850/05"))
	assert.Equal(t, "2020", Date("2020-00"))
}
