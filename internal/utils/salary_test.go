package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthlySalary(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{name: "monthly range", input: "月薪30,000~50,000元", want: 40000, wantOK: true},
		{name: "monthly floor", input: "40000元以上", want: 40000, wantOK: true},
		{name: "floor with separator", input: "月薪35,000元以上", want: 35000, wantOK: true},
		{name: "odd midpoint", input: "月薪30,001~30,002元", want: 30001.5, wantOK: true},
		{name: "negotiable", input: "待遇面議", wantOK: false},
		{name: "negotiable with number", input: "面議（經常性薪資達4萬元）", wantOK: false},
		{name: "hourly", input: "時薪150元", wantOK: false},
		{name: "daily", input: "日薪1,500~2,000元", wantOK: false},
		{name: "no digits", input: "待遇優", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "three numbers", input: "月薪30000~50000元，年終2個月", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMonthlySalary(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseMonthlySalaryMidpointIsExact(t *testing.T) {
	pairs := [][2]int{{1, 2}, {28000, 32000}, {45678, 98765}, {0, 1}, {999999, 1000000}}
	for _, p := range pairs {
		input := "月薪" + strconv.Itoa(p[0]) + "~" + strconv.Itoa(p[1]) + "元"
		got, ok := ParseMonthlySalary(input)
		require.True(t, ok, input)
		assert.Equal(t, float64(p[0]+p[1])/2, got, input)
	}
}

func TestParseMonthlySalaryIsRepeatable(t *testing.T) {
	first, ok1 := ParseMonthlySalary("月薪30,000~50,000元")
	second, ok2 := ParseMonthlySalary("月薪30,000~50,000元")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestSalaryEstimate(t *testing.T) {
	assert.Nil(t, SalaryEstimate("面議"))

	got := SalaryEstimate("月薪30,000~50,000元")
	require.NotNil(t, got)
	assert.Equal(t, 40000.0, *got)
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "40,000 元", FormatSalary(40000))
	assert.Equal(t, "1,234,567 元", FormatSalary(1234567.9))
	assert.Equal(t, "N/A", FormatOptionalSalary(nil))
}
