package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpucatalog/internal/domain"
)

func TestParseCSV(t *testing.T) {
	input := "\ufeffCPU Model Name;Family;CPU Model;Codename;Cores;Threads;Max Turbo Frequency (GHz);L3 Cache (MB);TDP (W);Launch Year;Max Memory (TB)\n" +
		"AMD EPYC 7301;AMD EPYC;EPYC 7301;;16;32;2,7;64;155;2017;2\n" +
		"Intel Xeon Gold 6240;Intel Xeon Gold;Gold 6240;Cascade Lake;18;36;3.9;24,75;150;2019;1\n" +
		";missing name row;;;;;;;;;\n"

	cpus, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cpus, 2)

	epyc := cpus[0]
	assert.Equal(t, "AMD EPYC 7301", epyc.ModelName)
	assert.Equal(t, "EPYC 7301", epyc.Model)
	assert.Empty(t, epyc.Codename)
	require.NotNil(t, epyc.Cores)
	assert.Equal(t, 16, *epyc.Cores)
	require.NotNil(t, epyc.MaxTurboGHz)
	assert.Equal(t, 2.7, *epyc.MaxTurboGHz)
	require.NotNil(t, epyc.LaunchYear)
	assert.Equal(t, 2017, *epyc.LaunchYear)

	xeon := cpus[1]
	assert.Equal(t, "Cascade Lake", xeon.Codename)
	require.NotNil(t, xeon.L3CacheMB)
	assert.Equal(t, 24.75, *xeon.L3CacheMB)

	require.Len(t, rowErrs, 1)
	assert.Equal(t, 4, rowErrs[0].Row)
	assert.Contains(t, rowErrs[0].Error(), "CPU Model Name")
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	_, _, err := ParseCSV(strings.NewReader("Family;Cores\nAMD;16\n"))
	assert.Error(t, err)
}

func TestParseCSVShortRows(t *testing.T) {
	input := "CPU Model Name;Family;Cores\nAMD EPYC 7301\n"

	cpus, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, cpus, 1)
	assert.Nil(t, cpus[0].Cores)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	cores := 64
	turbo := 3.5
	year := 2021

	var buf bytes.Buffer
	err := WriteCSV(&buf, []domain.CPU{{
		ID:          7,
		ModelName:   "AMD EPYC 7763",
		Family:      "AMD EPYC",
		Model:       "EPYC 7763",
		Codename:    "Milan",
		Cores:       &cores,
		MaxTurboGHz: &turbo,
		LaunchYear:  &year,
	}})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "ID;CPU Model Name;"))
	assert.Contains(t, out, "7;AMD EPYC 7763;AMD EPYC;EPYC 7763;Milan;64;;3.5;;;2021;")

	cpus, rowErrs, err := ParseCSV(strings.NewReader(out))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, cpus, 1)
	assert.Equal(t, "Milan", cpus[0].Codename)
	require.NotNil(t, cpus[0].Cores)
	assert.Equal(t, 64, *cpus[0].Cores)
}

func TestWriteExcel(t *testing.T) {
	cores := 16

	var buf bytes.Buffer
	err := WriteExcel(&buf, []domain.CPU{{
		ID:        1,
		ModelName: "AMD EPYC 7301",
		Codename:  "Naples",
		Cores:     &cores,
	}})
	require.NoError(t, err)

	// xlsx files are zip archives.
	assert.Equal(t, "PK", buf.String()[:2])
}
