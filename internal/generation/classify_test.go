package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		model  string
		year   int
		family string
		want   string
	}{
		// AMD EPYC
		{"naples first gen", "EPYC 7301", 2017, "AMD EPYC", Naples},
		{"rome 2019", "EPYC 7402", 2019, "AMD EPYC", Rome},
		{"rome 2020", "EPYC 7552", 2020, "AMD EPYC", Rome},
		{"milan 2021", "EPYC 7302", 2021, "AMD EPYC", Milan},
		{"milan 2022", "EPYC 7773X", 2022, "AMD EPYC", Milan},
		{"genoa 9 series", "EPYC 9354", 2023, "AMD EPYC", Genoa},
		{"genoa 9 series 2022", "EPYC 9654", 2022, "AMD EPYC", Genoa},
		{"siena", "EPYC 8324P", 2023, "AMD EPYC", Siena},
		{"siena later year", "EPYC 8534P", 2024, "AMD EPYC", Siena},
		{"genoa 4 series", "EPYC 4564P", 2023, "AMD EPYC", Genoa},
		{"4 series off year", "EPYC 4464P", 2024, "AMD EPYC", Unknown},
		{"epyc 7 series off year", "EPYC 7301", 2018, "AMD EPYC", Unknown},
		{"epyc marker only in family", "7763", 2021, "AMD EPYC", Milan},

		// Intel Xeon Scalable by series digit
		{"skylake platinum", "Platinum 8160", 2017, "Intel Xeon Platinum", Skylake},
		{"skylake 2018", "Gold 8153", 2018, "Intel Xeon", Skylake},
		{"cascade lake gold", "Gold 6240", 2019, "Intel Xeon Gold", CascadeLake},
		{"cascade lake 2020", "Gold 6248R", 2020, "Intel Xeon Gold", CascadeLake},
		{"ice lake 5 series", "Gold 5318Y", 2021, "Intel Xeon Gold", IceLake},
		{"ice lake 4 series", "Silver 4310", 2021, "Intel Xeon Silver", IceLake},
		{"sapphire below overlap", "Platinum 8480+", 2023, "Intel Xeon Platinum", SapphireRapids},
		{"overlap 2023 sapphire", "Platinum 8592", 2023, "Intel Xeon Platinum", SapphireRapids},
		{"overlap 2024 emerald", "Platinum 8592", 2024, "Intel Xeon Platinum", EmeraldRapids},
		{"emerald above overlap", "Platinum 8692", 2024, "Intel Xeon Platinum", EmeraldRapids},
		{"emerald above overlap 2023", "Platinum 8690", 2023, "Intel Xeon Platinum", EmeraldRapids},

		// Intel family-year fallback
		{"fallback skylake", "Xeon Scalable", 2017, "Intel Xeon Scalable", Skylake},
		{"fallback sapphire", "Xeon no number", 2023, "Intel Xeon Platinum", SapphireRapids},
		{"fallback emerald", "Xeon no number", 2024, "Intel Xeon Gold", EmeraldRapids},
		{"series miss then fallback", "Gold 6342", 2021, "Intel Xeon Gold", IceLake},
		{"series miss fallback miss", "Gold 6140", 2022, "Intel Xeon Gold", Unknown},
		{"fallback needs family keyword", "Xeon 6338", 2022, "Intel Xeon", Unknown},

		// Legacy Intel Xeon
		{"ivy bridge", "E5-2697 V2", 2013, "Intel Xeon", IvyBridge},
		{"haswell", "E5-2690 V3", 2014, "Intel Xeon", Haswell},
		{"haswell spaced marker", "E5-2690 V 3", 2014, "Intel Xeon", Haswell},
		{"broadwell", "E5-2680 V4", 2016, "Intel Xeon", Broadwell},
		{"legacy e3", "E3-1270 V3", 2014, "Intel Xeon E3", Haswell},
		{"legacy wrong year", "E5-2690 V3", 2015, "Intel Xeon", Unknown},
		{"legacy no version marker", "E5-2690", 2014, "Intel Xeon", Unknown},

		// No vendor marker
		{"unrecognized vendor", "Opteron 6380", 2012, "AMD Opteron", Unknown},
		{"empty family no marker", "Ryzen 9 7950X", 2022, "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.model, tt.year, tt.family))
		})
	}
}

func TestClassifyEmptyInputs(t *testing.T) {
	assert.Equal(t, Unknown, Classify("", 2017, "AMD EPYC"))
	assert.Equal(t, Unknown, Classify("   ", 2017, "AMD EPYC"))
	assert.Equal(t, Unknown, Classify("EPYC 7301", 0, "AMD EPYC"))
	assert.Equal(t, Unknown, Classify("EPYC 7301", -1, "AMD EPYC"))
	assert.Equal(t, Unknown, Classify("", 0, ""))
}

func TestClassifyVendorPrecedence(t *testing.T) {
	// A model carrying both markers resolves via the AMD branch.
	assert.Equal(t, Naples, Classify("EPYC 7301 XEON", 2017, ""))
	assert.Equal(t, Unknown, Classify("EPYC XEON 9654", 2019, ""))
}

func TestClassifyNormalization(t *testing.T) {
	assert.Equal(t, Naples, Classify("  epyc 7301  ", 2017, "amd epyc"))
	assert.Equal(t, CascadeLake, Classify("gold 6240", 2019, "intel xeon gold"))
}

func TestClassifyDeterminism(t *testing.T) {
	first := Classify("Platinum 8592", 2023, "Intel Xeon Platinum")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify("Platinum 8592", 2023, "Intel Xeon Platinum"))
	}
}

func TestClassifyEPYCSeriesPriority(t *testing.T) {
	// The 7-series check is first and its bare "7" predicate also matches
	// parts from other series that contain a 7 anywhere.
	assert.Equal(t, Milan, Classify("EPYC 9754", 2021, "AMD EPYC"))
}
