// Package generation infers a CPU generation codename from a model string,
// a launch year, and an optional family string.
//
// Classification is a pure function over an ordered set of rules grouped by
// vendor branch (AMD EPYC, Intel Xeon Scalable, legacy Intel Xeon). Within a
// branch the first matching rule wins; a rule that matches but knows no
// codename for the given year yields Unknown rather than falling through to
// a later rule. Every failure mode collapses to Unknown, never an error.
package generation

import (
	"regexp"
	"strings"
)

// Unknown is the explicit no-rule-matched result. Callers treat it as
// "leave the codename unset", not as a fault.
const Unknown = ""

// Generation codenames the classifier can produce.
const (
	// AMD EPYC
	Naples = "Naples"
	Rome   = "Rome"
	Milan  = "Milan"
	Genoa  = "Genoa"
	Siena  = "Siena"

	// Intel Xeon Scalable
	Skylake        = "Skylake"
	CascadeLake    = "Cascade Lake"
	IceLake        = "Ice Lake"
	SapphireRapids = "Sapphire Rapids"
	EmeraldRapids  = "Emerald Rapids"

	// Legacy Intel Xeon E3/E5
	IvyBridge = "Ivy Bridge"
	Haswell   = "Haswell"
	Broadwell = "Broadwell"
)

// Model numbers 8500-8599 were sold under both the Sapphire Rapids and
// Emerald Rapids lines. The tie-break picks Sapphire Rapids for 2023 and
// Emerald Rapids otherwise; it is a heuristic, not ground truth.
const (
	overlapRangeLow  = 8500
	emeraldRapidsLow = 8600
)

var modelNumberPattern = regexp.MustCompile(`\d{4}`)

// input carries the normalized classifier inputs: uppercased, trimmed
// strings plus the first 4-digit run found in the model, if any.
type input struct {
	model    string
	family   string
	year     int
	modelNum int
	hasNum   bool
}

// Classify returns the generation codename for a CPU model, or Unknown when
// no rule applies. It is deterministic and safe for concurrent use.
//
// family is only consulted when the model string alone is not enough: for
// vendor dispatch and for the Intel Scalable year fallback.
func Classify(model string, year int, family string) string {
	in := input{
		model:  strings.ToUpper(strings.TrimSpace(model)),
		family: strings.ToUpper(strings.TrimSpace(family)),
		year:   year,
	}
	if in.model == "" || in.year <= 0 {
		return Unknown
	}

	if num := modelNumberPattern.FindString(in.model); num != "" {
		in.hasNum = true
		for _, d := range num {
			in.modelNum = in.modelNum*10 + int(d-'0')
		}
	}

	// Vendor dispatch: first marker wins, branches are never combined. The
	// E3/E5 check runs before the general Xeon branch; a family string like
	// "Intel Xeon" would otherwise shadow every legacy part.
	switch {
	case in.contains("EPYC"):
		return classifyEPYC(in)
	case strings.Contains(in.family, "XEON") &&
		(strings.Contains(in.model, "E5") || strings.Contains(in.model, "E3")):
		return classifyLegacyXeon(in)
	case in.contains("XEON"):
		return classifyScalable(in)
	}
	return Unknown
}

// contains reports whether the marker appears in the model or the family.
func (in input) contains(marker string) bool {
	return strings.Contains(in.model, marker) || strings.Contains(in.family, marker)
}

// epycRule pairs a series predicate with a year-to-codename mapping. Once a
// predicate matches, its mapping decides the outcome; later rules are not
// consulted even when the mapping yields Unknown.
type epycRule struct {
	series func(model string) bool
	byYear func(year int) string
}

var epycRules = []epycRule{
	{
		// The bare "7" check makes this the catch-all for most EPYC parts;
		// it is deliberately first.
		series: func(m string) bool {
			return strings.Contains(m, "EPYC 7") || strings.Contains(m, "7")
		},
		byYear: func(y int) string {
			switch {
			case y == 2017:
				return Naples
			case y == 2019 || y == 2020:
				return Rome
			case y == 2021 || y == 2022:
				return Milan
			}
			return Unknown
		},
	},
	{
		series: func(m string) bool {
			return strings.Contains(m, "EPYC 9") ||
				(strings.Contains(m, "9") && strings.Contains(m, "EPYC"))
		},
		byYear: func(y int) string {
			if y == 2022 || y == 2023 {
				return Genoa
			}
			return Unknown
		},
	},
	{
		series: func(m string) bool { return strings.Contains(m, "EPYC 8") },
		byYear: func(y int) string {
			if y >= 2023 {
				return Siena
			}
			return Unknown
		},
	},
	{
		series: func(m string) bool { return strings.Contains(m, "EPYC 4") },
		byYear: func(y int) string {
			if y == 2023 {
				return Genoa
			}
			return Unknown
		},
	},
}

func classifyEPYC(in input) string {
	for _, r := range epycRules {
		if r.series(in.model) {
			return r.byYear(in.year)
		}
	}
	return Unknown
}

// classifyScalable resolves Intel Xeon Scalable parts: first by the series
// digit of the 4-digit model number, then by a family-keyword fallback keyed
// purely on the launch year.
func classifyScalable(in input) string {
	if in.hasNum {
		if label := scalableBySeries(in.modelNum, in.year); label != Unknown {
			return label
		}
	}
	return scalableByFamilyYear(in)
}

func scalableBySeries(modelNum, year int) string {
	switch modelNum / 1000 {
	case 8:
		switch {
		case year == 2017 || year == 2018:
			return Skylake
		case year == 2023 || year == 2024:
			switch {
			case modelNum >= overlapRangeLow && modelNum < emeraldRapidsLow:
				if year == 2023 {
					return SapphireRapids
				}
				return EmeraldRapids
			case modelNum >= emeraldRapidsLow:
				return EmeraldRapids
			default:
				return SapphireRapids
			}
		}
	case 6:
		if year == 2019 || year == 2020 {
			return CascadeLake
		}
	case 5, 4:
		if year == 2021 {
			return IceLake
		}
	}
	return Unknown
}

var scalableFamilyMarkers = []string{"SCALABLE", "GOLD", "PLATINUM", "SILVER"}

func scalableByFamilyYear(in input) string {
	matched := false
	for _, marker := range scalableFamilyMarkers {
		if strings.Contains(in.family, marker) {
			matched = true
			break
		}
	}
	if !matched {
		return Unknown
	}

	switch {
	case in.year == 2017 || in.year == 2018:
		return Skylake
	case in.year == 2019 || in.year == 2020:
		return CascadeLake
	case in.year == 2021:
		return IceLake
	case in.year == 2023:
		return SapphireRapids
	case in.year == 2024:
		return EmeraldRapids
	}
	return Unknown
}

// legacyRule maps an E3/E5 version suffix to its codename and the single
// launch year it is valid for.
type legacyRule struct {
	markers []string
	year    int
	label   string
}

var legacyXeonRules = []legacyRule{
	{markers: []string{"V2", "V 2"}, year: 2013, label: IvyBridge},
	{markers: []string{"V3", "V 3"}, year: 2014, label: Haswell},
	{markers: []string{"V4", "V 4"}, year: 2016, label: Broadwell},
}

func classifyLegacyXeon(in input) string {
	for _, r := range legacyXeonRules {
		for _, marker := range r.markers {
			if strings.Contains(in.model, marker) {
				if in.year == r.year {
					return r.label
				}
				return Unknown
			}
		}
	}
	return Unknown
}
