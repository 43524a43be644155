package crates

import "strings"

// Rules agrupa los conjuntos de destinos que cambian el veredicto.
// Los valores aceptan nombre de país o código (UK, United Kingdom, GB...).
type Rules struct {
	StrictDestinations        []string
	PlasticBannedDestinations []string
	LongHaulDestinations      []string
}

// DefaultRules: UK y Australia con controles extra; Australia y Nueva Zelanda
// no aceptan jaulas plásticas.
func DefaultRules() Rules {
	return Rules{
		StrictDestinations:        []string{"GB", "AU"},
		PlasticBannedDestinations: []string{"AU", "NZ"},
		LongHaulDestinations:      []string{"GB", "US", "AU"},
	}
}

var countryAliases = map[string]string{
	"uk":                       "GB",
	"gb":                       "GB",
	"united kingdom":           "GB",
	"great britain":            "GB",
	"england":                  "GB",
	"scotland":                 "GB",
	"wales":                    "GB",
	"au":                       "AU",
	"australia":                "AU",
	"nz":                       "NZ",
	"new zealand":              "NZ",
	"us":                       "US",
	"usa":                      "US",
	"united states":            "US",
	"united states of america": "US",
}

// CountryCode normaliza un destino a su código. Desconocido: en mayúsculas tal cual.
func CountryCode(s string) string {
	n := normalizeName(s)
	if n == "" {
		return ""
	}
	if code, ok := countryAliases[n]; ok {
		return code
	}
	return strings.ToUpper(n)
}

type destinationSet map[string]struct{}

func newDestinationSet(values []string) destinationSet {
	set := destinationSet{}
	for _, v := range values {
		if code := CountryCode(v); code != "" {
			set[code] = struct{}{}
		}
	}
	return set
}

func (s destinationSet) contains(country string) bool {
	code := CountryCode(country)
	if code == "" {
		return false
	}
	_, ok := s[code]
	return ok
}
