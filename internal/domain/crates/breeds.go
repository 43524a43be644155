package crates

import "strings"

// Razas conocidas. El nombre del perfil se normaliza (minúsculas, sin
// guiones/underscores) y se compara por palabras completas: "French Bulldog"
// y "english_bulldog" caen en "bulldog", "Puggle" no cae en "pug".
var brachycephalicBreeds = []string{
	"bulldog",
	"pug",
	"boxer",
	"shih tzu",
	"boston terrier",
	"pekingese",
	"persian",
	"himalayan",
}

var highAnxietyBreeds = []string{
	"husky",
	"malamute",
	"belgian malinois",
	"australian cattle dog",
	"jack russell",
}

// IsKnownBrachycephalic indica si la raza es de cara plana.
func IsKnownBrachycephalic(breed string) bool {
	return matchesAny(breed, brachycephalicBreeds)
}

// IsKnownHighAnxiety indica si la raza es propensa a escapes/ansiedad.
func IsKnownHighAnxiety(breed string) bool {
	return matchesAny(breed, highAnxietyBreeds)
}

func matchesAny(breed string, list []string) bool {
	words := strings.Fields(normalizeName(breed))
	if len(words) == 0 {
		return false
	}
	for _, known := range list {
		if containsWords(words, strings.Fields(known)) {
			return true
		}
	}
	return false
}

// containsWords indica si seq aparece contigua dentro de words.
func containsWords(words, seq []string) bool {
	if len(seq) == 0 || len(seq) > len(words) {
		return false
	}
	for i := 0; i+len(seq) <= len(words); i++ {
		match := true
		for j, w := range seq {
			if words[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
