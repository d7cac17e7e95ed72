package engine

import (
	"regexp"
	"strings"
)

// Lineage is a coarse surname-derived category used to bias ingredient
// selection. It is a hint, not an identity claim; unmatched surnames get
// LineageClassic.
type Lineage string

const (
	LineageItalian  Lineage = "italian"
	LineageIrish    Lineage = "irish"
	LineageSpanish  Lineage = "spanish"
	LineageJapanese Lineage = "japanese"
	LineageFrench   Lineage = "french"
	LineageNordic   Lineage = "nordic"
	LineageClassic  Lineage = "classic"
)

type lineageRule struct {
	lineage Lineage
	pattern *regexp.Regexp
}

// Rules are tested in order; the first match wins.
var lineageRules = []lineageRule{
	{LineageItalian, regexp.MustCompile(`(ini|ino|oni|elli|etti|ucci|aldi)$`)},
	{LineageIrish, regexp.MustCompile(`^(o'|mc|mac)`)},
	{LineageSpanish, regexp.MustCompile(`(ez|es|ia|cia)$`)},
	{LineageJapanese, regexp.MustCompile(`(moto|kawa|shima|yama|saki|mura|tanaka)$`)},
	{LineageFrench, regexp.MustCompile(`(^(de|du|le|la)\s|eau$|eaux$|ier$|et$)`)},
	{LineageNordic, regexp.MustCompile(`(sson|sen|son|berg|strom|quist|lund)$`)},
}

// InferLineage lowercases the surname and runs it through the rule list.
func InferLineage(lastName string) Lineage {
	name := strings.ToLower(strings.TrimSpace(lastName))
	for _, rule := range lineageRules {
		if rule.pattern.MatchString(name) {
			return rule.lineage
		}
	}
	return LineageClassic
}
