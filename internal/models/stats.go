package models

import (
	"slices"
	"strconv"
	"strings"

	"github.com/avatar-tools/logscan/internal/util"
)

// StatField is one "Name: value" pair of a /stats dump.
type StatField struct {
	Name  string
	Value string
}

// Float parses the value. Depending on the game locale the decimal separator
// may be a comma.
func (f StatField) Float() (float64, bool) {
	v, err := strconv.ParseFloat(strings.Replace(f.Value, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Stats holds the text of one /stats dump found in the chat logs.
type Stats struct {
	Avatar    string
	Timestamp int64
	Text      string
}

// Fields returns the name/value pairs in the order they were logged.
func (s Stats) Fields() []StatField {
	tokens := strings.Fields(s.Text)
	fields := make([]StatField, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i++ {
		name, ok := strings.CutSuffix(tokens[i], ":")
		if !ok {
			continue
		}
		if i+1 >= len(tokens) {
			break
		}
		fields = append(fields, StatField{Name: name, Value: tokens[i+1]})
		i++
	}
	return fields
}

// Filter returns the numeric fields whose name contains substr, ignoring
// ASCII case. An empty substr keeps every numeric field.
func (s Stats) Filter(substr string) []StatField {
	var out []StatField
	for _, f := range s.Fields() {
		if _, ok := f.Float(); !ok {
			continue
		}
		if substr != "" && !util.ContainsFold(f.Name, substr) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Resist is the effective resistance against one element.
type Resist struct {
	Element string
	Value   float64
}

type resistWeight struct {
	element string
	mul     float64
}

const magicElement = "Magic"

var resistElements = []string{"Air", "Chaos", "Death", "Earth", "Fire", "Life", "Moon", "Sun", "Water"}

// ResistElements returns the elements Resists reports on, in report order.
func ResistElements() []string {
	return slices.Clone(resistElements)
}

var resistStats = func() map[string]resistWeight {
	m := map[string]resistWeight{
		"MagicResistance": {magicElement, 1.0},
	}
	for _, e := range resistElements {
		m[e+"Attunement"] = resistWeight{e, 0.5}
		m[e+"Resistance"] = resistWeight{e, 1.0}
	}
	return m
}()

// Resists computes effective resistances: Resistance plus half the
// Attunement per element, with MagicResistance added to every element but
// Chaos. Elements absent from the dump are omitted.
func (s Stats) Resists() []Resist {
	values := make(map[string]float64)
	for _, f := range s.Fields() {
		w, ok := resistStats[f.Name]
		if !ok {
			continue
		}
		v, ok := f.Float()
		if !ok {
			continue
		}
		values[w.element] += v * w.mul
	}

	if magic, ok := values[magicElement]; ok {
		delete(values, magicElement)
		for e := range values {
			if e != "Chaos" {
				values[e] += magic
			}
		}
	}

	var out []Resist
	for _, e := range resistElements {
		if v, ok := values[e]; ok {
			out = append(out, Resist{Element: e, Value: v})
		}
	}
	return out
}
