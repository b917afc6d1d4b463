package ui

import (
	"math/rand"
	"time"
)

const defaultTagline = "Five colors, one theme"

var taglines = []string{
	"Five colors, one theme",
	"Harmonies on demand",
	"Describe a mood, get a palette",
	"From sunset to hex in one request",
	"Hue, saturation, inspiration",
	"Never stare at a blank swatch again",
	"Color theory, served over HTTP",
}

type taglineRule struct {
	month   time.Month
	day     int
	tagline string
}

var holidayTaglines = []taglineRule{
	{month: time.December, day: 25, tagline: "🎄 Evergreen, crimson and gold"},
	{month: time.October, day: 31, tagline: "🎃 Pumpkin orange is always in season"},
	{month: time.February, day: 14, tagline: "💘 Fifty shades of rose"},
	{month: time.January, day: 1, tagline: "🎉 A fresh palette for a fresh year"},
}

// PickTagline returns a random tagline, considering holidays
func PickTagline() string {
	return pickTagline(time.Now(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

func pickTagline(now time.Time, r *rand.Rand) string {
	for _, rule := range holidayTaglines {
		if rule.month == now.Month() && rule.day == now.Day() {
			return rule.tagline
		}
	}
	if len(taglines) == 0 {
		return defaultTagline
	}
	return taglines[r.Intn(len(taglines))]
}
