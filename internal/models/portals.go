package models

import "time"

const (
	riftPhase = 525 * time.Second
	riftCycle = 8 * riftPhase

	valeOpen   = time.Hour
	valeLong   = 11 * time.Hour
	valeShort  = 6 * time.Hour
	valeWindow = 2*valeLong + valeShort
)

var (
	riftEpoch = time.Date(1997, 9, 2, 0, 0, 0, 0, time.UTC)
	valeEpoch = time.Date(2018, 2, 23, 13, 0, 0, 0, time.UTC)
)

// RiftPlaces are the lunar rift destinations in the order the moon visits
// them.
var RiftPlaces = []string{
	"Blood River",
	"Solace Bridge",
	"Highvale",
	"Brookside",
	"Owl's Head",
	"Westend",
	"Brittany Graveyard",
	"Etceter",
}

// Portal is the state of a timed portal at a given instant. Remaining is the
// time until it closes when Open, and until it opens otherwise.
type Portal struct {
	Place     string
	Open      bool
	Remaining time.Duration
}

// LunarRifts returns the state of every lunar rift at now, in RiftPlaces
// order. Exactly one rift is open; each stays open for 8m45s and the cycle
// repeats every 70 minutes.
func LunarRifts(now time.Time) []Portal {
	elapsed := floorMod(now.Sub(riftEpoch).Truncate(time.Second), riftCycle)
	active := int(elapsed / riftPhase)
	closes := riftPhase - elapsed%riftPhase

	rifts := make([]Portal, len(RiftPlaces))
	for i, place := range RiftPlaces {
		// Rifts after the active one open in turn once it closes.
		ahead := (i - active + len(RiftPlaces)) % len(RiftPlaces)
		rifts[i] = Portal{Place: place, Remaining: closes + time.Duration(ahead-1)*riftPhase}
		if ahead == 0 {
			rifts[i].Open = true
			rifts[i].Remaining = closes
		}
	}
	return rifts
}

// NextRifts returns the rifts ordered by when they open, starting with the
// open one.
func NextRifts(now time.Time) []Portal {
	rifts := LunarRifts(now)
	var active int
	for i, r := range rifts {
		if r.Open {
			active = i
		}
	}
	next := make([]Portal, 0, len(rifts))
	next = append(next, rifts[active:]...)
	return append(next, rifts[:active]...)
}

// LostVale returns the state of the Lost Vale at now. The vale follows a 28
// hour window split into 11, 11 and 6 hour segments and is open for the
// first hour of each segment.
func LostVale(now time.Time) Portal {
	win := floorMod(now.Sub(valeEpoch).Truncate(time.Second), valeWindow)
	seg := win % valeLong

	vale := Portal{Place: "Lost Vale"}
	switch {
	case seg < valeOpen:
		vale.Open = true
		vale.Remaining = valeOpen - seg
	case win < 2*valeLong:
		vale.Remaining = valeLong - seg
	default:
		vale.Remaining = valeShort - seg
	}
	return vale
}

func floorMod(d, m time.Duration) time.Duration {
	if d %= m; d < 0 {
		d += m
	}
	return d
}
