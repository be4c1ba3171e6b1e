package models

// Scheduling slots used by the evening program. Block slots span a whole
// evening and collide with both sessions held in it.
const (
	SlotMW1800     = "MW_1800"
	SlotMW1930     = "MW_1930"
	SlotTTh1800    = "TTh_1800"
	SlotTTh1930    = "TTh_1930"
	SlotSatAM      = "Sat_AM"
	SlotSatPM      = "Sat_PM"
	SlotFriEve     = "Fri_Eve"
	SlotWedEveBlk  = "Wed_Eve_Block"
	SlotThuEveBlk  = "Thu_Eve_Block"
	SlotUnassigned = "Unassigned"
)

// TimeSlots lists every assignable slot.
var TimeSlots = []string{
	SlotMW1800,
	SlotMW1930,
	SlotTTh1800,
	SlotTTh1930,
	SlotSatAM,
	SlotSatPM,
	SlotFriEve,
	SlotWedEveBlk,
	SlotThuEveBlk,
}

// blockOverlaps records which regular slots each block slot covers.
var blockOverlaps = map[string][]string{
	SlotWedEveBlk: {SlotMW1800, SlotMW1930},
	SlotThuEveBlk: {SlotTTh1800, SlotTTh1930},
}

// SlotsOverlap reports whether two slots collide: either they are the same
// slot, or one is a block slot covering the other. Unassigned never
// collides with anything.
func SlotsOverlap(a, b string) bool {
	if a == SlotUnassigned || b == SlotUnassigned {
		return false
	}
	if a == b {
		return true
	}
	for _, covered := range blockOverlaps[a] {
		if covered == b {
			return true
		}
	}
	for _, covered := range blockOverlaps[b] {
		if covered == a {
			return true
		}
	}
	return false
}
