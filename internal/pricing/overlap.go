package pricing

import "equiprent/internal/domain"

// Overlaps reports whether two date ranges collide under the inclusive
// rule: a.Start <= b.End && a.End >= b.Start. Adjacent ranges that share
// only a boundary date DO count as overlapping: same-day checkout and
// check-in is treated as a conflict. This mirrors the storefront's
// historical behavior and is pending product-owner review; do not tighten
// the comparisons to strict inequalities without a decision.
func Overlaps(a, b DateRange) bool {
	a, b = a.Normalize(), b.Normalize()
	return !a.Start.After(b.End) && !a.End.Before(b.Start)
}

// HasConflict reports whether the candidate range collides with any
// existing booking for the given equipment. Only bookings that actually
// block the calendar count: pending requests and cancelled or completed
// rentals never conflict, and other equipment is ignored entirely.
//
// A false result is necessary but not sufficient for booking: the
// equipment's standalone availability flag is the caller's problem, and
// the authoritative conflict check happens inside the repository's
// transactional insert.
func HasConflict(existing []domain.Booking, equipmentID int64, candidate DateRange) bool {
	for i := range existing {
		b := &existing[i]
		if b.EquipmentID != equipmentID || !b.Blocks() {
			continue
		}
		if Overlaps(DateRange{Start: b.StartDate, End: b.EndDate}, candidate) {
			return true
		}
	}
	return false
}
