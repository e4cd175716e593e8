package progression

import "github.com/alexanderramin/pathkeeper/internal/domain"

const (
	BadgeShieldOfFaith    = "The Shield of Faith"
	BadgeOilOfJoy         = "The Oil of Joy"
	BadgePriesthoodMaster = "Priesthood Master"
	BadgePathFinisher     = "Path Finisher"

	// MasterThreshold is the number of manually completed days required for
	// the gold mastery badge on day 120.
	MasterThreshold = 108

	PathFinisherMessage = "You have finished the journey! To earn the Gold Mastery, go back and complete your remaining Excused days."
)

// Month2Badge is awarded when the last day of mastery month 2 is completed.
func Month2Badge(order domain.PriesthoodOrder) string {
	if order == domain.OrderMelchizedek {
		return BadgeOilOfJoy
	}
	return BadgeShieldOfFaith
}

// FinalBadge picks the day-120 badge from the number of manual days.
func FinalBadge(manualCount int) domain.BadgeUnlock {
	if manualCount >= MasterThreshold {
		return domain.BadgeUnlock{Title: BadgePriesthoodMaster, Month: 4}
	}
	return domain.BadgeUnlock{Title: BadgePathFinisher, Month: 4, Message: PathFinisherMessage}
}
