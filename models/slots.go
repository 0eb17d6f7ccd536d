package models

// WorkingHours is the fixed grid of bookable slot labels, identical for every
// date. The midday gap is the clinic's lunch break.
var WorkingHours = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00"}

// ValidSlot reports whether t is one of the bookable labels.
func ValidSlot(t string) bool {
	for _, w := range WorkingHours {
		if w == t {
			return true
		}
	}
	return false
}

// TimeSlot is one availability cell for a queried date.
type TimeSlot struct {
	Time        string `json:"time"`
	IsAvailable bool   `json:"isAvailable"`
}
