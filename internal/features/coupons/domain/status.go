package domain

import "time"

// Status is the lifecycle state of a coupon derived from its flags, window and usage.
type Status string

const (
	StatusInactive Status = "inactive"
	StatusUpcoming Status = "upcoming"
	StatusExpired  Status = "expired"
	StatusUsedUp   Status = "used-up"
	StatusActive   Status = "active"
)

// ResolveStatus derives the status of c at now. The first matching rule wins:
// inactive, upcoming, expired, used-up, active.
func ResolveStatus(c Coupon, now time.Time) Status {
	switch {
	case !c.IsActive():
		return StatusInactive
	case c.StartDate != nil && c.StartDate.After(now):
		return StatusUpcoming
	case c.EndDate != nil && c.EndDate.Before(now):
		return StatusExpired
	case c.HasUsageLimit() && c.UsedCount >= *c.UsageLimit:
		return StatusUsedUp
	default:
		return StatusActive
	}
}

// ParseStatus maps a query value to a Status.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusInactive, StatusUpcoming, StatusExpired, StatusUsedUp, StatusActive:
		return st, true
	default:
		return "", false
	}
}

// Label is the display text of the status.
func (s Status) Label() string {
	switch s {
	case StatusInactive:
		return "Không hoạt động"
	case StatusUpcoming:
		return "Sắp diễn ra"
	case StatusExpired:
		return "Đã hết hạn"
	case StatusUsedUp:
		return "Đã hết lượt"
	case StatusActive:
		return "Đang hoạt động"
	default:
		return ""
	}
}

// View is a coupon annotated with the values derived at render time.
type View struct {
	Coupon
	Status         Status `json:"status"`
	StatusLabel    string `json:"statusLabel"`
	TypeLabel      string `json:"typeLabel"`
	RemainingUsage *int   `json:"remainingUsage,omitempty"`
	CanBeUsed      bool   `json:"canBeUsed"`
}

// Annotate builds the View of c at now.
func Annotate(c Coupon, now time.Time) View {
	status := ResolveStatus(c, now)
	return View{
		Coupon:         c,
		Status:         status,
		StatusLabel:    status.Label(),
		TypeLabel:      c.Type.Label(),
		RemainingUsage: c.RemainingUsage(),
		CanBeUsed:      status == StatusActive,
	}
}
