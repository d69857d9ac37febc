package billing

import "time"

// Bill is the transient record handed to the caller layer at checkout. It is
// produced, rendered, and discarded, never persisted.
type Bill struct {
	HotelName       string    `json:"hotel_name"`
	HotelAddress    string    `json:"hotel_address"`
	IssuedAt        time.Time `json:"issued_at"`
	GuestName       string    `json:"guest_name"`
	RoomNumber      string    `json:"room_number"`
	RoomTypeName    string    `json:"room_type_name"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Nights          int       `json:"nights"`
	ExtraBeds       int       `json:"extra_beds"`
	BaseCost        float64   `json:"base_cost"`
	LateSurcharge   float64   `json:"late_surcharge"`
	Subtotal        float64   `json:"subtotal"`
	DiscountPercent float64   `json:"discount_percent"`
	TotalCost       float64   `json:"total_cost"`
}

// Charges is the auditable result of the three-stage cost computation:
// base cost, plus late surcharge, times the loyalty discount. Each stage is
// kept as its own value so the final bill is unambiguous about ordering.
type Charges struct {
	Base            float64
	Surcharge       float64
	Subtotal        float64
	DiscountPercent float64
	Total           float64
}

// Compute runs the three stages. The discount applies to the post-surcharge
// subtotal, never to the stay-only cost.
func Compute(base, surcharge, discountPercent float64) Charges {
	subtotal := base + surcharge
	return Charges{
		Base:            base,
		Surcharge:       surcharge,
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		Total:           ApplyDiscount(subtotal, discountPercent),
	}
}

// LateSurcharge prices the positive difference between the actual and booked
// checkout instants: every whole extra day at the nightly rate, every
// remaining whole hour at 1/24 of it. Early or on-time checkout is free.
func LateSurcharge(nightlyRate int64, booked, actual time.Time) float64 {
	if !actual.After(booked) {
		return 0
	}

	lateHours := int64(actual.Sub(booked).Hours())
	extraDays := lateHours / 24
	extraHours := lateHours % 24

	return float64(extraDays)*float64(nightlyRate) + float64(extraHours)*float64(nightlyRate)/24
}

// ApplyDiscount reduces a total by a percentage. Zero or negative percent
// leaves the total untouched.
func ApplyDiscount(total, percent float64) float64 {
	if percent <= 0 {
		return total
	}
	return total * (1 - percent/100)
}
