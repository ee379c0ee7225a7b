package auction

import (
	"errors"
	"time"

	"hothour/internal/domain/money"
)

var (
	ErrPriceNotPositive      = errors.New("prices must be positive")
	ErrStartNotAboveFloor    = errors.New("start price must be greater than floor price")
	ErrDropExceedsRange      = errors.New("drop amount cannot exceed the start-to-floor range")
	ErrDropIntervalInvalid   = errors.New("drop interval must be positive")
	ErrDropIntervalTooLong   = errors.New("drop interval cannot exceed auction duration")
	ErrScheduleInvalid       = errors.New("start time must be before end time")
	ErrEndTimeInPast         = errors.New("end time must be in the future")
	ErrTurboDropRequired     = errors.New("turbo drop amount is required when turbo is enabled")
	ErrTurboDropNotPositive  = errors.New("turbo drop amount must be positive")
	ErrTurboDropTooLarge     = errors.New("turbo drop amount must be less than drop amount")
	ErrTurboDropExceedsRange = errors.New("turbo drop amount cannot exceed the start-to-floor range")
	ErrTurboWindowTooShort   = errors.New("turbo requires a longer auction window")
	ErrTurboTriggerFixed     = errors.New("turbo trigger minutes is a fixed platform value")
	ErrTurboIntervalFixed    = errors.New("turbo interval minutes is a fixed platform value")
	ErrAllowedGenderInvalid  = errors.New("invalid allowed gender")
)

// TurboPolicy is the platform-wide turbo rule set. Auctions do not choose
// their own trigger and interval; creation validates the requested values
// against these.
type TurboPolicy struct {
	TriggerMins     int
	IntervalMins    int
	MinDurationMins int
}

type Auction struct {
	id             int64
	title          string
	description    string
	pricing        Pricing
	currentPrice   money.Money
	turboStartedAt *time.Time
	scheduledAt    *time.Time
	allowedGender  AllowedGender
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

type NewAuctionParams struct {
	Title             string
	Description       string
	StartPrice        money.Money
	FloorPrice        money.Money
	DropAmount        money.Money
	DropIntervalMins  int
	TurboEnabled      bool
	TurboTriggerMins  int
	TurboIntervalMins int
	TurboDropAmount   money.Money
	StartTime         time.Time
	EndTime           time.Time
	ScheduledAt       *time.Time
	AllowedGender     AllowedGender
}

// NewAuction validates params against the platform turbo policy and returns
// an auction in DRAFT, or ACTIVE when the start time has already passed.
func NewAuction(p NewAuctionParams, policy TurboPolicy, now time.Time) (*Auction, error) {
	if err := validatePricing(p); err != nil {
		return nil, err
	}
	if err := validateTiming(p, policy, now); err != nil {
		return nil, err
	}

	gender := p.AllowedGender
	if gender == "" {
		gender = GenderAny
	}
	if !gender.IsValid() {
		return nil, ErrAllowedGenderInvalid
	}

	status := StatusDraft
	if !now.Before(p.StartTime) {
		status = StatusActive
	}

	return &Auction{
		title:       p.Title,
		description: p.Description,
		pricing: Pricing{
			StartPrice:        p.StartPrice,
			FloorPrice:        p.FloorPrice,
			DropAmount:        p.DropAmount,
			DropIntervalMins:  p.DropIntervalMins,
			TurboEnabled:      p.TurboEnabled,
			TurboTriggerMins:  p.TurboTriggerMins,
			TurboIntervalMins: p.TurboIntervalMins,
			TurboDropAmount:   p.TurboDropAmount,
			StartTime:         p.StartTime,
			EndTime:           p.EndTime,
		},
		currentPrice:  p.StartPrice,
		scheduledAt:   p.ScheduledAt,
		allowedGender: gender,
		status:        status,
	}, nil
}

func validatePricing(p NewAuctionParams) error {
	if !p.StartPrice.IsPositive() || !p.FloorPrice.IsPositive() || !p.DropAmount.IsPositive() {
		return ErrPriceNotPositive
	}
	if !p.StartPrice.GreaterThan(p.FloorPrice) {
		return ErrStartNotAboveFloor
	}

	priceRange := p.StartPrice.Sub(p.FloorPrice)
	if p.DropAmount.GreaterThan(priceRange) {
		return ErrDropExceedsRange
	}

	if p.TurboEnabled {
		if p.TurboDropAmount.IsZero() {
			return ErrTurboDropRequired
		}
		if !p.TurboDropAmount.IsPositive() {
			return ErrTurboDropNotPositive
		}
		if p.TurboDropAmount.GreaterThan(priceRange) {
			return ErrTurboDropExceedsRange
		}
		// Turbo drops faster but in smaller steps than the normal phase.
		if !p.TurboDropAmount.LessThan(p.DropAmount) {
			return ErrTurboDropTooLarge
		}
	}
	return nil
}

func validateTiming(p NewAuctionParams, policy TurboPolicy, now time.Time) error {
	if !p.StartTime.Before(p.EndTime) {
		return ErrScheduleInvalid
	}
	if p.EndTime.Before(now) {
		return ErrEndTimeInPast
	}
	if p.DropIntervalMins <= 0 {
		return ErrDropIntervalInvalid
	}

	durationMins := int(p.EndTime.Sub(p.StartTime) / time.Minute)
	if p.DropIntervalMins > durationMins {
		return ErrDropIntervalTooLong
	}

	if p.TurboEnabled {
		if p.TurboIntervalMins >= p.DropIntervalMins {
			return ErrTurboIntervalFixed
		}
		if durationMins < policy.MinDurationMins {
			return ErrTurboWindowTooShort
		}
		if p.TurboTriggerMins != policy.TriggerMins {
			return ErrTurboTriggerFixed
		}
		if p.TurboIntervalMins != policy.IntervalMins {
			return ErrTurboIntervalFixed
		}
	}
	return nil
}

// ReconstructAuction rebuilds an auction from persisted state.
func ReconstructAuction(
	id int64,
	title, description string,
	pricing Pricing,
	currentPrice money.Money,
	turboStartedAt, scheduledAt *time.Time,
	allowedGender AllowedGender,
	status Status,
	createdAt, updatedAt time.Time,
) *Auction {
	return &Auction{
		id:             id,
		title:          title,
		description:    description,
		pricing:        pricing,
		currentPrice:   currentPrice,
		turboStartedAt: turboStartedAt,
		scheduledAt:    scheduledAt,
		allowedGender:  allowedGender,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (a *Auction) ID() int64                  { return a.id }
func (a *Auction) Title() string              { return a.title }
func (a *Auction) Description() string        { return a.description }
func (a *Auction) Pricing() Pricing           { return a.pricing }
func (a *Auction) StartPrice() money.Money    { return a.pricing.StartPrice }
func (a *Auction) FloorPrice() money.Money    { return a.pricing.FloorPrice }
func (a *Auction) CurrentPrice() money.Money  { return a.currentPrice }
func (a *Auction) TurboEnabled() bool         { return a.pricing.TurboEnabled }
func (a *Auction) TurboStartedAt() *time.Time { return a.turboStartedAt }
func (a *Auction) StartTime() time.Time       { return a.pricing.StartTime }
func (a *Auction) EndTime() time.Time         { return a.pricing.EndTime }
func (a *Auction) ScheduledAt() *time.Time    { return a.scheduledAt }
func (a *Auction) AllowedGender() AllowedGender {
	return a.allowedGender
}
func (a *Auction) Status() Status       { return a.status }
func (a *Auction) CreatedAt() time.Time { return a.createdAt }
func (a *Auction) UpdatedAt() time.Time { return a.updatedAt }

// ServiceTime is when the booked session is due: the explicit appointment
// time when one was set, otherwise the auction end.
func (a *Auction) ServiceTime() time.Time {
	if a.scheduledAt != nil {
		return *a.scheduledAt
	}
	return a.pricing.EndTime
}
