package entities

import "time"

// BookingStep names one screen of the booking wizard.
//
// Domain notes:
//   - Steps are strictly ordered; forward progress goes one step at a time.
//   - Completed steps may be revisited, but a direct jump can never move the
//     wizard ahead of its current position.

type BookingStep string

const (
	StepLocation BookingStep = "location"
	StepType     BookingStep = "type"
	StepDetails  BookingStep = "details"
	StepPayment  BookingStep = "payment"
	StepConfirm  BookingStep = "confirm"
)

var bookingSteps = []BookingStep{StepLocation, StepType, StepDetails, StepPayment, StepConfirm}

func (s BookingStep) index() int {
	for i, step := range bookingSteps {
		if step == s {
			return i
		}
	}
	return -1
}

type BookingType string

const (
	BookingTypeOrderNow BookingType = "order_now"
	BookingTypePreBook  BookingType = "pre_book"
)

type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodCOD    PaymentMethod = "cod"
)

// SizeSelection is one chosen size category with its quantity. A draft never
// holds a partial entry: toggling a size in always starts at quantity 1.
type SizeSelection struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// BookingDraft is the mutable state behind one booking attempt. It is a pure
// state container: transitions and mutators never fail, they either apply or
// silently no-op. Whether the user may proceed is decided by the consuming
// layer against external beach data.
//
// Latitude/Longitude of (0,0) is the "no location chosen" sentinel.
type BookingDraft struct {
	Step          BookingStep     `json:"step"`
	BeachID       string          `json:"beach_id"`
	BookingType   BookingType     `json:"booking_type"`
	SelectedSizes []SizeSelection `json:"selected_sizes"`
	DurationHours int             `json:"duration_hours"`
	ScheduledDate string          `json:"scheduled_date,omitempty"` // "2006-01-02"
	ScheduledTime string          `json:"scheduled_time,omitempty"` // "15:04"
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	TermsAccepted bool            `json:"terms_accepted"`
}

func NewBookingDraft() BookingDraft {
	return BookingDraft{
		Step:          StepLocation,
		BookingType:   BookingTypeOrderNow,
		DurationHours: 1,
		PaymentMethod: PaymentMethodStripe,
	}
}

// ResetOptions pre-seeds a fresh draft. PreSelectedType forces pre_book only
// when it explicitly says so; any other value falls back to order_now.
type ResetOptions struct {
	PreSelectedBeach string
	PreSelectedType  BookingType
}

func (d *BookingDraft) Reset(opts ResetOptions) {
	*d = NewBookingDraft()
	if opts.PreSelectedBeach != "" {
		d.BeachID = opts.PreSelectedBeach
	}
	if opts.PreSelectedType == BookingTypePreBook {
		d.BookingType = BookingTypePreBook
	}
}

// SetStep jumps unconditionally; unknown steps are ignored.
func (d *BookingDraft) SetStep(s BookingStep) {
	if s.index() < 0 {
		return
	}
	d.Step = s
}

// NextStep advances one position; no-op at the last step.
func (d *BookingDraft) NextStep() {
	if i := d.Step.index(); i >= 0 && i < len(bookingSteps)-1 {
		d.Step = bookingSteps[i+1]
	}
}

// PrevStep moves one position back; no-op at the first step.
func (d *BookingDraft) PrevStep() {
	if i := d.Step.index(); i > 0 {
		d.Step = bookingSteps[i-1]
	}
}

// GoToStep revisits a completed step. Attempts to jump ahead of the current
// position are silently ignored: forward progress must go through NextStep.
func (d *BookingDraft) GoToStep(target BookingStep) {
	ti := target.index()
	if ti < 0 || ti > d.Step.index() {
		return
	}
	d.Step = target
}

func (d *BookingDraft) SetBeachID(id string) {
	d.BeachID = id
}

func (d *BookingDraft) SetLocation(lat, lng float64) {
	d.Latitude = lat
	d.Longitude = lng
}

// HasLocation reports whether a delivery point was chosen. (0,0) is the
// unset sentinel, not a valid coordinate.
func (d BookingDraft) HasLocation() bool {
	return d.Latitude != 0 || d.Longitude != 0
}

// SetBookingType switches between immediate and scheduled booking. Cash on
// delivery is invalid for scheduled bookings, so pre_book forces the payment
// method onto stripe.
func (d *BookingDraft) SetBookingType(t BookingType) {
	if t != BookingTypeOrderNow && t != BookingTypePreBook {
		return
	}
	d.BookingType = t
	if t == BookingTypePreBook && d.PaymentMethod == PaymentMethodCOD {
		d.PaymentMethod = PaymentMethodStripe
	}
}

func (d *BookingDraft) SetScheduledDate(date string) {
	d.ScheduledDate = date
}

func (d *BookingDraft) SetScheduledTime(t string) {
	d.ScheduledTime = t
}

// ToggleSize adds the size with quantity 1 when absent and removes it when
// present.
func (d *BookingDraft) ToggleSize(size string) {
	for i, sel := range d.SelectedSizes {
		if sel.Size == size {
			d.SelectedSizes = append(d.SelectedSizes[:i], d.SelectedSizes[i+1:]...)
			return
		}
	}
	d.SelectedSizes = append(d.SelectedSizes, SizeSelection{Size: size, Quantity: 1})
}

// SetQuantity updates an already-selected size; unselected sizes and
// non-positive quantities are ignored.
func (d *BookingDraft) SetQuantity(size string, quantity int) {
	if quantity < 1 {
		return
	}
	for i, sel := range d.SelectedSizes {
		if sel.Size == size {
			d.SelectedSizes[i].Quantity = quantity
			return
		}
	}
}

func (d *BookingDraft) SetDuration(hours int) {
	if hours < 0 {
		return
	}
	d.DurationHours = hours
}

func (d *BookingDraft) SetPaymentMethod(m PaymentMethod) {
	if m != PaymentMethodStripe && m != PaymentMethodCOD {
		return
	}
	if m == PaymentMethodCOD && d.BookingType == BookingTypePreBook {
		return
	}
	d.PaymentMethod = m
}

func (d *BookingDraft) SetTermsAccepted(accepted bool) {
	d.TermsAccepted = accepted
}

// BasePrice computes the draft subtotal from externally supplied pricing
// inputs: Σ rate × multiplier[size] × durationHours × quantity. A size with
// no multiplier entry counts as 1.
func (d BookingDraft) BasePrice(hourlyRate float64, multipliers map[string]float64) float64 {
	total := 0.0
	for _, sel := range d.SelectedSizes {
		m, ok := multipliers[sel.Size]
		if !ok {
			m = 1
		}
		total += hourlyRate * m * float64(d.DurationHours) * float64(sel.Quantity)
	}
	return total
}

// TotalPrice is the amount submitted with the order. Currently identical to
// BasePrice; discounts hook in here once the platform starts serving them.
func (d BookingDraft) TotalPrice(hourlyRate float64, multipliers map[string]float64) float64 {
	return d.BasePrice(hourlyRate, multipliers)
}

// ScheduledFor combines the scheduled date and time into a single UTC
// timestamp. It returns the zero time unless the draft is pre_book and both
// parts are set and parseable.
func (d BookingDraft) ScheduledFor() time.Time {
	if d.BookingType != BookingTypePreBook || d.ScheduledDate == "" || d.ScheduledTime == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02 15:04", d.ScheduledDate+" "+d.ScheduledTime)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// OrderPayload serializes the draft into the shape the platform's
// order-creation endpoint expects. scheduled_for is included only when the
// draft is pre_book with a complete schedule.
func (d BookingDraft) OrderPayload() OrderPayload {
	items := make([]OrderItem, 0, len(d.SelectedSizes))
	for _, sel := range d.SelectedSizes {
		items = append(items, OrderItem{Size: sel.Size, Quantity: sel.Quantity})
	}

	p := OrderPayload{
		BeachID:       d.BeachID,
		BookingType:   string(d.BookingType),
		Items:         items,
		DurationHours: d.DurationHours,
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
		PaymentMethod: string(d.PaymentMethod),
	}
	if scheduled := d.ScheduledFor(); !scheduled.IsZero() {
		p.ScheduledFor = scheduled.Format(time.RFC3339)
	}
	return p
}
