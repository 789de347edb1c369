package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrSessionNotFound     = errors.New("session not found")
	ErrUnknownStep         = errors.New("unknown step")
	ErrBeachNotSelected    = errors.New("no beach selected")
	ErrNoDeliveryLocation  = errors.New("no delivery location chosen")
	ErrServiceClosed       = errors.New("beach is outside service hours")
	ErrNoSizesSelected     = errors.New("no sizes selected")
	ErrQuantityUnavailable = errors.New("requested quantity exceeds available inventory")
	ErrInvalidDuration     = errors.New("duration must be at least one hour")
	ErrScheduleRequired    = errors.New("scheduled date and time are required for pre-booking")
	ErrTermsNotAccepted    = errors.New("terms must be accepted")
)

// FlowState is what the wizard screens render: the draft plus its derived
// prices and whether the continue button is enabled. Prices are recomputed
// on every read against current beach data, never cached.
type FlowState struct {
	SessionID  string
	Draft      entities.BookingDraft
	BasePrice  float64
	TotalPrice float64
	CanProceed bool
	Blocked    string
}

// IBookingFlowUseCase drives the booking wizard over session-persisted
// drafts. Transitions that the draft itself ignores (forward jumps, unknown
// values) stay silent no-ops here as well; errors are reserved for unmet
// preconditions that gate forward progress, and for persistence failures.

type IBookingFlowUseCase interface {
	StartSession(ctx context.Context) (entities.Session, error)
	GetState(ctx context.Context, sessionID string) (FlowState, error)
	Next(ctx context.Context, sessionID string) (FlowState, error)
	Back(ctx context.Context, sessionID string) (FlowState, error)
	GoTo(ctx context.Context, sessionID string, step entities.BookingStep) (FlowState, error)
	Reset(ctx context.Context, sessionID string, opts entities.ResetOptions) (FlowState, error)
	SetBeach(ctx context.Context, sessionID, beachID string) (FlowState, error)
	SetLocation(ctx context.Context, sessionID string, lat, lng float64) (FlowState, error)
	SetBookingType(ctx context.Context, sessionID string, t entities.BookingType) (FlowState, error)
	SetSchedule(ctx context.Context, sessionID, date, timeOfDay string) (FlowState, error)
	ToggleSize(ctx context.Context, sessionID, size string) (FlowState, error)
	SetQuantity(ctx context.Context, sessionID, size string, quantity int) (FlowState, error)
	SetDuration(ctx context.Context, sessionID string, hours int) (FlowState, error)
	SetPaymentMethod(ctx context.Context, sessionID string, m entities.PaymentMethod) (FlowState, error)
	SetTerms(ctx context.Context, sessionID string, accepted bool) (FlowState, error)
}

type BookingFlowUseCase struct {
	sessions interfaces.ISessionRepository
	beaches  IBeachUseCase
	now      func() time.Time
}

var _ IBookingFlowUseCase = (*BookingFlowUseCase)(nil)

func NewBookingFlowUseCase(sessions interfaces.ISessionRepository, beaches IBeachUseCase) *BookingFlowUseCase {
	return &BookingFlowUseCase{sessions: sessions, beaches: beaches, now: time.Now}
}

func (u *BookingFlowUseCase) StartSession(ctx context.Context) (entities.Session, error) {
	now := time.Now().UTC()
	s := entities.Session{
		ID:        uuid.NewString(),
		Draft:     entities.NewBookingDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.sessions.Create(ctx, s)
	if err != nil {
		return entities.Session{}, err
	}
	log.Printf("[flow][usecase] session started session_id=%s", created.ID)
	return created, nil
}

func (u *BookingFlowUseCase) GetState(ctx context.Context, sessionID string) (FlowState, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return FlowState{}, err
	}
	return u.buildState(ctx, s), nil
}

func (u *BookingFlowUseCase) Next(ctx context.Context, sessionID string) (FlowState, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return FlowState{}, err
	}

	if gateErr := u.gateStep(ctx, s.Draft); gateErr != nil {
		return FlowState{}, gateErr
	}

	s.Draft.NextStep()
	return u.saveDraft(ctx, s)
}

func (u *BookingFlowUseCase) Back(ctx context.Context, sessionID string) (FlowState, error) {
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) { d.PrevStep() })
}

func (u *BookingFlowUseCase) GoTo(ctx context.Context, sessionID string, step entities.BookingStep) (FlowState, error) {
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) { d.GoToStep(step) })
}

func (u *BookingFlowUseCase) Reset(ctx context.Context, sessionID string, opts entities.ResetOptions) (FlowState, error) {
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) { d.Reset(opts) })
}

func (u *BookingFlowUseCase) SetBeach(ctx context.Context, sessionID, beachID string) (FlowState, error) {
	beachID = strings.TrimSpace(beachID)
	if beachID != "" {
		if _, err := u.beaches.GetByID(ctx, beachID); err != nil {
			return FlowState{}, err
		}
	}
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) { d.SetBeachID(beachID) })
}

// SetLocation stores a delivery point picked on the map. When a beach is
// already selected the point must fall inside its boundary; otherwise the
// containing beach is resolved via the geofence and selected alongside.
// A rejected point leaves the draft untouched, mirroring the map screen
// refusing the pin.
func (u *BookingFlowUseCase) SetLocation(ctx context.Context, sessionID string, lat, lng float64) (FlowState, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return FlowState{}, err
	}

	if s.Draft.BeachID != "" {
		beach, err := u.beaches.GetByID(ctx, s.Draft.BeachID)
		if err != nil {
			return FlowState{}, err
		}
		if !IsPointInPolygon(lat, lng, beach.PolygonBoundary) {
			return FlowState{}, ErrOutsideServiceArea
		}
	} else {
		beach, err := u.beaches.Locate(ctx, lat, lng)
		if err != nil {
			return FlowState{}, err
		}
		s.Draft.SetBeachID(beach.ID)
	}

	s.Draft.SetLocation(lat, lng)
	return u.saveDraft(ctx, s)
}

func (u *BookingFlowUseCase) SetBookingType(ctx context.Context, sessionID string, t entities.BookingType) (FlowState, error) {
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) { d.SetBookingType(t) })
}

func (u *BookingFlowUseCase) SetSchedule(ctx context.Context, sessionID, date, timeOfDay string) (FlowState, error) {
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) {
		d.SetScheduledDate(strings.TrimSpace(date))
		d.SetScheduledTime(strings.TrimSpace(timeOfDay))
	})
}

func (u *BookingFlowUseCase) ToggleSize(ctx context.Context, sessionID, size string) (FlowState, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return u.GetState(ctx, sessionID)
	}
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) { d.ToggleSize(size) })
}

// SetQuantity enforces the available-inventory bound. The draft does not
// validate quantities itself; the bound comes from beach data here, in the
// consuming layer.
func (u *BookingFlowUseCase) SetQuantity(ctx context.Context, sessionID, size string, quantity int) (FlowState, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return FlowState{}, err
	}

	if s.Draft.BeachID != "" {
		beach, err := u.beaches.GetByID(ctx, s.Draft.BeachID)
		if err != nil {
			return FlowState{}, err
		}
		if quantity > beach.AvailableQuantity(size) {
			return FlowState{}, ErrQuantityUnavailable
		}
	}

	s.Draft.SetQuantity(size, quantity)
	return u.saveDraft(ctx, s)
}

func (u *BookingFlowUseCase) SetDuration(ctx context.Context, sessionID string, hours int) (FlowState, error) {
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) { d.SetDuration(hours) })
}

func (u *BookingFlowUseCase) SetPaymentMethod(ctx context.Context, sessionID string, m entities.PaymentMethod) (FlowState, error) {
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) { d.SetPaymentMethod(m) })
}

func (u *BookingFlowUseCase) SetTerms(ctx context.Context, sessionID string, accepted bool) (FlowState, error) {
	return u.mutate(ctx, sessionID, func(d *entities.BookingDraft) { d.SetTermsAccepted(accepted) })
}

// ValidateForSubmission runs the full gate the confirm screen applies before
// the order is sent: every step's precondition, checked against live beach
// data. It returns the first unmet precondition.
func (u *BookingFlowUseCase) ValidateForSubmission(draft entities.BookingDraft, beach entities.Beach) error {
	if draft.BeachID == "" {
		return ErrBeachNotSelected
	}
	if !draft.HasLocation() {
		return ErrNoDeliveryLocation
	}
	if len(beach.PolygonBoundary) > 0 && !IsPointInPolygon(draft.Latitude, draft.Longitude, beach.PolygonBoundary) {
		return ErrOutsideServiceArea
	}
	if draft.BookingType == entities.BookingTypeOrderNow && !beach.IsServiceOpen(u.now()) {
		return ErrServiceClosed
	}
	if draft.BookingType == entities.BookingTypePreBook && draft.ScheduledFor().IsZero() {
		return ErrScheduleRequired
	}
	if len(draft.SelectedSizes) == 0 {
		return ErrNoSizesSelected
	}
	for _, sel := range draft.SelectedSizes {
		if sel.Quantity > beach.AvailableQuantity(sel.Size) {
			return ErrQuantityUnavailable
		}
	}
	if draft.DurationHours < 1 {
		return ErrInvalidDuration
	}
	if !draft.TermsAccepted {
		return ErrTermsNotAccepted
	}
	return nil
}

// gateStep checks the precondition of the draft's current step, the
// "continue button enabled" rule for that screen.
func (u *BookingFlowUseCase) gateStep(ctx context.Context, draft entities.BookingDraft) error {
	switch draft.Step {
	case entities.StepLocation:
		if draft.BeachID == "" {
			return ErrBeachNotSelected
		}
		if !draft.HasLocation() {
			return ErrNoDeliveryLocation
		}
	case entities.StepType:
		if draft.BookingType == entities.BookingTypePreBook && draft.ScheduledFor().IsZero() {
			return ErrScheduleRequired
		}
	case entities.StepDetails:
		if len(draft.SelectedSizes) == 0 {
			return ErrNoSizesSelected
		}
		if draft.DurationHours < 1 {
			return ErrInvalidDuration
		}
		beach, err := u.beaches.GetByID(ctx, draft.BeachID)
		if err != nil {
			return err
		}
		for _, sel := range draft.SelectedSizes {
			if sel.Quantity > beach.AvailableQuantity(sel.Size) {
				return ErrQuantityUnavailable
			}
		}
	case entities.StepPayment:
		if !draft.TermsAccepted {
			return ErrTermsNotAccepted
		}
	}
	return nil
}

func (u *BookingFlowUseCase) mutate(ctx context.Context, sessionID string, apply func(*entities.BookingDraft)) (FlowState, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return FlowState{}, err
	}
	apply(&s.Draft)
	return u.saveDraft(ctx, s)
}

func (u *BookingFlowUseCase) loadSession(ctx context.Context, sessionID string) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, ErrInvalidSessionID
	}
	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *BookingFlowUseCase) saveDraft(ctx context.Context, s entities.Session) (FlowState, error) {
	if err := u.sessions.SaveDraft(ctx, s.ID, s.Draft); err != nil {
		return FlowState{}, err
	}
	return u.buildState(ctx, s), nil
}

func (u *BookingFlowUseCase) buildState(ctx context.Context, s entities.Session) FlowState {
	state := FlowState{SessionID: s.ID, Draft: s.Draft}

	var beach entities.Beach
	if s.Draft.BeachID != "" {
		b, err := u.beaches.GetByID(ctx, s.Draft.BeachID)
		if err != nil {
			log.Printf("[flow][usecase] beach lookup failed session_id=%s beach_id=%s err=%v", s.ID, s.Draft.BeachID, err)
		} else {
			beach = b
			state.BasePrice = s.Draft.BasePrice(b.HourlyRate, b.Multipliers())
			state.TotalPrice = s.Draft.TotalPrice(b.HourlyRate, b.Multipliers())
		}
	}

	if err := u.gateStepForState(ctx, s.Draft, beach); err != nil {
		state.Blocked = err.Error()
	} else {
		state.CanProceed = true
	}
	return state
}

// gateStepForState mirrors gateStep but reuses an already-fetched beach so
// rendering the state does not double-hit the directory.
func (u *BookingFlowUseCase) gateStepForState(ctx context.Context, draft entities.BookingDraft, beach entities.Beach) error {
	if draft.Step != entities.StepDetails {
		return u.gateStep(ctx, draft)
	}
	if len(draft.SelectedSizes) == 0 {
		return ErrNoSizesSelected
	}
	if draft.DurationHours < 1 {
		return ErrInvalidDuration
	}
	for _, sel := range draft.SelectedSizes {
		if sel.Quantity > beach.AvailableQuantity(sel.Size) {
			return ErrQuantityUnavailable
		}
	}
	return nil
}
