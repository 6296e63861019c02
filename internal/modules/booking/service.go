package booking

import (
	"context"
	"errors"
	"strings"

	"cinebook/internal/domain"
	"cinebook/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Actor identifies who is driving an operation. The service enforces
// ownership and role rules itself rather than trusting the HTTP layer.
type Actor struct {
	UserID int64
	Role   domain.UserRole
}

func (a Actor) staff() bool { return a.Role == domain.RoleStaff }

type Service struct {
	bookings   BookingRepository
	screenings ScreeningRepository
	seats      SeatRepository
	vouchers   VoucherRepository
}

func NewService(
	bookings BookingRepository,
	screenings ScreeningRepository,
	seats SeatRepository,
	vouchers VoucherRepository,
) *Service {
	return &Service{
		bookings:   bookings,
		screenings: screenings,
		seats:      seats,
		vouchers:   vouchers,
	}
}

// Create books the requested seats for a screening. The held-seat
// check, pricing and persistence of booking plus allocations happen as
// one atomic unit; on any failure nothing survives.
func (s *Service) Create(ctx context.Context, actor Actor, req CreateBookingRequest) (*domain.Booking, error) {
	seatIDs := dedupe(req.SeatIDs)
	if len(seatIDs) != len(req.SeatIDs) {
		return nil, ErrValidation
	}

	screening, err := s.screenings.GetByID(ctx, req.ScreeningID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScreeningNotFound
		}
		return nil, err
	}
	if !screening.IsAvailable {
		return nil, ErrScreeningUnavailable
	}

	seats, err := s.seats.GetByIDs(ctx, seatIDs)
	if err != nil {
		return nil, err
	}
	if len(seats) != len(seatIDs) {
		return nil, ErrSeatNotFound
	}
	for _, seat := range seats {
		if seat.RoomID != screening.RoomID {
			return nil, ErrValidation
		}
	}

	// API-level availability check; re-validated inside the create
	// transaction where it counts.
	held, err := s.bookings.HeldSeatIDs(ctx, screening.ID)
	if err != nil {
		return nil, err
	}
	if conflicting := intersect(seatIDs, held); len(conflicting) > 0 {
		return nil, &domain.SeatConflictError{SeatIDs: conflicting}
	}

	// same normalization the voucher endpoints apply, so a code that
	// validates there also applies here
	voucherCode := strings.ToUpper(strings.TrimSpace(req.VoucherCode))

	q, err := s.quote(ctx, screening.Price, seats, voucherCode, actor.UserID)
	if err != nil {
		return nil, err
	}

	allocations := make([]domain.BookedSeat, 0, len(seats))
	for _, seat := range seats {
		allocations = append(allocations, domain.BookedSeat{
			SeatID:      seat.ID,
			ScreeningID: screening.ID,
			Price:       q.PerSeat[seat.ID],
		})
	}

	var created *domain.Booking
	for attempt := 0; attempt < referenceRetries; attempt++ {
		b := &domain.Booking{
			ReferenceNumber: generateReferenceNumber(),
			TicketCount:     len(seats),
			TotalAmount:     q.Total,
			Status:          domain.BookingPending,
			VoucherCode:     voucherCode,
			UserID:          actor.UserID,
			ScreeningID:     screening.ID,
		}
		err = s.bookings.CreateWithSeats(ctx, b, allocations)
		if errors.Is(err, repository.ErrDuplicateReference) {
			continue
		}
		if err != nil {
			return nil, err
		}
		created = b
		break
	}
	if created == nil {
		return nil, err
	}

	return s.bookings.GetByIDForUser(ctx, created.ID, actor.UserID)
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context, actor Actor) ([]domain.Booking, error) {
	if !actor.staff() {
		return nil, ErrForbidden
	}
	return s.bookings.ListAll(ctx)
}

// Get fetches a booking for the acting user. A moviegoer asking for
// somebody else's booking gets ErrNotFound, not ErrForbidden, so
// existence is not leaked.
func (s *Service) Get(ctx context.Context, actor Actor, id int64) (*domain.Booking, error) {
	var (
		b   *domain.Booking
		err error
	)
	if actor.staff() {
		b, err = s.bookings.GetByID(ctx, id)
	} else {
		b, err = s.bookings.GetByIDForUser(ctx, id, actor.UserID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// UpdateStatus drives the booking state machine. Owners may only make
// the forward moves the table allows; staff may set any status from a
// non-terminal one. Terminal states are frozen for everyone. The swap
// is a compare-and-swap against the status the actor saw, so two
// concurrent transitions cannot both win.
func (s *Service) UpdateStatus(ctx context.Context, actor Actor, id int64, next domain.BookingStatus) (*domain.Booking, error) {
	if !next.Valid() {
		return nil, ErrValidation
	}

	b, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if b.Status.Terminal() {
		return nil, ErrAlreadyTerminal
	}

	allowed := b.Status.CanTransitionTo(next)
	if actor.staff() {
		allowed = next != b.Status
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	swapped, err := s.bookings.UpdateStatusCAS(ctx, b.ID, b.Status, next)
	if err != nil {
		return nil, err
	}
	if !swapped {
		// lost a race against a concurrent transition
		return nil, s.staleTransitionError(ctx, actor, id)
	}

	return s.Get(ctx, actor, id)
}

// Cancel moves pending/confirmed bookings to cancelled; a paid booking
// is always refunded instead, never bare-cancelled.
func (s *Service) Cancel(ctx context.Context, actor Actor, id int64) (*domain.Booking, error) {
	b, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if b.Status.Terminal() {
		return nil, ErrAlreadyTerminal
	}

	target := domain.BookingCancelled
	if b.Status == domain.BookingPaid {
		target = domain.BookingRefunded
	}

	swapped, err := s.bookings.UpdateStatusCAS(ctx, b.ID, b.Status, target)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, s.staleTransitionError(ctx, actor, id)
	}

	return s.Get(ctx, actor, id)
}

// OverrideAmounts is the staff-only escape hatch that makes
// total_amount mutable after creation.
func (s *Service) OverrideAmounts(ctx context.Context, actor Actor, id int64, ticketCount *int, totalAmount *decimal.Decimal) (*domain.Booking, error) {
	if !actor.staff() {
		return nil, ErrForbidden
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}
	if err := s.bookings.OverrideAmounts(ctx, id, ticketCount, totalAmount); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, actor, id)
}

// staleTransitionError distinguishes "somebody terminalized it first"
// from other concurrent moves after a failed compare-and-swap.
func (s *Service) staleTransitionError(ctx context.Context, actor Actor, id int64) error {
	current, err := s.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	if current.Status.Terminal() {
		return ErrAlreadyTerminal
	}
	return ErrInvalidTransition
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func intersect(want, held []int64) []int64 {
	heldSet := make(map[int64]struct{}, len(held))
	for _, id := range held {
		heldSet[id] = struct{}{}
	}
	var out []int64
	for _, id := range want {
		if _, ok := heldSet[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
