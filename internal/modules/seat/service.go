package seat

import (
	"context"
	"errors"

	"cinebook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	seats      SeatRepository
	rooms      RoomRepository
	screenings ScreeningRepository
	bookings   BookingRepository
}

func NewService(seats SeatRepository, rooms RoomRepository, screenings ScreeningRepository, bookings BookingRepository) *Service {
	return &Service{seats: seats, rooms: rooms, screenings: screenings, bookings: bookings}
}

// CreateBatch adds seats to a room. Seat type defaults to standard and
// must be one of the known tiers otherwise.
func (s *Service) CreateBatch(ctx context.Context, req CreateSeatsRequest) ([]domain.Seat, error) {
	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	seats := make([]domain.Seat, 0, len(req.Seats))
	for _, in := range req.Seats {
		st := domain.SeatType(in.Type)
		if in.Type == "" {
			st = domain.SeatStandard
		}
		if !st.Valid() {
			return nil, ErrValidation
		}
		seats = append(seats, domain.Seat{
			Row:    in.Row,
			Number: in.Number,
			Type:   st,
			RoomID: req.RoomID,
		})
	}

	return s.seats.CreateBatch(ctx, seats)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Seat, error) {
	seat, err := s.seats.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return seat, nil
}

func (s *Service) ListByRoom(ctx context.Context, roomID int64) ([]domain.Seat, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return s.seats.ListByRoom(ctx, roomID)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateSeatRequest) (*domain.Seat, error) {
	seat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Row != nil {
		if *req.Row == "" || len(*req.Row) > 5 {
			return nil, ErrValidation
		}
		seat.Row = *req.Row
	}
	if req.Number != nil {
		if *req.Number <= 0 {
			return nil, ErrValidation
		}
		seat.Number = *req.Number
	}
	if req.Type != nil {
		st := domain.SeatType(*req.Type)
		if !st.Valid() {
			return nil, ErrValidation
		}
		seat.Type = st
	}

	if err := s.seats.Update(ctx, seat); err != nil {
		return nil, err
	}
	return seat, nil
}

// Delete removes a seat unless any booking, live or historical, ever
// referenced it. Pricing history stays reconstructible that way.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	used, err := s.bookings.SeatHasHistory(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return ErrSeatInUse
	}

	err = s.seats.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Availability resolves the seat map of a screening's room against the
// active allocations for that screening. Every seat of the room comes
// back exactly once, flagged available or not.
func (s *Service) Availability(ctx context.Context, screeningID int64) ([]domain.SeatStatus, error) {
	screening, err := s.screenings.GetByID(ctx, screeningID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScreeningNotFound
		}
		return nil, err
	}

	seats, err := s.seats.ListByRoom(ctx, screening.RoomID)
	if err != nil {
		return nil, err
	}
	held, err := s.bookings.HeldSeatIDs(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	heldSet := make(map[int64]struct{}, len(held))
	for _, id := range held {
		heldSet[id] = struct{}{}
	}

	statuses := make([]domain.SeatStatus, 0, len(seats))
	for _, seat := range seats {
		_, taken := heldSet[seat.ID]
		statuses = append(statuses, domain.SeatStatus{Seat: seat, IsAvailable: !taken})
	}
	return statuses, nil
}

// AvailableSeats narrows the availability resolution down to the seats
// that can still be booked for the screening.
func (s *Service) AvailableSeats(ctx context.Context, screeningID int64) ([]domain.Seat, error) {
	statuses, err := s.Availability(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	free := make([]domain.Seat, 0, len(statuses))
	for _, st := range statuses {
		if st.IsAvailable {
			free = append(free, st.Seat)
		}
	}
	return free, nil
}
