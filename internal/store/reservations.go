package store

import "tableside/internal/domain"

func (s *Store) ListReservations(date string) []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservations := []domain.Reservation{}
	for _, res := range s.reservations {
		if date == "" || res.Date == date {
			reservations = append(reservations, res)
		}
	}
	return reservations
}

// CreateReservation records a new reservation in pending status. Table
// state is deliberately untouched: a reservation holds a table only once
// it is confirmed, via the order cascade.
func (s *Store) CreateReservation(in domain.ReservationInput) (domain.Reservation, error) {
	if in.CustomerName == "" || in.Phone == "" || in.Date == "" || in.Time == "" || in.Guests == 0 {
		return domain.Reservation{}, &ValidationError{Message: "Customer name, phone, date, time, and guests are required"}
	}
	if in.Guests < 1 {
		return domain.Reservation{}, &ValidationError{Message: "Guests must be a positive number"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := domain.Reservation{
		ID:           s.nextReservationID,
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Date:         in.Date,
		Time:         in.Time,
		Guests:       in.Guests,
		TableNumber:  in.TableNumber,
		Status:       domain.ReservationPending,
	}
	s.nextReservationID++
	s.reservations = append(s.reservations, res)
	return res, nil
}

// DeleteReservation removes a reservation without touching table state.
// Deleting a record is not the same as cancelling an active stay.
func (s *Store) DeleteReservation(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Message: "Reservation not found"}
}
