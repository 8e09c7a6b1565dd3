package services

import (
	"tourbooking/entity"

	"gorm.io/gorm"
)

var cancellable = []entity.BookingStatus{entity.BookingPending, entity.BookingConfirmed}

// ----- User actions -----
func (s *BookingService) CancelByUser(userID, bookingID uint) (*entity.Booking, error) {
	return s.transition(bookingID, cancellable, entity.BookingCancelled, func(b *entity.Booking) error {
		if b.UserID != userID {
			return ErrForbidden
		}
		return nil
	})
}

// ----- Admin actions -----
func (s *BookingService) AdminConfirm(bookingID uint) (*entity.Booking, error) {
	return s.transition(bookingID, []entity.BookingStatus{entity.BookingPending}, entity.BookingConfirmed, nil)
}

func (s *BookingService) AdminCancel(bookingID uint) (*entity.Booking, error) {
	return s.transition(bookingID, cancellable, entity.BookingCancelled, nil)
}

// ConfirmInTx is the payment path: pending -> confirmed inside the caller's transaction.
func (s *BookingService) ConfirmInTx(tx *gorm.DB, bookingID uint) (bool, error) {
	affected, err := s.Repo.UpdateStatusGuard(tx, bookingID, []entity.BookingStatus{entity.BookingPending}, entity.BookingConfirmed)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *BookingService) transition(
	bookingID uint,
	from []entity.BookingStatus,
	to entity.BookingStatus,
	authorize func(b *entity.Booking) error,
) (*entity.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var b entity.Booking
		if err := tx.First(&b, bookingID).Error; err != nil {
			return notFound(err, "booking")
		}
		if authorize != nil {
			if err := authorize(&b); err != nil {
				return err
			}
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, b.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b, err := s.Repo.FindByID(bookingID)
	if err != nil {
		return nil, err
	}
	s.publish("booking."+string(to), b)
	return b, nil
}
