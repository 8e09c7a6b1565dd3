package services

import (
	"fmt"
	"io"

	"tourbooking/repository"

	"github.com/xuri/excelize/v2"
)

const bookingSheet = "Bookings"

var bookingHeader = []interface{}{
	"Booking ID", "Booking Date", "Travel Date", "Tour", "User Email",
	"People", "Total Price", "Status",
}

type ExportService struct {
	Bookings *repository.BookingRepository
}

func NewExportService(bookings *repository.BookingRepository) *ExportService {
	return &ExportService{Bookings: bookings}
}

// WriteBookingsXLSX writes every booking as one sheet row, header first.
func (s *ExportService) WriteBookingsXLSX(w io.Writer) error {
	bookings, err := s.Bookings.ListAll()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", bookingSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(bookingSheet, "A1", &bookingHeader); err != nil {
		return err
	}

	for i, b := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			b.ID,
			b.BookingDate.Format("2006-01-02 15:04"),
			b.TravelDate.Format("2006-01-02"),
			b.Tour.Name,
			b.User.Email,
			b.NumPeople,
			b.TotalPrice,
			string(b.Status),
		}
		if err := f.SetSheetRow(bookingSheet, cell, &row); err != nil {
			return fmt.Errorf("ExportService: row %d: %w", i+2, err)
		}
	}
	return f.Write(w)
}
