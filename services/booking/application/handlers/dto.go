package handlers

import (
	"time"

	"github.com/ku-alexej/shareit/services/booking/domain/models"
)

// BookingResponse is the wire representation of a booking.
type BookingResponse struct {
	ID     int64          `json:"id"     example:"1"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status string         `json:"status" example:"WAITING"`
	Booker BookerResponse `json:"booker"`
	Item   ItemResponse   `json:"item"`
} // @name BookingResponse

// BookerResponse identifies the user who placed a booking.
type BookerResponse struct {
	ID int64 `json:"id" example:"4"`
} // @name BookerResponse

// ItemResponse identifies the booked item.
type ItemResponse struct {
	ID   int64  `json:"id"   example:"2"`
	Name string `json:"name" example:"cordless drill"`
} // @name BookingItemResponse

// ErrorResponse is the error envelope returned by booking endpoints.
type ErrorResponse struct {
	Error string `json:"error" example:"booking not found"`
} // @name BookingErrorResponse

func newBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: BookerResponse{ID: b.BookerID},
		Item:   ItemResponse{ID: b.ItemID, Name: b.ItemName},
	}
}

func newBookingResponses(bookings []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, newBookingResponse(b))
	}
	return out
}
