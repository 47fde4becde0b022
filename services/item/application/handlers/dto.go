package handlers

import (
	"time"

	"github.com/ku-alexej/shareit/services/item/domain/models"
)

// ItemResponse is the wire representation of an item.
type ItemResponse struct {
	ID          int64  `json:"id"                  example:"2"`
	Name        string `json:"name"                example:"cordless drill"`
	Description string `json:"description"         example:"18V, two batteries"`
	Available   bool   `json:"available"           example:"true"`
	RequestID   *int64 `json:"requestId,omitempty" example:"1"`
} // @name ItemResponse

// ItemDetailsResponse is an item with its comments and, for the owner,
// the nearest bookings. Booking fields are null for non-owners.
type ItemDetailsResponse struct {
	ID          int64               `json:"id"                  example:"2"`
	Name        string              `json:"name"                example:"cordless drill"`
	Description string              `json:"description"         example:"18V, two batteries"`
	Available   bool                `json:"available"           example:"true"`
	RequestID   *int64              `json:"requestId,omitempty" example:"1"`
	LastBooking *BookingRefResponse `json:"lastBooking"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
	Comments    []CommentResponse   `json:"comments"`
} // @name ItemDetailsResponse

// BookingRefResponse identifies a booking on an item view.
type BookingRefResponse struct {
	ID       int64 `json:"id"       example:"7"`
	BookerID int64 `json:"bookerId" example:"4"`
} // @name BookingRefResponse

// CommentResponse is the wire representation of an item comment.
type CommentResponse struct {
	ID         int64     `json:"id"         example:"5"`
	Text       string    `json:"text"       example:"drill worked great"`
	AuthorName string    `json:"authorName" example:"Alexej"`
	Created    time.Time `json:"created"`
} // @name CommentResponse

// ErrorResponse is the error envelope returned by item endpoints.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ItemErrorResponse

func newItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
	}
}

func newItemDetailsResponse(d models.ItemDetails) ItemDetailsResponse {
	resp := ItemDetailsResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Available:   d.Available,
		RequestID:   d.RequestID,
		Comments:    newCommentResponses(d.Comments),
	}
	if d.LastBooking != nil {
		resp.LastBooking = &BookingRefResponse{ID: d.LastBooking.ID, BookerID: d.LastBooking.BookerID}
	}
	if d.NextBooking != nil {
		resp.NextBooking = &BookingRefResponse{ID: d.NextBooking.ID, BookerID: d.NextBooking.BookerID}
	}
	return resp
}

func newCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

func newCommentResponses(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, newCommentResponse(c))
	}
	return out
}
