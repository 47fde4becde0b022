package handlers

import (
	"time"

	"github.com/ku-alexej/shareit/services/request/domain/models"
)

// RequestResponse is the wire representation of a wishlist request
// together with the items offered in answer.
type RequestResponse struct {
	ID          int64                `json:"id"          example:"1"`
	Description string               `json:"description" example:"need a cordless drill for a weekend"`
	Created     time.Time            `json:"created"`
	Items       []AnswerItemResponse `json:"items"`
} // @name RequestResponse

// AnswerItemResponse is an item offered in answer to a request.
type AnswerItemResponse struct {
	ID          int64  `json:"id"          example:"2"`
	Name        string `json:"name"        example:"cordless drill"`
	Description string `json:"description" example:"18V, two batteries"`
	Available   bool   `json:"available"   example:"true"`
	OwnerID     int64  `json:"ownerId"     example:"3"`
	RequestID   int64  `json:"requestId"   example:"1"`
} // @name AnswerItemResponse

// ErrorResponse is the error envelope returned by request endpoints.
type ErrorResponse struct {
	Error string `json:"error" example:"item request not found"`
} // @name RequestErrorResponse

func newRequestResponse(d models.RequestDetails) RequestResponse {
	items := make([]AnswerItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, AnswerItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			OwnerID:     it.OwnerID,
			RequestID:   it.RequestID,
		})
	}
	return RequestResponse{
		ID:          d.ID,
		Description: d.Description,
		Created:     d.Created,
		Items:       items,
	}
}

func newRequestResponses(details []models.RequestDetails) []RequestResponse {
	out := make([]RequestResponse, 0, len(details))
	for _, d := range details {
		out = append(out, newRequestResponse(d))
	}
	return out
}
