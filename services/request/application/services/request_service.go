package services

import (
	"context"
	"fmt"

	"github.com/ku-alexej/shareit/pkg/httpx"
	"github.com/ku-alexej/shareit/services/request/domain/models"
	"github.com/ku-alexej/shareit/services/request/domain/repositories"
	userdomain "github.com/ku-alexej/shareit/services/user/domain"
)

// RequestService implements the wishlist use cases.
type RequestService struct {
	requests repositories.RequestRepository
	items    repositories.ItemReader
	users    repositories.UserReader
}

// NewRequestService wires the request use cases.
func NewRequestService(
	requests repositories.RequestRepository,
	items repositories.ItemReader,
	users repositories.UserReader,
) *RequestService {
	return &RequestService{requests: requests, items: items, users: users}
}

// Create registers a new wishlist request for requesterID.
func (s *RequestService) Create(ctx context.Context, requesterID int64, description string) (*models.ItemRequest, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	request, err := s.requests.Create(ctx, models.ItemRequest{
		Description: description,
		RequesterID: requesterID,
	})
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return request, nil
}

// GetOwn returns the user's own requests with answering items, newest
// first.
func (s *RequestService) GetOwn(ctx context.Context, requesterID int64) ([]models.RequestDetails, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	requests, err := s.requests.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return s.withAnswers(ctx, requests)
}

// GetAll returns other users' requests with answering items, newest
// first.
func (s *RequestService) GetAll(ctx context.Context, callerID int64, page httpx.Page) ([]models.RequestDetails, error) {
	if err := s.requireUser(ctx, callerID); err != nil {
		return nil, err
	}
	requests, err := s.requests.FindOthers(ctx, callerID, page)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return s.withAnswers(ctx, requests)
}

// GetByID returns a single request with its answering items.
func (s *RequestService) GetByID(ctx context.Context, callerID, requestID int64) (*models.RequestDetails, error) {
	if err := s.requireUser(ctx, callerID); err != nil {
		return nil, err
	}
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	details, err := s.withAnswers(ctx, []models.ItemRequest{*request})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *RequestService) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return userdomain.ErrUserNotFound
	}
	return nil
}

// withAnswers fetches the answering items of all requests in one query
// and joins them back onto their requests.
func (s *RequestService) withAnswers(ctx context.Context, requests []models.ItemRequest) ([]models.RequestDetails, error) {
	if len(requests) == 0 {
		return []models.RequestDetails{}, nil
	}

	ids := make([]int64, len(requests))
	for i, req := range requests {
		ids[i] = req.ID
	}
	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	return assembleDetails(requests, items), nil
}

// assembleDetails joins answer items onto their requests, preserving
// request order.
func assembleDetails(requests []models.ItemRequest, items []models.AnswerItem) []models.RequestDetails {
	byRequest := make(map[int64][]models.AnswerItem, len(requests))
	for _, it := range items {
		byRequest[it.RequestID] = append(byRequest[it.RequestID], it)
	}

	details := make([]models.RequestDetails, 0, len(requests))
	for _, req := range requests {
		items := byRequest[req.ID]
		if items == nil {
			items = []models.AnswerItem{}
		}
		details = append(details, models.RequestDetails{ItemRequest: req, Items: items})
	}
	return details
}
