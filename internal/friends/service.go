// Package friends owns the friend-request state machine: a pending request
// between two users that the recipient may accept, producing a symmetric
// friendship edge.
package friends

import (
	"errors"

	"helpdesk/backend/internal/models"

	"github.com/samber/lo"
)

var (
	ErrSelfRequest    = errors.New("cannot send a friend request to yourself")
	ErrAlreadyFriends = errors.New("users are already friends")
	ErrRequestExists  = errors.New("a friend request already exists between these users")
	ErrNotFound       = errors.New("friend request not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotRecipient   = errors.New("only the recipient may accept a friend request")
)

// Store is the persistence slice the engine needs.
type Store interface {
	GetUserByID(id uint) (*models.User, error)
	GetFriends(userID uint) ([]models.User, error)
	AreFriends(userID, otherID uint) (bool, error)
	AddFriendship(userID, otherID uint) error
	CreateFriendRequest(req *models.FriendRequest) error
	GetFriendRequestByID(id uint) (*models.FriendRequest, error)
	FindRequestBetween(userID, otherID uint) (*models.FriendRequest, error)
	UpdateFriendRequest(req *models.FriendRequest) error
	ListRequestsForRecipient(userID uint, status string) ([]models.FriendRequest, error)
	ListOnboardedUsersExcluding(ids []uint) ([]models.User, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Send creates a pending request from sender to recipient. At most one
// request may exist between a pair at a time, in either direction.
func (s *Service) Send(senderID, recipientID uint) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, ErrSelfRequest
	}

	recipient, err := s.store.GetUserByID(recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrUserNotFound
	}

	alreadyFriends, err := s.store.AreFriends(senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if alreadyFriends {
		return nil, ErrAlreadyFriends
	}

	existing, err := s.store.FindRequestBetween(senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRequestExists
	}

	req := &models.FriendRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.FriendRequestPending,
	}
	if err := s.store.CreateFriendRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Accept transitions a pending request to accepted and inserts the
// friendship edge in both directions. Only the recipient may accept.
func (s *Service) Accept(requestID, acceptingUserID uint) error {
	req, err := s.store.GetFriendRequestByID(requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrNotFound
	}

	if req.RecipientID != acceptingUserID {
		return ErrNotRecipient
	}

	// Guard against a friendship created since the request was sent.
	alreadyFriends, err := s.store.AreFriends(req.SenderID, req.RecipientID)
	if err != nil {
		return err
	}
	if alreadyFriends {
		return ErrAlreadyFriends
	}

	req.Status = models.FriendRequestAccepted
	if err := s.store.UpdateFriendRequest(req); err != nil {
		return err
	}

	return s.store.AddFriendship(req.SenderID, req.RecipientID)
}

// Friends returns the user's friend set.
func (s *Service) Friends(userID uint) ([]models.PublicUser, error) {
	users, err := s.store.GetFriends(userID)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(u models.User, _ int) models.PublicUser {
		return u.Public()
	}), nil
}

// Requests returns the incoming pending requests and the accepted ones, for
// the notifications view.
func (s *Service) Requests(userID uint) (incoming, accepted []models.FriendRequest, err error) {
	incoming, err = s.store.ListRequestsForRecipient(userID, models.FriendRequestPending)
	if err != nil {
		return nil, nil, err
	}
	accepted, err = s.store.ListRequestsForRecipient(userID, models.FriendRequestAccepted)
	if err != nil {
		return nil, nil, err
	}
	return incoming, accepted, nil
}

// Recommendations returns onboarded users who are neither the requester nor
// already their friends.
func (s *Service) Recommendations(userID uint) ([]models.PublicUser, error) {
	friends, err := s.store.GetFriends(userID)
	if err != nil {
		return nil, err
	}

	exclude := lo.Map(friends, func(u models.User, _ int) uint { return u.ID })
	exclude = append(exclude, userID)

	users, err := s.store.ListOnboardedUsersExcluding(exclude)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(u models.User, _ int) models.PublicUser {
		return u.Public()
	}), nil
}
