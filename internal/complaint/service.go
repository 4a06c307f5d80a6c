// Package complaint owns the complaint lifecycle: Pending -> Assigned ->
// Resolved, with no backward transitions, and the linked personnel
// availability flag.
package complaint

import (
	"errors"
	"fmt"
	"math/rand"

	"helpdesk/backend/internal/models"
)

var (
	ErrValidation           = errors.New("missing required field")
	ErrNotFound             = errors.New("complaint not found")
	ErrUnknownType          = errors.New("unknown complaint type")
	ErrPersonnelNotFound    = errors.New("personnel not found")
	ErrPersonnelUnavailable = errors.New("personnel is already assigned")
	ErrDuplicateFeedback    = errors.New("feedback already submitted")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
)

// DefaultTypes are the complaint categories seeded at startup. Personnel
// roles use the same vocabulary.
var DefaultTypes = []string{
	"Network",
	"Cleaning",
	"Carpentry",
	"PC Maintenance",
	"Plumbing",
	"Electricity",
}

// Store is the persistence slice the engine needs.
type Store interface {
	GetUserByID(id uint) (*models.User, error)
	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	ListComplaints() ([]models.Complaint, error)
	ListComplaintsByUser(userID uint) ([]models.Complaint, error)
	TrackComplaint(email, code string) (*models.Complaint, error)
	BindPersonnel(complaintID, personnelID uint) error
	UpdateComplaintStatus(complaintID uint, status string) error
	GetComplaintTypeByName(name string) (*models.ComplaintType, error)
	ListComplaintTypes() ([]models.ComplaintType, error)
	FindPersonnel(name, contact string) (*models.Personnel, error)
	ClaimPersonnel(id uint) (bool, error)
	ReleasePersonnel(id uint) error
	GetFeedbackByComplaint(complaintID uint) (*models.Feedback, error)
	CreateFeedback(fb *models.Feedback) error
}

// Notifier receives lifecycle notifications. Implementations must never
// block the calling operation on delivery.
type Notifier interface {
	TicketSubmitted(email, name, complaintType, code string)
	PersonnelAssigned(email, name, complaintType, personnelName, personnelContact string)
	TicketResolved(email, name, complaintType string)
}

// Service is the complaint lifecycle engine.
type Service struct {
	store    Store
	notifier Notifier
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// SubmitInput carries the fields of a new complaint.
type SubmitInput struct {
	Type        string
	Message     string
	Location    string
	Priority    string
	Attachments []string
}

// TrackResult is the anonymous-ish tracking response. Personnel is only set
// while the complaint is Assigned.
type TrackResult struct {
	Status    string
	Personnel *models.Personnel
}

// Submit creates a Pending complaint owned by the given user, generates a
// tracking code and notifies the owner. The code is four digits and not
// checked for collisions; lookups disambiguate by owner email.
func (s *Service) Submit(ownerID uint, in SubmitInput) (*models.Complaint, error) {
	if in.Type == "" || in.Message == "" || in.Location == "" || in.Priority == "" {
		return nil, ErrValidation
	}

	owner, err := s.store.GetUserByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: owner %d", ErrNotFound, ownerID)
	}

	ct, err := s.store.GetComplaintTypeByName(in.Type)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, ErrUnknownType
	}

	complaint := &models.Complaint{
		Status:          models.ComplaintPending,
		Priority:        in.Priority,
		Location:        in.Location,
		Message:         in.Message,
		Attachments:     in.Attachments,
		Code:            generateCode(),
		UserID:          owner.ID,
		ComplaintTypeID: &ct.ID,
	}
	if err := s.store.CreateComplaint(complaint); err != nil {
		return nil, err
	}
	complaint.User = *owner
	complaint.ComplaintType = *ct

	s.notifier.TicketSubmitted(owner.Email, owner.FullName, ct.TypeName, complaint.Code)
	return complaint, nil
}

// Assign binds a personnel, resolved by name and contact, to a complaint and
// moves it to Assigned. The availability flip is a single conditional update
// so two concurrent assignments cannot double-book the same person.
func (s *Service) Assign(complaintID uint, personnelName, personnelContact string) error {
	if personnelName == "" || personnelContact == "" {
		return ErrValidation
	}

	complaint, err := s.store.GetComplaintByID(complaintID)
	if err != nil {
		return err
	}
	if complaint == nil {
		return ErrNotFound
	}

	personnel, err := s.store.FindPersonnel(personnelName, personnelContact)
	if err != nil {
		return err
	}
	if personnel == nil {
		return ErrPersonnelNotFound
	}

	claimed, err := s.store.ClaimPersonnel(personnel.ID)
	if err != nil {
		return err
	}
	if !claimed {
		return ErrPersonnelUnavailable
	}

	if err := s.store.BindPersonnel(complaint.ID, personnel.ID); err != nil {
		// Undo the claim so a failed bind does not strand the person.
		if relErr := s.store.ReleasePersonnel(personnel.ID); relErr != nil {
			return errors.Join(err, relErr)
		}
		return err
	}

	s.notifier.PersonnelAssigned(
		complaint.User.Email, complaint.User.FullName,
		complaint.ComplaintType.TypeName,
		personnel.Name, personnel.Contact,
	)
	return nil
}

// Resolve moves a complaint to Resolved and restores the bound personnel's
// availability.
func (s *Service) Resolve(complaintID uint) error {
	complaint, err := s.store.GetComplaintByID(complaintID)
	if err != nil {
		return err
	}
	if complaint == nil {
		return ErrNotFound
	}

	if err := s.store.UpdateComplaintStatus(complaint.ID, models.ComplaintResolved); err != nil {
		return err
	}

	if complaint.AssignedPersonnelID != nil {
		if err := s.store.ReleasePersonnel(*complaint.AssignedPersonnelID); err != nil {
			return err
		}
	}

	s.notifier.TicketResolved(
		complaint.User.Email, complaint.User.FullName,
		complaint.ComplaintType.TypeName,
	)
	return nil
}

// Track looks a ticket up by owner email and tracking code. Personnel
// contact details are exposed only while the ticket is Assigned.
func (s *Service) Track(email, code string) (*TrackResult, error) {
	if email == "" || code == "" {
		return nil, ErrValidation
	}

	complaint, err := s.store.TrackComplaint(email, code)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrNotFound
	}

	result := &TrackResult{Status: complaint.Status}
	if complaint.Status == models.ComplaintAssigned {
		result.Personnel = complaint.AssignedPersonnel
	}
	return result, nil
}

// RecordFeedback stores the single feedback a complaint may receive.
func (s *Service) RecordFeedback(complaintID, userID uint, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	complaint, err := s.store.GetComplaintByID(complaintID)
	if err != nil {
		return err
	}
	if complaint == nil {
		return ErrNotFound
	}

	existing, err := s.store.GetFeedbackByComplaint(complaintID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateFeedback
	}

	return s.store.CreateFeedback(&models.Feedback{
		ComplaintID: complaintID,
		UserID:      userID,
		PersonnelID: complaint.AssignedPersonnelID,
		Rating:      rating,
		Comment:     comment,
	})
}

// ListAll returns every complaint for the admin dashboard.
func (s *Service) ListAll() ([]models.Complaint, error) {
	return s.store.ListComplaints()
}

// ListByOwner returns the complaints of one user, newest first.
func (s *Service) ListByOwner(userID uint) ([]models.Complaint, error) {
	return s.store.ListComplaintsByUser(userID)
}

// Types returns the selectable complaint categories.
func (s *Service) Types() ([]models.ComplaintType, error) {
	return s.store.ListComplaintTypes()
}

// generateCode returns a random 4-digit tracking code. Collisions are
// possible and accepted; the owner-email join disambiguates.
func generateCode() string {
	return fmt.Sprintf("%04d", 1000+rand.Intn(9000))
}
