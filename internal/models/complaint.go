package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	ComplaintPending  = "Pending"
	ComplaintAssigned = "Assigned"
	ComplaintResolved = "Resolved"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Complaint is a support ticket. Its status only ever moves forward:
// Pending -> Assigned -> Resolved.
type Complaint struct {
	gorm.Model

	Status      string         `gorm:"not null;default:Pending" json:"status"`
	Priority    string         `gorm:"not null;default:Low" json:"priority"`
	Location    string         `json:"location"`
	Message     string         `gorm:"type:text" json:"message"`
	Attachments pq.StringArray `gorm:"type:text[]" json:"attachments"`

	// Code is the short numeric tracking code. It is not globally unique;
	// lookups always pair it with the owner's email.
	Code string `gorm:"type:varchar(10);index" json:"code"`

	FeedbackGiven bool `gorm:"default:false" json:"feedbackGiven"`

	UserID              uint  `gorm:"not null;index" json:"userId"`
	ComplaintTypeID     *uint `json:"complaintTypeId"`
	AssignedPersonnelID *uint `json:"assignedPersonnelId"`

	User              User          `gorm:"foreignKey:UserID" json:"-"`
	ComplaintType     ComplaintType `gorm:"foreignKey:ComplaintTypeID" json:"-"`
	AssignedPersonnel *Personnel    `gorm:"foreignKey:AssignedPersonnelID" json:"-"`
}

// ComplaintType is a complaint category such as "Plumbing" or "Network".
type ComplaintType struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TypeName string `gorm:"uniqueIndex;not null" json:"typeName"`
}

// Feedback is the single rating a user may leave on a resolved complaint.
type Feedback struct {
	gorm.Model

	ComplaintID uint   `gorm:"uniqueIndex;not null" json:"complaintId"`
	UserID      uint   `gorm:"not null" json:"userId"`
	PersonnelID *uint  `json:"personnelId"`
	Rating      int    `gorm:"not null" json:"rating"`
	Comment     string `gorm:"type:text" json:"comment"`
}
