package model

import (
	"time"
)

type Role string

const (
	RoleMember    Role = "member"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleLibrarian, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may run circulation desk operations.
func (r Role) IsStaff() bool {
	return r == RoleLibrarian || r == RoleAdmin
}

type MemberStatus string

const (
	MemberPending   MemberStatus = "pending"
	MemberApproved  MemberStatus = "approved"
	MemberSuspended MemberStatus = "suspended"
	MemberExpired   MemberStatus = "expired"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberPending, MemberApproved, MemberSuspended, MemberExpired:
		return true
	}
	return false
}

type MembershipType string

const (
	MembershipAdult   MembershipType = "Adult"
	MembershipStudent MembershipType = "Student"
	MembershipChild   MembershipType = "Child"
	MembershipSenior  MembershipType = "Senior"
)

func (t MembershipType) Valid() bool {
	switch t {
	case MembershipAdult, MembershipStudent, MembershipChild, MembershipSenior:
		return true
	}
	return false
}

func MembershipTypes() []MembershipType {
	return []MembershipType{MembershipAdult, MembershipStudent, MembershipChild, MembershipSenior}
}

type Member struct {
	ID             int64          `json:"id" db:"id"`
	Username       string         `json:"username" db:"username"`
	Email          string         `json:"email" db:"email"`
	FirstName      string         `json:"firstName" db:"first_name"`
	LastName       string         `json:"lastName" db:"last_name"`
	Phone          string         `json:"phone" db:"phone"`
	Address        string         `json:"address" db:"address"`
	Role           Role           `json:"role" db:"role"`
	Status         MemberStatus   `json:"status" db:"status"`
	MembershipID   *string        `json:"membershipID,omitempty" db:"membership_id"`
	MembershipType MembershipType `json:"membershipType" db:"membership_type"`
	JoinDate       time.Time      `json:"joinDate" db:"join_date"`
	ExpirationDate *time.Time     `json:"expirationDate,omitempty" db:"expiration_date"`
}

// CanBorrow reports whether the member may receive loans.
func (m Member) CanBorrow() bool {
	return m.Role == RoleMember && m.Status == MemberApproved
}

type Credentials struct {
	ID           int64        `db:"id"`
	Username     string       `db:"username"`
	PasswordHash string       `db:"password_hash"`
	Role         Role         `db:"role"`
	Status       MemberStatus `db:"status"`
}

// NewMember is the insert payload; Status decides whether a membership ID is assigned.
type NewMember struct {
	Username       string
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	Phone          string
	Address        string
	Role           Role
	Status         MemberStatus
	MembershipType MembershipType
	ExpirationDate *time.Time
}

type RegisterRequest struct {
	Username       string         `json:"username" validate:"required,min=3"`
	Email          string         `json:"email" validate:"required,email"`
	Password       string         `json:"password" validate:"required,min=6"`
	FirstName      string         `json:"firstName" validate:"required"`
	LastName       string         `json:"lastName" validate:"required"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	MembershipType MembershipType `json:"membershipType"`
}

// CreateMemberRequest is the staff desk form; the member is approved immediately.
type CreateMemberRequest struct {
	Email          string         `json:"email" validate:"required,email"`
	FirstName      string         `json:"firstName" validate:"required"`
	LastName       string         `json:"lastName" validate:"required"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	MembershipType MembershipType `json:"membershipType"`
	Password       string         `json:"password" validate:"omitempty,min=6"`
}

type UpdateMemberRequest struct {
	Email          *string         `json:"email" validate:"omitempty,email"`
	FirstName      *string         `json:"firstName" validate:"omitempty,min=1"`
	LastName       *string         `json:"lastName" validate:"omitempty,min=1"`
	Phone          *string         `json:"phone"`
	Address        *string         `json:"address"`
	MembershipType *MembershipType `json:"membershipType"`
}

type MemberFilter struct {
	Search string
	Status MemberStatus
	Role   Role
	Paging
}

type ListMembers struct {
	Paging `json:",inline"`
	Items  []Member `json:"items"`
}
