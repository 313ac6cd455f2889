package model

import (
	"fmt"
	"time"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable  AvailabilityStatus = "available"
	AvailabilityCheckedOut AvailabilityStatus = "checked_out"
	AvailabilityOnHold     AvailabilityStatus = "on_hold"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityCheckedOut, AvailabilityOnHold:
		return true
	}
	return false
}

type Book struct {
	ID                 int64              `json:"id" db:"id"`
	Title              string             `json:"title" db:"title"`
	Author             string             `json:"author" db:"author"`
	ISBN               string             `json:"isbn" db:"isbn"`
	Genre              string             `json:"genre" db:"genre"`
	Category           string             `json:"category" db:"category"`
	PublicationYear    *int               `json:"publicationYear,omitempty" db:"publication_year"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus" db:"availability_status"`
	Quantity           int                `json:"quantity" db:"quantity"`
	CoverImage         string             `json:"coverImage" db:"cover_image"`
	Description        string             `json:"description" db:"description"`
	CreatedAt          time.Time          `json:"createdAt" db:"created_at"`
}

// CoverURL is the Open Library cover used when a book has no image of its own.
func CoverURL(isbn string) string {
	return fmt.Sprintf("https://covers.openlibrary.org/b/isbn/%s-M.jpg", isbn)
}

type CreateBookRequest struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	ISBN            string `json:"isbn" validate:"required"`
	Genre           string `json:"genre"`
	Category        string `json:"category"`
	PublicationYear *int   `json:"publicationYear" validate:"omitempty,gte=0,lte=9999"`
	Quantity        *int   `json:"quantity" validate:"omitempty,gte=0"`
	CoverImage      string `json:"coverImage"`
	Description     string `json:"description"`
}

// UpdateBookRequest is a patch; nil fields are left untouched.
type UpdateBookRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1"`
	Author          *string `json:"author" validate:"omitempty,min=1"`
	ISBN            *string `json:"isbn" validate:"omitempty,min=1"`
	Genre           *string `json:"genre"`
	Category        *string `json:"category"`
	PublicationYear *int    `json:"publicationYear" validate:"omitempty,gte=0,lte=9999"`
	Quantity        *int    `json:"quantity" validate:"omitempty,gte=0"`
	CoverImage      *string `json:"coverImage"`
	Description     *string `json:"description"`
}

type BookFilter struct {
	Search       string
	Genre        string
	Availability AvailabilityStatus
	Paging
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type InventoryAction string

const (
	InventoryActionAdd    InventoryAction = "add"
	InventoryActionUpdate InventoryAction = "update"
	InventoryActionDelete InventoryAction = "delete"
)

type InventoryUpdate struct {
	ID             int64           `json:"id" db:"id"`
	BookID         int64           `json:"bookID" db:"book_id"`
	Action         InventoryAction `json:"action" db:"action"`
	QuantityBefore int             `json:"quantityBefore" db:"quantity_before"`
	QuantityAfter  int             `json:"quantityAfter" db:"quantity_after"`
	UpdatedBy      *int64          `json:"updatedBy,omitempty" db:"updated_by"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}
