package model

import (
	"strings"
	"time"
)

// Company is the employer embedded in a job posting
type Company struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

// Job represents a job posting
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Type        string    `json:"type"`
	Description string    `json:"description" validate:"required"`
	Company     Company   `json:"company"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateJobRequest is used for creating a new job
type CreateJobRequest struct {
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Company     Company `json:"company"`
}

// UpdateCompanyRequest merges into the existing company field by field.
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
}

type UpdateJobRequest struct {
	Title       *string               `json:"title,omitempty"` // Pointers to allow partial updates
	Type        *string               `json:"type,omitempty"`
	Description *string               `json:"description,omitempty"`
	Company     *UpdateCompanyRequest `json:"company,omitempty"`
}

// Validate enforces the persisted-job invariant: non-empty title and description.
func (j *Job) Validate() error {
	j.Title = strings.TrimSpace(j.Title)
	j.Description = strings.TrimSpace(j.Description)
	return validateStruct(j)
}

// Apply copies the supplied fields of req onto j. Omitted fields keep their values.
func (req UpdateJobRequest) Apply(j *Job) {
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Type != nil {
		j.Type = *req.Type
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if c := req.Company; c != nil {
		if c.Name != nil {
			j.Company.Name = *c.Name
		}
		if c.ContactEmail != nil {
			j.Company.ContactEmail = *c.ContactEmail
		}
		if c.ContactPhone != nil {
			j.Company.ContactPhone = *c.ContactPhone
		}
	}
}

// NewJob builds an unsaved job from a create request.
func (req CreateJobRequest) NewJob() *Job {
	return &Job{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Company:     req.Company,
	}
}
