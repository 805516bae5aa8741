package dto

import (
	"strings"
	"time"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/pkg/apperrors"
)

type LinkDTO struct {
	Label string `json:"label" validate:"required,notblank,max=100"`
	URL   string `json:"url" validate:"required,notblank,max=500"`
}

// ProfileFields - общие для регистрации и обновления атрибуты профиля.
// nil (или отсутствующее поле) означает "не задано".
type ProfileFields struct {
	Bio      *string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Location *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Links    []LinkDTO `json:"links,omitempty" validate:"omitempty,max=20,dive"`

	// Creator
	Platform      *string `json:"platform,omitempty" validate:"omitempty,max=100"`
	Handle        *string `json:"handle,omitempty" validate:"omitempty,max=100"`
	Followers     *int64  `json:"followers,omitempty" validate:"omitempty,min=0"`
	DOB           *string `json:"dob,omitempty"`
	AudienceReach *string `json:"audienceReach,omitempty" validate:"omitempty,max=100"`

	// Sponsor
	CompanyName   *string `json:"companyName,omitempty" validate:"omitempty,max=200"`
	NoOfEmployees *string `json:"noOfEmployees,omitempty" validate:"omitempty,max=50"`
	Budget        *string `json:"budget,omitempty" validate:"omitempty,max=50"`
	Requirements  *string `json:"requirements,omitempty" validate:"omitempty,max=5000"`
}

// UpdateProfileRequest содержит только разрешенные к изменению поля:
// email, пароль и роль через этот запрос не меняются.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,notblank,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,notblank,max=100"`
	ProfileFields
}

type GetProfileRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

func (r *UpdateProfileRequest) ToUpdate() (models.ProfileUpdate, error) {
	upd, err := r.ProfileFields.toUpdate()
	if err != nil {
		return upd, err
	}
	upd.FirstName = trimmed(r.FirstName)
	upd.LastName = trimmed(r.LastName)
	return upd, nil
}

func (p *ProfileFields) toUpdate() (models.ProfileUpdate, error) {
	upd := models.ProfileUpdate{
		Bio:           p.Bio,
		Location:      trimmed(p.Location),
		Platform:      p.Platform,
		Handle:        trimmed(p.Handle),
		Followers:     p.Followers,
		AudienceReach: p.AudienceReach,
		CompanyName:   trimmed(p.CompanyName),
		NoOfEmployees: p.NoOfEmployees,
		Budget:        p.Budget,
		Requirements:  p.Requirements,
	}

	if p.Links != nil {
		links := make([]models.Link, 0, len(p.Links))
		for _, l := range p.Links {
			links = append(links, models.Link{Label: strings.TrimSpace(l.Label), URL: strings.TrimSpace(l.URL)})
		}
		upd.Links = &links
	}

	if p.DOB != nil && strings.TrimSpace(*p.DOB) != "" {
		dob, err := ParseDate(*p.DOB)
		if err != nil {
			return upd, apperrors.ValidationError(map[string]string{
				"dob": "Must be a date (YYYY-MM-DD or RFC3339)",
			})
		}
		upd.DOB = &dob
	}

	return upd, nil
}

// ParseDate принимает дату как YYYY-MM-DD или RFC3339
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
