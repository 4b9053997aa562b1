package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

// TutorFilter narrows the public tutor listing. Zero values mean "no
// filter".
type TutorFilter struct {
	Subject   string
	Search    string
	MinRating float64
	MaxRate   float64
	Page      int
	PerPage   int
}

func (f TutorFilter) query() url.Values {
	q := url.Values{}
	if f.Subject != "" {
		q.Set("subject", f.Subject)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.MinRating > 0 {
		q.Set("min_rating", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}
	if f.MaxRate > 0 {
		q.Set("max_rate", strconv.FormatFloat(f.MaxRate, 'f', -1, 64))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return q
}

func (c *Client) ListTutors(ctx context.Context, filter TutorFilter) ([]domain.TutorProfile, error) {
	var tutors []domain.TutorProfile
	if err := c.get(ctx, "/tutors", filter.query(), &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

func (c *Client) FeaturedTutors(ctx context.Context) ([]domain.TutorProfile, error) {
	var tutors []domain.TutorProfile
	if err := c.get(ctx, "/tutors/featured", nil, &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

func (c *Client) MyTutorProfile(ctx context.Context) (*domain.TutorProfile, error) {
	var profile domain.TutorProfile
	if err := c.get(ctx, "/tutors/profile/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// TutorProfileUpdate uses pointers so absent fields are left untouched
// by the backend.
type TutorProfileUpdate struct {
	Headline        *string   `json:"headline,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	Education       *string   `json:"education,omitempty"`
	Certifications  *[]string `json:"certifications,omitempty"`
	HourlyRate      *float64  `json:"hourly_rate,omitempty"`
	Currency        *string   `json:"currency,omitempty"`
	Languages       *[]string `json:"languages,omitempty"`
	TeachingStyle   *string   `json:"teaching_style,omitempty"`
	Subjects        *[]string `json:"subjects,omitempty"`
	Country         *string   `json:"country,omitempty"`
	City            *string   `json:"city,omitempty"`
	Timezone        *string   `json:"timezone,omitempty"`
	OffersPrivate   *bool     `json:"offers_private,omitempty"`
	OffersGroup     *bool     `json:"offers_group,omitempty"`
	IsAvailable     *bool     `json:"is_available,omitempty"`
}

func (c *Client) UpdateTutorProfile(ctx context.Context, update TutorProfileUpdate) (*domain.TutorProfile, error) {
	var profile domain.TutorProfile
	if err := c.send(ctx, http.MethodPut, "/tutors/profile", update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) GetTutor(ctx context.Context, tutorID string) (*domain.TutorProfile, error) {
	var profile domain.TutorProfile
	if err := c.get(ctx, "/tutors/"+tutorID, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) TutorReviews(ctx context.Context, tutorID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.get(ctx, "/tutors/"+tutorID+"/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	var subjects []domain.Subject
	if err := c.get(ctx, "/subjects", nil, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

type SubjectCreate struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

func (c *Client) CreateSubject(ctx context.Context, req SubjectCreate) (*domain.Subject, error) {
	var subject domain.Subject
	if err := c.send(ctx, http.MethodPost, "/subjects", req, &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (c *Client) SubjectCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/subjects/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
