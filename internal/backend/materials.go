package backend

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

// BookedStudents lists students who have booked with the current
// tutor, for sharing materials and assignments.
func (c *Client) BookedStudents(ctx context.Context) ([]domain.BookedStudent, error) {
	var students []domain.BookedStudent
	if err := c.get(ctx, "/materials/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

type MaterialUpload struct {
	Title       string
	Description string
	Subject     string
	FileName    string
	File        io.Reader
}

// CreateMaterial uploads a teaching material as a multipart form.
func (c *Client) CreateMaterial(ctx context.Context, req MaterialUpload) (*domain.Material, error) {
	fields := map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"subject":     req.Subject,
	}
	var material domain.Material
	if err := c.upload(ctx, "/materials", fields, "file", req.FileName, req.File, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

func (c *Client) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	var materials []domain.Material
	if err := c.get(ctx, "/materials", nil, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (c *Client) DeleteMaterial(ctx context.Context, materialID string) error {
	return c.send(ctx, http.MethodDelete, "/materials/"+materialID, nil, nil)
}

type AssignmentCreate struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Subject       string    `json:"subject"`
	DueDate       time.Time `json:"due_date"`
	MaxMarks      int       `json:"max_marks"`
	SharedWithAll bool      `json:"shared_with_all"`
	StudentIDs    []string  `json:"student_ids,omitempty"`
}

type AssignmentSubmit struct {
	SubmissionURL string `json:"submission_url,omitempty"`
}

type AssignmentGrade struct {
	ObtainedMarks *int   `json:"obtained_marks,omitempty"`
	Feedback      string `json:"feedback,omitempty"`
}

func (c *Client) CreateAssignment(ctx context.Context, req AssignmentCreate) (*domain.Assignment, error) {
	var a domain.Assignment
	if err := c.send(ctx, http.MethodPost, "/assignments", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) ListAssignments(ctx context.Context) ([]domain.Assignment, error) {
	var list []domain.Assignment
	if err := c.get(ctx, "/assignments", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SubmitAssignment(ctx context.Context, assignmentID string, req AssignmentSubmit) (*domain.Assignment, error) {
	var a domain.Assignment
	if err := c.send(ctx, http.MethodPut, "/assignments/"+assignmentID+"/submit", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) GradeAssignment(ctx context.Context, assignmentID string, req AssignmentGrade) (*domain.Assignment, error) {
	var a domain.Assignment
	if err := c.send(ctx, http.MethodPut, "/assignments/"+assignmentID+"/grade", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) DeleteAssignment(ctx context.Context, assignmentID string) error {
	return c.send(ctx, http.MethodDelete, "/assignments/"+assignmentID, nil, nil)
}

type RatingCreate struct {
	TutorID     string     `json:"tutor_id"`
	TutorName   string     `json:"tutor_name"`
	BookingID   string     `json:"booking_id,omitempty"`
	Subject     string     `json:"subject"`
	Rating      int        `json:"rating"`
	Comment     string     `json:"comment"`
	SessionDate *time.Time `json:"session_date,omitempty"`
}

func (c *Client) CreateRating(ctx context.Context, req RatingCreate) (*domain.Rating, error) {
	var rating domain.Rating
	if err := c.send(ctx, http.MethodPost, "/ratings", req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// MyRatings lists ratings the current student has submitted.
func (c *Client) MyRatings(ctx context.Context) ([]domain.Rating, error) {
	var ratings []domain.Rating
	if err := c.get(ctx, "/ratings/my", nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (c *Client) TutorRatings(ctx context.Context, tutorID string, limit int) ([]domain.Rating, error) {
	path := "/ratings/tutor/" + tutorID
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var ratings []domain.Rating
	if err := c.get(ctx, path, nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
