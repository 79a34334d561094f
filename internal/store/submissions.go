package store

import (
	"context"

	"nexus-backend-go/internal/models"
)

// StatusPatch is the only mutable part of an inbound submission.
type StatusPatch struct {
	Status Field[string] `json:"status"`
}

func (p StatusPatch) changes() Changes {
	var c Changes
	setField(&c, "status", p.Status)
	return c
}

func (s *Store) CreateDemoRequest(ctx context.Context, req *models.DemoRequest) error {
	now := s.timestamp()
	req.ID = newID()
	req.CreatedAt = now
	req.UpdatedAt = now
	return s.insert(ctx, `
INSERT INTO demo_requests (id, name, email, company, phone, message, status, created_at, updated_at)
VALUES (:id, :name, :email, :company, :phone, :message, :status, :created_at, :updated_at)`, req)
}

func (s *Store) DemoRequest(ctx context.Context, id string) (*models.DemoRequest, error) {
	return getRow[models.DemoRequest](ctx, s, `SELECT * FROM demo_requests WHERE id = ?`, id)
}

func (s *Store) ListDemoRequests(ctx context.Context) ([]models.DemoRequest, error) {
	return listRows[models.DemoRequest](ctx, s, `SELECT * FROM demo_requests ORDER BY created_at DESC`)
}

func (s *Store) UpdateDemoRequest(ctx context.Context, id string, patch StatusPatch) (*models.DemoRequest, error) {
	if err := s.update(ctx, "demo_requests", id, patch.changes()); err != nil {
		return nil, err
	}
	return s.DemoRequest(ctx, id)
}

func (s *Store) DeleteDemoRequest(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "demo_requests", id)
}

func (s *Store) CreateContact(ctx context.Context, contact *models.Contact) error {
	now := s.timestamp()
	contact.ID = newID()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	return s.insert(ctx, `
INSERT INTO contacts (id, name, email, subject, message, status, created_at, updated_at)
VALUES (:id, :name, :email, :subject, :message, :status, :created_at, :updated_at)`, contact)
}

func (s *Store) Contact(ctx context.Context, id string) (*models.Contact, error) {
	return getRow[models.Contact](ctx, s, `SELECT * FROM contacts WHERE id = ?`, id)
}

func (s *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return listRows[models.Contact](ctx, s, `SELECT * FROM contacts ORDER BY created_at DESC`)
}

func (s *Store) UpdateContact(ctx context.Context, id string, patch StatusPatch) (*models.Contact, error) {
	if err := s.update(ctx, "contacts", id, patch.changes()); err != nil {
		return nil, err
	}
	return s.Contact(ctx, id)
}

func (s *Store) DeleteContact(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "contacts", id)
}

type ApplicationFilter struct {
	Position string
	Status   string
}

func (s *Store) CreateJobApplication(ctx context.Context, app *models.JobApplication) error {
	now := s.timestamp()
	app.ID = newID()
	app.CreatedAt = now
	app.UpdatedAt = now
	return s.insert(ctx, `
INSERT INTO job_applications (id, name, email, address, position, resume_url, cover_letter, phone, status, created_at, updated_at)
VALUES (:id, :name, :email, :address, :position, :resume_url, :cover_letter, :phone, :status, :created_at, :updated_at)`, app)
}

func (s *Store) JobApplication(ctx context.Context, id string) (*models.JobApplication, error) {
	return getRow[models.JobApplication](ctx, s, `SELECT * FROM job_applications WHERE id = ?`, id)
}

func (s *Store) ListJobApplications(ctx context.Context, filter ApplicationFilter) ([]models.JobApplication, error) {
	var w where
	if filter.Position != "" {
		w.eq("position", filter.Position)
	}
	if filter.Status != "" {
		w.eq("status", filter.Status)
	}
	return listRows[models.JobApplication](ctx, s,
		`SELECT * FROM job_applications`+w.String()+` ORDER BY created_at DESC`, w.args...)
}

func (s *Store) UpdateJobApplication(ctx context.Context, id string, patch StatusPatch) (*models.JobApplication, error) {
	if err := s.update(ctx, "job_applications", id, patch.changes()); err != nil {
		return nil, err
	}
	return s.JobApplication(ctx, id)
}

func (s *Store) DeleteJobApplication(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "job_applications", id)
}
