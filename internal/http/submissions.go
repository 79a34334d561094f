package httpapi

import (
	"context"

	"nexus-backend-go/internal/models"
	"nexus-backend-go/internal/store"
)

type demoRequestInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

func (s *Server) getDemoRequests(ctx context.Context, req actionRequest) (any, error) {
	if req.ID != "" {
		return s.Store.DemoRequest(ctx, req.ID)
	}
	return s.Store.ListDemoRequests(ctx)
}

func (s *Server) createDemoRequest(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[demoRequestInput](req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(requiredField{"name", in.Name}, requiredField{"email", in.Email}); err != nil {
		return nil, err
	}
	demo := &models.DemoRequest{
		Name:    in.Name,
		Email:   in.Email,
		Company: in.Company,
		Phone:   in.Phone,
		Message: in.Message,
		Status:  stringOr(in.Status, models.StatusPending),
	}
	if err := s.Store.CreateDemoRequest(ctx, demo); err != nil {
		return nil, err
	}
	return demo, nil
}

func (s *Server) updateDemoRequest(ctx context.Context, req actionRequest) (any, error) {
	patch, err := decodeBody[store.StatusPatch](req)
	if err != nil {
		return nil, err
	}
	if err := requirePatched(patchedField{"status", patch.Status}); err != nil {
		return nil, err
	}
	return s.Store.UpdateDemoRequest(ctx, req.ID, patch)
}

func (s *Server) deleteDemoRequest(ctx context.Context, req actionRequest) (any, error) {
	if err := s.Store.DeleteDemoRequest(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleted("Demo request"), nil
}

type contactInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
	Status  *string `json:"status"`
}

func (s *Server) getContacts(ctx context.Context, req actionRequest) (any, error) {
	if req.ID != "" {
		return s.Store.Contact(ctx, req.ID)
	}
	return s.Store.ListContacts(ctx)
}

func (s *Server) createContact(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[contactInput](req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(
		requiredField{"name", in.Name},
		requiredField{"email", in.Email},
		requiredField{"message", in.Message},
	); err != nil {
		return nil, err
	}
	contact := &models.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  stringOr(in.Status, models.StatusPending),
	}
	if err := s.Store.CreateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *Server) updateContact(ctx context.Context, req actionRequest) (any, error) {
	patch, err := decodeBody[store.StatusPatch](req)
	if err != nil {
		return nil, err
	}
	if err := requirePatched(patchedField{"status", patch.Status}); err != nil {
		return nil, err
	}
	return s.Store.UpdateContact(ctx, req.ID, patch)
}

func (s *Server) deleteContact(ctx context.Context, req actionRequest) (any, error) {
	if err := s.Store.DeleteContact(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleted("Contact"), nil
}

type jobApplicationInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Address     *string `json:"address"`
	Position    string  `json:"position"`
	ResumeURL   *string `json:"resumeUrl"`
	CoverLetter *string `json:"coverLetter"`
	Phone       *string `json:"phone"`
	Status      *string `json:"status"`
}

func (s *Server) getJobApplications(ctx context.Context, req actionRequest) (any, error) {
	if req.ID != "" {
		return s.Store.JobApplication(ctx, req.ID)
	}
	return s.Store.ListJobApplications(ctx, store.ApplicationFilter{})
}

func (s *Server) getApplicationsByPosition(ctx context.Context, req actionRequest) (any, error) {
	return s.Store.ListJobApplications(ctx, store.ApplicationFilter{
		Position: req.Query.Get("position"),
		Status:   req.Query.Get("status"),
	})
}

func (s *Server) createJobApplication(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[jobApplicationInput](req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(
		requiredField{"name", in.Name},
		requiredField{"email", in.Email},
		requiredField{"position", in.Position},
	); err != nil {
		return nil, err
	}
	app := &models.JobApplication{
		Name:        in.Name,
		Email:       in.Email,
		Address:     in.Address,
		Position:    in.Position,
		ResumeURL:   in.ResumeURL,
		CoverLetter: in.CoverLetter,
		Phone:       in.Phone,
		Status:      stringOr(in.Status, models.StatusPending),
	}
	if err := s.Store.CreateJobApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *Server) updateJobApplication(ctx context.Context, req actionRequest) (any, error) {
	patch, err := decodeBody[store.StatusPatch](req)
	if err != nil {
		return nil, err
	}
	if err := requirePatched(patchedField{"status", patch.Status}); err != nil {
		return nil, err
	}
	return s.Store.UpdateJobApplication(ctx, req.ID, patch)
}

func (s *Server) deleteJobApplication(ctx context.Context, req actionRequest) (any, error) {
	if err := s.Store.DeleteJobApplication(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleted("Job application"), nil
}
