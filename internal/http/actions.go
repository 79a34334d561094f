package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"nexus-backend-go/internal/services"
	"nexus-backend-go/internal/store"
)

// Action is the value of the action query parameter.
type Action string

const (
	ActionGetHero                   Action = "get-hero"
	ActionGetProducts               Action = "get-products"
	ActionGetProductCategories      Action = "get-product-categories"
	ActionGetTestimonials           Action = "get-testimonials"
	ActionGetWhyChooseUs            Action = "get-why-choose-us"
	ActionGetBookDemo               Action = "get-book-demo"
	ActionGetDemoRequests           Action = "get-demo-requests"
	ActionGetSettings               Action = "get-settings"
	ActionGetStats                  Action = "get-stats"
	ActionGetContacts               Action = "get-contacts"
	ActionGetJobApplications        Action = "get-job-applications"
	ActionGetApplicationsByPosition Action = "get-applications-by-position"

	ActionCreateHero           Action = "create-hero"
	ActionCreateProduct        Action = "create-product"
	ActionCreateTestimonial    Action = "create-testimonial"
	ActionCreateWhyChooseUs    Action = "create-why-choose-us"
	ActionCreateBookDemo       Action = "create-book-demo"
	ActionCreateDemoRequest    Action = "create-demo-request"
	ActionCreateContact        Action = "create-contact"
	ActionCreateJobApplication Action = "create-job-application"
	ActionCreateSetting        Action = "create-setting"

	ActionUpdateHero           Action = "update-hero"
	ActionUpdateProduct        Action = "update-product"
	ActionUpdateTestimonial    Action = "update-testimonial"
	ActionUpdateWhyChooseUs    Action = "update-why-choose-us"
	ActionUpdateBookDemo       Action = "update-book-demo"
	ActionUpdateDemoRequest    Action = "update-demo-request"
	ActionUpdateContact        Action = "update-contact"
	ActionUpdateJobApplication Action = "update-job-application"
	ActionUpdateSetting        Action = "update-setting"

	ActionDeleteHero           Action = "delete-hero"
	ActionDeleteProduct        Action = "delete-product"
	ActionDeleteTestimonial    Action = "delete-testimonial"
	ActionDeleteWhyChooseUs    Action = "delete-why-choose-us"
	ActionDeleteBookDemo       Action = "delete-book-demo"
	ActionDeleteDemoRequest    Action = "delete-demo-request"
	ActionDeleteContact        Action = "delete-contact"
	ActionDeleteJobApplication Action = "delete-job-application"
	ActionDeleteSetting        Action = "delete-setting"

	ActionLogin     Action = "login"
	ActionAddAdmin  Action = "add-admin"
	ActionGetAdmins Action = "get-admins"
)

const maxBodyBytes = 1 << 20

type actionRequest struct {
	ID    string
	Query url.Values
	Body  []byte
}

type actionFunc func(ctx context.Context, req actionRequest) (any, error)

type actionRoute struct {
	handle actionFunc
	// open routes skip the admin guard.
	open bool
}

type actionTable map[Action]actionRoute

func (s *Server) functionActions() map[string]actionTable {
	return map[string]actionTable{
		http.MethodGet: {
			ActionGetHero:                   {handle: s.getHero, open: true},
			ActionGetProducts:               {handle: s.getProducts, open: true},
			ActionGetProductCategories:      {handle: s.getProductCategories, open: true},
			ActionGetTestimonials:           {handle: s.getTestimonials, open: true},
			ActionGetWhyChooseUs:            {handle: s.getWhyChooseUs, open: true},
			ActionGetBookDemo:               {handle: s.getBookDemo, open: true},
			ActionGetDemoRequests:           {handle: s.getDemoRequests, open: true},
			ActionGetSettings:               {handle: s.getSettings, open: true},
			ActionGetStats:                  {handle: s.getStats, open: true},
			ActionGetContacts:               {handle: s.getContacts, open: true},
			ActionGetJobApplications:        {handle: s.getJobApplications, open: true},
			ActionGetApplicationsByPosition: {handle: s.getApplicationsByPosition, open: true},
		},
		http.MethodPost: {
			ActionCreateHero:           {handle: s.createHero},
			ActionCreateProduct:        {handle: s.createProduct},
			ActionCreateTestimonial:    {handle: s.createTestimonial},
			ActionCreateWhyChooseUs:    {handle: s.createWhyChooseUs},
			ActionCreateBookDemo:       {handle: s.createBookDemo},
			ActionCreateDemoRequest:    {handle: s.createDemoRequest, open: true},
			ActionCreateContact:        {handle: s.createContact, open: true},
			ActionCreateJobApplication: {handle: s.createJobApplication, open: true},
			ActionCreateSetting:        {handle: s.createSetting},
		},
		http.MethodPut: {
			ActionUpdateHero:           {handle: s.updateHero},
			ActionUpdateProduct:        {handle: s.updateProduct},
			ActionUpdateTestimonial:    {handle: s.updateTestimonial},
			ActionUpdateWhyChooseUs:    {handle: s.updateWhyChooseUs},
			ActionUpdateBookDemo:       {handle: s.updateBookDemo},
			ActionUpdateDemoRequest:    {handle: s.updateDemoRequest},
			ActionUpdateContact:        {handle: s.updateContact},
			ActionUpdateJobApplication: {handle: s.updateJobApplication},
			ActionUpdateSetting:        {handle: s.updateSetting},
		},
		http.MethodDelete: {
			ActionDeleteHero:           {handle: s.deleteHero},
			ActionDeleteProduct:        {handle: s.deleteProduct},
			ActionDeleteTestimonial:    {handle: s.deleteTestimonial},
			ActionDeleteWhyChooseUs:    {handle: s.deleteWhyChooseUs},
			ActionDeleteBookDemo:       {handle: s.deleteBookDemo},
			ActionDeleteDemoRequest:    {handle: s.deleteDemoRequest},
			ActionDeleteContact:        {handle: s.deleteContact},
			ActionDeleteJobApplication: {handle: s.deleteJobApplication},
			ActionDeleteSetting:        {handle: s.deleteSetting},
		},
	}
}

func (s *Server) authActions() map[string]actionTable {
	return map[string]actionTable{
		http.MethodGet: {
			ActionGetAdmins: {handle: s.getAdmins},
		},
		http.MethodPost: {
			ActionLogin:    {handle: s.login, open: true},
			ActionAddAdmin: {handle: s.addAdmin},
		},
	}
}

// dispatch serves one action-multiplexed endpoint.
func (s *Server) dispatch(tables map[string]actionTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		action := Action(query.Get("action"))
		id := query.Get("id")

		if (r.Method == http.MethodPut || r.Method == http.MethodDelete) && id == "" {
			WriteError(w, http.StatusBadRequest, "ID is required")
			return
		}
		route, ok := tables[r.Method][action]
		if !ok {
			WriteError(w, http.StatusBadRequest, "Invalid action")
			return
		}
		if !route.open && s.Config.AuthRequired {
			authed, ok := authenticate(s.Tokens, r, bearerToken(r))
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			r = authed
		}

		req := actionRequest{ID: id, Query: query}
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			if err != nil {
				WriteError(w, http.StatusBadRequest, "Invalid payload")
				return
			}
			req.Body = body
		}

		result, err := route.handle(r.Context(), req)
		if err != nil {
			s.writeFailure(w, r, action, err)
			return
		}
		WriteJSON(w, http.StatusOK, result)
	}
}

func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, action Action, err error) {
	var serviceErr services.ServiceError
	switch {
	case errors.As(err, &serviceErr):
		WriteError(w, serviceErr.Status, serviceErr.Message)
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, store.ErrConflict):
		WriteError(w, http.StatusConflict, "Record already exists")
	default:
		s.Logger.Error("action failed",
			zap.String("method", r.Method),
			zap.String("action", string(action)),
			zap.String("admin_id", CurrentAdminID(r)),
			zap.Error(err),
		)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeBody[T any](req actionRequest) (T, error) {
	var payload T
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return payload, services.ErrBadRequest("Invalid payload")
	}
	return payload, nil
}

type requiredField struct {
	name  string
	value string
}

func requireFields(fields ...requiredField) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return services.ErrBadRequest(f.name + " is required")
		}
	}
	return nil
}

type patchedField struct {
	name  string
	field store.Field[string]
}

// requirePatched rejects a patch that blanks a required field.
func requirePatched(fields ...patchedField) error {
	for _, f := range fields {
		if f.field.Set && strings.TrimSpace(f.field.Value) == "" {
			return services.ErrBadRequest(f.name + " is required")
		}
	}
	return nil
}

func deleted(what string) MessageResponse {
	return MessageResponse{Message: what + " deleted"}
}
