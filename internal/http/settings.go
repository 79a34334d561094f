package httpapi

import (
	"context"

	"nexus-backend-go/internal/models"
	"nexus-backend-go/internal/services"
	"nexus-backend-go/internal/store"
)

type settingInput struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description"`
}

func (s *Server) getSettings(ctx context.Context, req actionRequest) (any, error) {
	if key := req.Query.Get("key"); key != "" {
		return s.Store.SettingByKey(ctx, key)
	}
	return s.Store.ListSettings(ctx)
}

// createSetting upserts by key.
func (s *Server) createSetting(ctx context.Context, req actionRequest) (any, error) {
	in, err := decodeBody[settingInput](req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(requiredField{"key", in.Key}, requiredField{"value", in.Value}); err != nil {
		return nil, err
	}
	return s.Store.UpsertSetting(ctx, &models.SiteSetting{
		Key:         in.Key,
		Value:       in.Value,
		Description: in.Description,
	})
}

func (s *Server) updateSetting(ctx context.Context, req actionRequest) (any, error) {
	patch, err := decodeBody[store.SettingPatch](req)
	if err != nil {
		return nil, err
	}
	if err := requirePatched(patchedField{"value", patch.Value}); err != nil {
		return nil, err
	}
	return s.Store.UpdateSetting(ctx, req.ID, patch)
}

func (s *Server) deleteSetting(ctx context.Context, req actionRequest) (any, error) {
	if err := s.Store.DeleteSetting(ctx, req.ID); err != nil {
		return nil, err
	}
	return deleted("Setting"), nil
}

func (s *Server) getStats(ctx context.Context, _ actionRequest) (any, error) {
	return services.DashboardStats(ctx, s.Store)
}
