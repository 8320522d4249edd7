package dto

import (
	"context"

	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/digitalnexcode/invoiceflow/internal/validator"
)

type UpdateSettingsRequest struct {
	CompanyDetails    string `json:"company_details"`
	Logo              string `json:"logo"`
	YocoPublicKey     string `json:"yoco_public_key"`
	YocoSecretKey     string `json:"yoco_secret_key"`
	YocoTestPublicKey string `json:"yoco_test_public_key"`
	YocoTestSecretKey string `json:"yoco_test_secret_key"`
}

// SettingsResponse never echoes secret keys; it reports only whether a
// key pair is on file.
type SettingsResponse struct {
	*settings.Settings
	HasLiveKeys bool `json:"has_live_keys"`
	HasTestKeys bool `json:"has_test_keys"`
}

func NewSettingsResponse(s *settings.Settings) *SettingsResponse {
	return &SettingsResponse{
		Settings:    s,
		HasLiveKeys: s.YocoSecretKey != "",
		HasTestKeys: s.YocoTestSecretKey != "",
	}
}

func (r *UpdateSettingsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateSettingsRequest) ToSettings(ctx context.Context) *settings.Settings {
	return &settings.Settings{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SETTINGS),
		UserID:            types.GetUserID(ctx),
		CompanyDetails:    r.CompanyDetails,
		Logo:              r.Logo,
		YocoPublicKey:     r.YocoPublicKey,
		YocoSecretKey:     r.YocoSecretKey,
		YocoTestPublicKey: r.YocoTestPublicKey,
		YocoTestSecretKey: r.YocoTestSecretKey,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}
