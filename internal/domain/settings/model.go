package settings

import (
	"github.com/digitalnexcode/invoiceflow/internal/types"
)

// Settings holds a user's issuer profile and payment provider keys. The
// company details and logo are stamped onto every document the user
// creates; the Yoco key pairs feed the payment link collaborator.
type Settings struct {
	ID             string `db:"id" json:"id"`
	UserID         string `db:"user_id" json:"user_id"`
	CompanyDetails string `db:"company_details" json:"company_details,omitempty"`
	Logo           string `db:"logo" json:"logo,omitempty"`

	YocoPublicKey     string `db:"yoco_public_key" json:"yoco_public_key,omitempty"`
	YocoSecretKey     string `db:"yoco_secret_key" json:"-"`
	YocoTestPublicKey string `db:"yoco_test_public_key" json:"yoco_test_public_key,omitempty"`
	YocoTestSecretKey string `db:"yoco_test_secret_key" json:"-"`

	types.BaseModel
}

// Keys returns the active public/secret key pair for the given mode
func (s *Settings) Keys(testMode bool) (publicKey string, secretKey string) {
	if testMode {
		return s.YocoTestPublicKey, s.YocoTestSecretKey
	}
	return s.YocoPublicKey, s.YocoSecretKey
}
