package service

import (
	"testing"

	"github.com/digitalnexcode/invoiceflow/internal/api/dto"
	ierr "github.com/digitalnexcode/invoiceflow/internal/errors"
	"github.com/digitalnexcode/invoiceflow/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ClientServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ClientService
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceSuite))
}

func (s *ClientServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewClientService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DocumentRepo: stores.DocumentRepo,
		SettingsRepo: stores.SettingsRepo,
		ClientRepo:   stores.ClientRepo,
	})
}

func (s *ClientServiceSuite) createClient() *dto.ClientResponse {
	resp, err := s.service.CreateClient(s.GetContext(), &dto.CreateClientRequest{
		Name:    "Acme Ltd",
		Email:   "billing@acme.test",
		Phone:   "+27 11 000 0000",
		Company: "Acme",
	})
	s.Require().NoError(err)
	return resp
}

func (s *ClientServiceSuite) TestCreateClient() {
	resp := s.createClient()

	s.NotEmpty(resp.ID)
	s.Equal("Acme Ltd", resp.Name)
	s.Equal(s.GetUserID(), resp.CreatedBy)

	stored, err := s.GetStores().ClientRepo.GetByEmail(s.GetContext(), "billing@acme.test")
	s.NoError(err)
	s.Equal(resp.ID, stored.ID)
}

func (s *ClientServiceSuite) TestCreateClientRejectsDuplicateEmail() {
	s.createClient()

	_, err := s.service.CreateClient(s.GetContext(), &dto.CreateClientRequest{
		Name:  "Acme Clone",
		Email: "billing@acme.test",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *ClientServiceSuite) TestCreateClientRequiresEmail() {
	_, err := s.service.CreateClient(s.GetContext(), &dto.CreateClientRequest{
		Name: "No Email",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ClientServiceSuite) TestUpdateClient() {
	created := s.createClient()

	updated, err := s.service.UpdateClient(s.GetContext(), created.ID, &dto.UpdateClientRequest{
		Name:    "Acme Holdings",
		Email:   "accounts@acme.test",
		Company: "Acme Group",
	})
	s.NoError(err)
	s.Equal(created.ID, updated.ID)
	s.Equal("Acme Holdings", updated.Name)

	// the entry moved to the new email key
	stored, err := s.GetStores().ClientRepo.GetByEmail(s.GetContext(), "accounts@acme.test")
	s.NoError(err)
	s.Equal(created.ID, stored.ID)
	s.Equal("Acme Group", stored.Company)
}

func (s *ClientServiceSuite) TestUpdateMissingClient() {
	_, err := s.service.UpdateClient(s.GetContext(), "client_missing", &dto.UpdateClientRequest{
		Name:  "Ghost",
		Email: "ghost@nowhere.test",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ClientServiceSuite) TestListAfterCreate() {
	s.createClient()

	resp, err := s.service.ListClients(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Total)
	s.Equal("Acme Ltd", resp.Items[0].Name)
}
