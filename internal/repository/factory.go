package repository

import (
	"github.com/digitalnexcode/invoiceflow/internal/domain/client"
	"github.com/digitalnexcode/invoiceflow/internal/domain/document"
	"github.com/digitalnexcode/invoiceflow/internal/domain/settings"
	"github.com/digitalnexcode/invoiceflow/internal/logger"
	"github.com/digitalnexcode/invoiceflow/internal/postgres"
	postgresRepo "github.com/digitalnexcode/invoiceflow/internal/repository/postgres"
)

func NewDocumentRepository(db *postgres.DB, logger *logger.Logger) document.Repository {
	return postgresRepo.NewDocumentRepository(db, logger)
}

func NewSettingsRepository(db *postgres.DB, logger *logger.Logger) settings.Repository {
	return postgresRepo.NewSettingsRepository(db, logger)
}

func NewClientRepository(db *postgres.DB, logger *logger.Logger) client.Repository {
	return postgresRepo.NewClientRepository(db, logger)
}
