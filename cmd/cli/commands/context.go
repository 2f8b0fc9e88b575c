package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/internal/config"
	"github.com/bytesyntax/schedule-helper/pkg/clients/sheetsclient"
	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/db"
	"github.com/bytesyntax/schedule-helper/pkg/utils"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

// ErrNoDatabase is returned by commands that need database.url when it is not configured
var ErrNoDatabase = errors.New("database.url is not configured")

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg       *config.Config
	Database  db.Database // nil when no database is configured
	Directory schedule.StaticDirectory
	Footer    workbook.Footer
	Logger    *zap.Logger
	Ctx       context.Context
	Env       string

	sheetsClient *sheetsclient.Client
}

// Policy returns the lunch policy with the loaded employee directory
func (a *AppContext) Policy() schedule.Policy {
	return a.Cfg.Policy(a.Directory)
}

// RequireDatabase returns the database or ErrNoDatabase
func (a *AppContext) RequireDatabase() (db.Database, error) {
	if a.Database == nil {
		return nil, ErrNoDatabase
	}
	return a.Database, nil
}

// SheetsClient creates the Sheets client on first use, running the OAuth flow if needed
func (a *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if a.sheetsClient != nil {
		return a.sheetsClient, nil
	}

	a.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	tokens, err := utils.NewTokenStore(a.Env, a.Logger)
	if err != nil {
		return nil, err
	}

	a.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(a.Ctx, oauthCfg, tokens, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	a.sheetsClient = client
	return client, nil
}
