package sheetsclient

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/bytesyntax/schedule-helper/internal/config"
	"github.com/bytesyntax/schedule-helper/pkg/utils"
)

// Client wraps the Google Sheets API client
type Client struct {
	service *sheets.Service
	logger  *zap.Logger
}

// NewClient creates a read-only Sheets client, running the OAuth flow if the token store has no valid token
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig, tokens *utils.TokenStore, logger *zap.Logger) (*Client, error) {
	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth config: %w", err)
	}

	token, err := tokens.Token(ctx, oauthConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth token: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{service: service, logger: logger}, nil
}

// NewClientWithService wraps an existing service, e.g. one pointed at a test endpoint
func NewClientWithService(service *sheets.Service, logger *zap.Logger) *Client {
	return &Client{service: service, logger: logger}
}

// GetValues reads the formatted values of a spreadsheet range
func (c *Client) GetValues(ctx context.Context, spreadsheetID, sheetRange string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, sheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get values: %w", err)
	}

	c.logger.Debug("Read sheet range",
		zap.String("spreadsheet_id", spreadsheetID),
		zap.String("range", sheetRange),
		zap.Int("rows", len(resp.Values)))

	return resp.Values, nil
}
