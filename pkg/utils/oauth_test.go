package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/bytesyntax/schedule-helper/internal/config"
)

func TestTokenStore_SaveLoadDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tokens")
	store := NewTokenStoreAt(dir, "test", zap.NewNop())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, token)

	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "access", RefreshToken: "refresh", Expiry: expiry}))

	info, err := os.Stat(filepath.Join(dir, "token-test.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(tokenFilePerms), info.Mode().Perm())

	token, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "access", token.AccessToken)
	assert.Equal(t, "refresh", token.RefreshToken)
	assert.True(t, token.Expiry.Equal(expiry))

	require.NoError(t, store.Delete())
	require.NoError(t, store.Delete())

	token, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestTokenStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token-dev.json"), []byte("{not json"), 0600))

	_, err := NewTokenStoreAt(dir, "dev", zap.NewNop()).Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token file")
}

func TestGetOAuthConfig(t *testing.T) {
	cfg, err := GetOAuthConfig(&config.OAuthClientConfig{
		Installed: config.OAuthInstalled{
			ClientID:                "client",
			ProjectID:               "project",
			AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
			TokenURI:                "https://oauth2.googleapis.com/token",
			AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
			ClientSecret:            "secret",
			RedirectURIs:            []string{"http://localhost"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "client", cfg.ClientID)
	assert.Equal(t, []string{ScopeSheetsReadonly}, cfg.Scopes)
	assert.Equal(t, "http://localhost:3000/oauth/callback", cfg.RedirectURL)
}

func TestMissingScopes(t *testing.T) {
	assert.NoError(t, missingScopes([]string{"openid", ScopeSheetsReadonly}))

	err := missingScopes([]string{"https://www.googleapis.com/auth/spreadsheets"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), ScopeSheetsReadonly)
}
