package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Cache.Path != "./playcrypt.db" {
			t.Errorf("expected cache path ./playcrypt.db, got %s", config.Cache.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Encoding.FirstIndex != 5 || config.Encoding.SecondIndex != 8 {
			t.Errorf("expected default indices 5 and 8, got %d and %d",
				config.Encoding.FirstIndex, config.Encoding.SecondIndex)
		}

		if config.Credentials.Spotify.ClientID != "your_spotify_client_id" {
			t.Errorf("expected placeholder client_id, got %s", config.Credentials.Spotify.ClientID)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Cache.Path != DefaultConfig().Cache.Path {
			t.Errorf("created config cache path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[credentials.spotify]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:9090/callback"

[cache]
path = "/custom/cache.db"
max_open_conns = 20
max_idle_conns = 10

[dataset]
path = "/data/tracks.csv"
url = "https://example.com/tracks.csv"

[encoding]
first_index = 2
second_index = 13

[server]
host = "0.0.0.0"
port = 9090
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Cache.Path != "/custom/cache.db" {
			t.Errorf("expected cache path /custom/cache.db, got %s", config.Cache.Path)
		}
		if config.Dataset.URL != "https://example.com/tracks.csv" {
			t.Errorf("unexpected dataset URL %s", config.Dataset.URL)
		}
		if config.Encoding.FirstIndex != 2 || config.Encoding.SecondIndex != 13 {
			t.Errorf("unexpected indices %d, %d", config.Encoding.FirstIndex, config.Encoding.SecondIndex)
		}
		if config.Server.Port != 9090 {
			t.Errorf("expected server port 9090, got %d", config.Server.Port)
		}
	})

	t.Run("SaveConfig round trips", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		config := DefaultConfig()
		config.Credentials.Spotify.ClientID = "saved_id"
		config.Encoding.FirstIndex = 3

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to reload config: %v", err)
		}
		if loaded.Credentials.Spotify.ClientID != "saved_id" {
			t.Errorf("expected saved_id, got %s", loaded.Credentials.Spotify.ClientID)
		}
		if loaded.Encoding.FirstIndex != 3 {
			t.Errorf("expected first index 3, got %d", loaded.Encoding.FirstIndex)
		}
	})
}

func TestSpotifyConfigToken(t *testing.T) {
	t.Run("empty credentials yield nil token", func(t *testing.T) {
		var c SpotifyConfig
		if c.Token() != nil {
			t.Error("expected nil token")
		}
	})

	t.Run("Update then Token round trips", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)
		token := &oauth2.Token{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Expiry:       expiry,
		}

		var c SpotifyConfig
		if err := c.Update(token); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got := c.Token()
		if got == nil {
			t.Fatal("expected token")
		}
		if got.AccessToken != "access" || got.RefreshToken != "refresh" {
			t.Errorf("unexpected token %+v", got)
		}
		if !got.Expiry.Equal(expiry) {
			t.Errorf("expected expiry %v, got %v", expiry, got.Expiry)
		}
	})

	t.Run("Update keeps previous refresh token", func(t *testing.T) {
		c := SpotifyConfig{RefreshToken: "old_refresh"}
		if err := c.Update(&oauth2.Token{AccessToken: "new_access"}); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if c.RefreshToken != "old_refresh" {
			t.Errorf("refresh token should be preserved, got %s", c.RefreshToken)
		}
	})

	t.Run("Update rejects nil", func(t *testing.T) {
		var c SpotifyConfig
		if err := c.Update(nil); err == nil {
			t.Error("expected error for nil token")
		}
	})
}
