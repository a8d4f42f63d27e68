package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		serverAddress string
		baseURL       string
		sessionSecret string
		cookieName    string
		shouldError   bool
	}

	tests := []struct {
		name    string
		envVars map[string]string
		flags   []string
		want    want
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			flags:   []string{},
			want: want{
				serverAddress: "localhost:8080",
				baseURL:       "http://localhost:8080",
				sessionSecret: "tinyapp-dev-secret",
				cookieName:    "session",
			},
		},
		{
			name: "environment variables only",
			envVars: map[string]string{
				"SERVER_ADDRESS":      "localhost:8888",
				"BASE_URL":            "http://example.com",
				"SESSION_SECRET":      "env-secret",
				"SESSION_COOKIE_NAME": "sid",
			},
			flags: []string{},
			want: want{
				serverAddress: "localhost:8888",
				baseURL:       "http://example.com",
				sessionSecret: "env-secret",
				cookieName:    "sid",
			},
		},
		{
			name:    "flags only",
			envVars: map[string]string{},
			flags:   []string{"-a", "localhost:9999", "-b", "http://myserver.com", "-s", "flag-secret"},
			want: want{
				serverAddress: "localhost:9999",
				baseURL:       "http://myserver.com",
				sessionSecret: "flag-secret",
				cookieName:    "session",
			},
		},
		{
			name: "environment variables override flags",
			envVars: map[string]string{
				"SERVER_ADDRESS": "env-server:7777",
				"BASE_URL":       "http://env-url.com",
				"SESSION_SECRET": "env-secret",
			},
			flags: []string{"-a", "flag-server:8888", "-b", "http://flag-url.com", "-s", "flag-secret"},
			want: want{
				serverAddress: "env-server:7777",
				baseURL:       "http://env-url.com",
				sessionSecret: "env-secret",
				cookieName:    "session",
			},
		},
		{
			name: "invalid server address",
			envVars: map[string]string{
				"SERVER_ADDRESS": "not a host port",
			},
			flags: []string{},
			want: want{
				shouldError: true,
			},
		},
		{
			name: "invalid base URL",
			envVars: map[string]string{
				"BASE_URL": "not-a-url",
			},
			flags: []string{},
			want: want{
				shouldError: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := ParseFlags()

			if tt.want.shouldError {
				require.Error(t, err, "expected error but got none")
			} else {
				require.NoError(t, err, "unexpected error")

				assert.Equal(t, tt.want.serverAddress, cfg.ServerAddress,
					"server address mismatch")
				assert.Equal(t, tt.want.baseURL, cfg.BaseURL,
					"base URL mismatch")
				assert.Equal(t, tt.want.sessionSecret, cfg.SessionSecret,
					"session secret mismatch")
				assert.Equal(t, tt.want.cookieName, cfg.SessionCookieName,
					"cookie name mismatch")
			}
		})
	}
}
