package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		wantErr  bool
	}{
		{"Plain endpoint", "localhost:9000", false},
		{"HTTP scheme stripped", "http://localhost:9000", false},
		{"HTTPS scheme stripped", "https://storage.example.com", false},
		{"Invalid endpoint", "http://bad endpoint", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Endpoint:  tt.endpoint,
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			}

			client, err := NewClient(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				// Connection is lazy, so construction succeeds without a
				// live server.
				assert.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}
