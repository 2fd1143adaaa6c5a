package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-m", "mongodb://db:27017", "-d", "memories", "-t", "items",
			"-l", "50", "-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint", "-f", "images",
		}, expectPanic: false,
			expected: &Config{
				Address:         "127.0.0.1:9090",
				MongoURI:        "mongodb://db:27017",
				MongoDatabase:   "memories",
				MongoCollection: "items",
				PageSize:        50,
				S3AccessKey:     "user",
				S3SecretKey:     "password",
				S3Bucket:        "bucket",
				S3Region:        "us-west-1",
				S3BaseEndpoint:  "http://endpoint",
				S3Folder:        "images",
			}},
		{name: "Test2 non-numeric page size panics", args: []string{"cmd", "-l", "not-a-number"},
			expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestFilterArgs(t *testing.T) {
	args := []string{"-a", ":9090", "-test.v", "-unknown", "value", "-b=bucket", "-x=1"}
	got := filterArgs(args, []string{"-a", "-b"})
	assert.Equal(t, []string{"-a", ":9090", "-b=bucket"}, got)
}
