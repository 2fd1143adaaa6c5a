package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv_OverlaysPresentVariables(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("MONGO_URI", "mongodb://env:27017")
	t.Setenv("MONGO_DATABASE", "envdb")
	t.Setenv("MONGO_COLLECTION", "envcoll")
	t.Setenv("PAGE_SIZE", "35")
	t.Setenv("S3_ACCESS_KEY", "envuser")
	t.Setenv("S3_SECRET_KEY", "envpassword")
	t.Setenv("S3_BUCKET", "envbucket")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("S3_BASE_ENDPOINT", "http://env:9000")
	t.Setenv("S3_FOLDER", "envfolder")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9999", cfg.Address)
	assert.Equal(t, "mongodb://env:27017", cfg.MongoURI)
	assert.Equal(t, "envdb", cfg.MongoDatabase)
	assert.Equal(t, "envcoll", cfg.MongoCollection)
	assert.Equal(t, int64(35), cfg.PageSize)
	assert.Equal(t, "envuser", cfg.S3AccessKey)
	assert.Equal(t, "envpassword", cfg.S3SecretKey)
	assert.Equal(t, "envbucket", cfg.S3Bucket)
	assert.Equal(t, "eu-west-1", cfg.S3Region)
	assert.Equal(t, "http://env:9000", cfg.S3BaseEndpoint)
	assert.Equal(t, "envfolder", cfg.S3Folder)
}

func Test_parseEnv_IgnoresUnsetAndInvalid(t *testing.T) {
	t.Setenv("PAGE_SIZE", "not-a-number")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, int64(20), cfg.PageSize)
}
