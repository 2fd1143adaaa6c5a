// Package config handles configuration for the scrapbook server,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

// Config holds runtime settings for the scrapbook server.
//
// Fields:
//   - Address: bind address for the public HTTP endpoint.
//   - MongoURI: connection string for the document store.
//   - MongoDatabase / MongoCollection: database and collection names.
//   - PageSize: default number of items per list page.
//   - S3AccessKey / S3SecretKey: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint / S3Folder: object storage settings.
type Config struct {
	Address         string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	PageSize        int64
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	S3Folder        string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Address = ":8080"
	c.MongoURI = "mongodb://127.0.0.1:27017"
	c.MongoDatabase = "scrapbook"
	c.MongoCollection = "todos"
	c.PageSize = 20
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "scrapbook"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"
	c.S3Folder = "todos"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
