package config

import (
	"os"
	"strconv"

	// Loads a .env file into the process environment before parseEnv runs.
	_ "github.com/joho/godotenv/autoload"
)

// parseEnv overlays Config with values from environment variables.
//
// Recognized variables:
//
//	SERVER_ADDRESS    HTTP bind address (e.g., ":8080")
//	MONGO_URI         document store connection string
//	MONGO_DATABASE    database name
//	MONGO_COLLECTION  collection name
//	PAGE_SIZE         default list page size (positive integer)
//	S3_ACCESS_KEY     object storage access key
//	S3_SECRET_KEY     object storage secret key
//	S3_BUCKET         object storage bucket
//	S3_REGION         object storage region
//	S3_BASE_ENDPOINT  object storage base endpoint (e.g., "http://127.0.0.1:9000")
//	S3_FOLDER         key prefix for uploaded images
//
// Unset variables leave the corresponding field untouched. A non-numeric
// PAGE_SIZE is ignored rather than treated as fatal.
func parseEnv(config *Config) {
	setIfPresent := func(name string, target *string) {
		if v, ok := os.LookupEnv(name); ok {
			*target = v
		}
	}

	setIfPresent("SERVER_ADDRESS", &config.Address)
	setIfPresent("MONGO_URI", &config.MongoURI)
	setIfPresent("MONGO_DATABASE", &config.MongoDatabase)
	setIfPresent("MONGO_COLLECTION", &config.MongoCollection)
	setIfPresent("S3_ACCESS_KEY", &config.S3AccessKey)
	setIfPresent("S3_SECRET_KEY", &config.S3SecretKey)
	setIfPresent("S3_BUCKET", &config.S3Bucket)
	setIfPresent("S3_REGION", &config.S3Region)
	setIfPresent("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	setIfPresent("S3_FOLDER", &config.S3Folder)

	if v, ok := os.LookupEnv("PAGE_SIZE"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			config.PageSize = n
		}
	}
}
