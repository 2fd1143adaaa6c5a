package config

import (
	"flag"
	"os"
	"strings"
)

// filterArgs returns the subset of args that belongs to the allowed flags,
// keeping both "-f value" and "-f=value" forms. Unknown arguments (including
// the -test.* flags injected by `go test`) are dropped so that parseFlags can
// safely parse a command line it does not fully own.
func filterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			if _, ok := allowed[strings.SplitN(arg, "=", 2)[0]]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-m string   document store connection string
//	-d string   database name
//	-t string   collection name
//	-l int      default list page size
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000")
//	-f string   S3 key prefix for uploaded images
//
// The -c/-config flags are registered too so that parsing does not reject
// them; their value is consumed earlier by parseJson.
func parseFlags(config *Config) {
	args := filterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-t", "-l", "-u", "-p", "-b", "-g", "-e", "-f", "-c", "-config"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "document store connection string")
	fs.StringVar(&config.MongoDatabase, "d", config.MongoDatabase, "database name")
	fs.StringVar(&config.MongoCollection, "t", config.MongoCollection, "collection name")
	fs.Int64Var(&config.PageSize, "l", config.PageSize, "default list page size")

	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3Folder, "f", config.S3Folder, "S3 key prefix for uploaded images")

	var jsonPath string
	fs.StringVar(&jsonPath, "config", "", "path to JSON config file")
	fs.StringVar(&jsonPath, "c", "", "path to JSON config file (short)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
