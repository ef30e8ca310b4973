package ciutil

import "log/slog"

// GetTestMongoURI returns the URI of an externally managed MongoDB server for
// integration tests, checking COMPANIES_TEST_MONGO_URI, COMPANIES_DATABASE_URI
// and MONGODB_URI in that order. An empty result means tests should start
// their own server.
func GetTestMongoURI(logger *slog.Logger) string {
	uri := GetEnvWithFallbacks([]string{EnvTestMongoURI, EnvDatabaseURI, EnvMongoURI}, "", logger)
	if uri != "" && logger != nil {
		logger.Info("using MongoDB from environment", "uri", MaskSensitiveValue(uri))
	}
	return uri
}
