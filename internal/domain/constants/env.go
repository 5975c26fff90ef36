package constants

// Deployment environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
