package env

import "os"

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	Test        Environment = "test"
)

const key = "ENVIRONMENT"

func Get() Environment {
	environment, ok := os.LookupEnv(key)
	if environment == "" || !ok {
		panic("No environment var is set")
	}

	switch Environment(environment) {
	case Production:
		return Production
	case Development:
		return Development
	case Test:
		return Test
	default:
		panic("Invalid environment is set: " + environment)
	}
}
