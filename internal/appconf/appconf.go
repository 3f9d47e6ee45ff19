package appconf

// Environment is the operating environment of the application.
type Environment int

const (
	Development Environment = iota
	Test
	Staging
	Production
)

// Config holds the server-level configuration settings for the application:
// the port to listen on, the operating environment, the set of valid API
// keys, and the per-key rate limit (requests per second; 0 disables access,
// negative values disable limiting).
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
}

// EnvFlagToEnvironment converts an environment flag value (e.g. "development")
// into an Environment. Unknown values map to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "staging":
		return Staging
	case "production":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Staging:
		return "staging"
	case Production:
		return "production"
	default:
		return "development"
	}
}
