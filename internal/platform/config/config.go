package config

import "os"

// Backend selects the repository implementation wired at startup.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendMongo  Backend = "mongo"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	Backend       Backend
	MongoURI      string
	MongoDatabase string
}

// FromEnv builds a Server config from environment variables so main stays
// lean. Defaults favor local development.
func FromEnv() Server {
	addr := os.Getenv("PILLBOX_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	backend := Backend(os.Getenv("PILLBOX_BACKEND"))
	if backend != BackendMemory {
		backend = BackendMongo
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	mongoDatabase := os.Getenv("MONGO_DATABASE")
	if mongoDatabase == "" {
		mongoDatabase = "pillbox"
	}

	return Server{
		Addr:          addr,
		Backend:       backend,
		MongoURI:      mongoURI,
		MongoDatabase: mongoDatabase,
	}
}
