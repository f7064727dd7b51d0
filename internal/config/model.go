// internal/config/model.go
//
// Typed configuration model for GithubBot.
//
// Context
// -------
// These structs define the shape of the Settings record that
// `internal/config/loader.go` resolves from three overlay layers:
//
//   • compiled-in defaults                 – lowest precedence,
//   • optional `.env` file                 – dotenv values,
//   • process environment variables        – highest precedence.
//
// Composite fields (Postgres.URL, Redis.URL, and the two Celery URLs) are
// synthesized from their component fields when no explicit override is
// supplied; the loader resolves them in a fixed dependency order after all
// scalars are final.
//
// Validation happens immediately after resolution; the app fails fast if a
// field is malformed.
//
// Notes
// -----
//   • The Settings value is immutable after Load() returns.  Pass it by
//     reference; nothing may mutate it.
//   • Optional secrets are plain strings where "" means absent.
//   • The `Paths` block is filled at runtime; no source may set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

//
// Application section
//

// App holds identity and runtime toggles.
type App struct {
	Name     string `validate:"required"`
	Version  string `validate:"required"`
	Debug    bool
	LogLevel string `validate:"required"`

	// APIKey protects the inbound API surface.  Absent ("") is legal but
	// leaves the API unauthenticated; startup validation warns about it.
	APIKey string

	// CORSOrigins is normalized from CORS_ORIGINS, which accepts either a
	// JSON array literal or a comma-separated string.
	CORSOrigins []string
}

//
// API listener section
//

// API holds the bind address of the HTTP surface (served elsewhere).
type API struct {
	Host string `validate:"required"`
	Port int    `validate:"gt=0,lt=65536"`
}

//
// Database section
//

// Postgres holds the relational-database coordinates.  URL is either the
// explicit DATABASE_URL override or `postgresql+psycopg2://u:p@h:port/db`
// assembled from the component fields.
type Postgres struct {
	User     string `validate:"required"`
	Password string
	DB       string `validate:"required"`
	Host     string `validate:"required"`
	Port     int    `validate:"gt=0,lt=65536"`
	URL      string `validate:"required"`
}

//
// Cache / broker section
//

// Redis holds the key-value store coordinates.  URL derives as
// `redis://host:port/db` when REDIS_URL is not set explicitly.
type Redis struct {
	Host string `validate:"required"`
	Port int    `validate:"gt=0,lt=65536"`
	DB   int    `validate:"gte=0"`
	URL  string `validate:"required"`
}

//
// Task-queue section
//

// Celery holds the background task-queue wiring.  Both URLs fall back to
// the resolved Redis URL when not set explicitly.
type Celery struct {
	BrokerURL                string `validate:"required"`
	ResultBackend            string `validate:"required"`
	WorkerPrefetchMultiplier int    `validate:"gt=0"`
	ResultExpires            int    `validate:"gt=0"` // seconds
}

//
// Vector-store section
//

// Chroma holds the vector-store coordinates.  When PersistentPath is set
// the client uses local storage and ignores Host/Port.
type Chroma struct {
	PersistentPath string
	Host           string `validate:"required"`
	Port           int    `validate:"gt=0,lt=65536"`
}

//
// Model-provider credentials
//

// Providers holds the optional third-party API credentials.  All of them
// default to absent; none are required at load time.
type Providers struct {
	OpenAIKey           string
	AzureOpenAIKey      string
	AzureOpenAIEndpoint string
	AnthropicKey        string
	CohereKey           string
	GoogleKey           string
	HuggingFaceToken    string
	MistralKey          string
}

//
// Ingestion section
//

// Ingestion holds clone and chunking knobs for repository indexing.
type Ingestion struct {
	GitCloneDir        string `validate:"required"`
	CloneTimeout       int    `validate:"gt=0"` // seconds
	EmbeddingBatchSize int    `validate:"gt=0"`
	ChunkSize          int    `validate:"gt=0"`
	ChunkOverlap       int    `validate:"gte=0"`

	// Both lists are normalized from comma-separated strings; order is
	// preserved and empty tokens are dropped.
	AllowedFileExtensions []string
	ExcludedDirectories   []string
}

//
// Retrieval section
//

// Retrieval holds the top-K counts for the hybrid search pipeline.
type Retrieval struct {
	FinalContextTopK int `validate:"gt=0"`
	VectorSearchTopK int `validate:"gt=0"`
	BM25SearchTopK   int `validate:"gt=0"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime.  The loader discovers Root (APP_ROOT or the
// directory holding `.env`) so later code can build absolute file paths.
type Paths struct {
	Root string
}

//
// Root aggregate
//

// Settings is the immutable aggregate returned by Load().  It is resolved
// exactly once at process start; every other subsystem reads it without
// locking because nothing mutates it afterwards.
type Settings struct {
	App       App
	API       API
	Postgres  Postgres
	Redis     Redis
	Celery    Celery
	Chroma    Chroma
	Providers Providers
	Ingestion Ingestion
	Retrieval Retrieval
	Paths     Paths
}
