// internal/config/loader.go
//
// Configuration loader and derivation pipeline.
//
/*
Context
--------
`Load()` builds one immutable `Settings` record from three layers (highest
precedence last):

  1. Compiled-in defaults (the `defaults()` map below).
  2. Optional `.env` file at `<root>/.env`, read with godotenv.  A missing
     file is not an error; resolution proceeds on the remaining layers.
  3. Live process environment variables, matched case-sensitively by their
     exact names (`APP_NAME`, `POSTGRES_HOST`, …).

After merging, every scalar is coerced to its declared type; the first
coercion failure aborts the load with a `TypeCoercionError` naming the field
and the raw value.  Composite fields then resolve in a fixed dependency
order: DATABASE_URL, REDIS_URL, and finally the two Celery URLs, which fall
back to the Redis URL.  An explicit value from any source always beats
derivation, verbatim.  List fields are normalized last, and the record is
validated before it is returned.

Keys that no field recognizes are ignored; they never fail the load.

Notes
-----
  • No ambient global.  Load() returns the record; callers pass it down.
    Resolution runs once at process start, before anything concurrent.
  • `rootDir()` honors APP_ROOT, then climbs the cwd tree until it finds a
    `.env`; this lets `go run ./cmd/configcheck` work from any sub-directory.
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	koanf "github.com/knadh/koanf/v2"
)

// Connection-string schemes for the derived composites.
const (
	postgresScheme = "postgresql+psycopg2"
	redisScheme    = "redis"
)

/*──────────────────────────── error type ───────────────────────────────────*/

// TypeCoercionError reports a merged value that cannot be converted to the
// field's declared type.  It is fatal; the process must not start with a
// partially-resolved configuration.
type TypeCoercionError struct {
	Field string // environment-variable name
	Raw   string // offending raw value
	Want  string // declared type, "int" or "bool"
	Err   error
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("config: field %s: cannot coerce %q to %s", e.Field, e.Raw, e.Want)
}

func (e *TypeCoercionError) Unwrap() error { return e.Err }

/*──────────────────────────── defaults ─────────────────────────────────────*/

// defaults returns the compiled-in layer.  Every value is a string so the
// same coercion path handles all three layers.  Optional keys (secrets and
// the derived URLs) are deliberately absent: presence in any source is what
// suppresses derivation.
func defaults() map[string]any {
	return map[string]any{
		"APP_NAME":     "GithubBot",
		"APP_VERSION":  "0.1.0",
		"DEBUG":        "false",
		"LOG_LEVEL":    "INFO",
		"CORS_ORIGINS": "",

		"API_HOST": "0.0.0.0",
		"API_PORT": "8000",

		"POSTGRES_USER":     "user",
		"POSTGRES_PASSWORD": "password",
		"POSTGRES_DB":       "repoinsight",
		"POSTGRES_HOST":     "postgres",
		"POSTGRES_PORT":     "5432",

		"REDIS_HOST": "redis",
		"REDIS_PORT": "6379",
		"REDIS_DB":   "0",

		"CELERY_WORKER_PREFETCH_MULTIPLIER": "1",
		"CELERY_RESULT_EXPIRES":             "3600",

		"CHROMADB_HOST": "chromadb",
		"CHROMADB_PORT": "8000",

		"GIT_CLONE_DIR":        "/repo_clones",
		"CLONE_TIMEOUT":        "300",
		"EMBEDDING_BATCH_SIZE": "32",
		"CHUNK_SIZE":           "1000",
		"CHUNK_OVERLAP":        "200",

		"ALLOWED_FILE_EXTENSIONS": ".py,.js,.jsx,.ts,.tsx,.java,.cpp,.c,.h,.hpp,.cs,.php,.rb,.go,.rs,.swift,.kt,.scala," +
			".md,.txt,.rst,.json,.yaml,.yml,.toml,.ini,.cfg,.sh,.sql,.html,.css,.vue," +
			"dockerfile,makefile,readme,license,changelog",
		"EXCLUDED_DIRECTORIES": ".git,node_modules,dist,build,venv,.venv,target",

		"FINAL_CONTEXT_TOP_K": "5",
		"VECTOR_SEARCH_TOP_K": "10",
		"BM25_SEARCH_TOP_K":   "10",
	}
}

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves APP_ROOT or climbs directories until a `.env` is found.
// Falls back to the executable heuristic for production layout.
func rootDir() string {
	if r := os.Getenv("APP_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, ".env")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load merges defaults, the optional `.env`, and the process environment,
// then resolves and validates the Settings record.
func Load() (*Settings, error) {
	return loadFrom(filepath.Join(rootDir(), ".env"), nil)
}

// loadFrom is the testable core of Load.  environ == nil reads the live
// process environment; a non-nil map substitutes for it wholesale.
func loadFrom(envPath string, environ map[string]string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults layer: %w", err)
	}

	// Optional dotenv layer.  Read, not Load: the file contents stay a
	// distinct overlay and never leak into the process environment.
	if vals, err := godotenv.Read(envPath); err == nil {
		if err := k.Load(confmap.Provider(asAny(vals), "."), nil); err != nil {
			return nil, fmt.Errorf("config: env-file layer: %w", err)
		}
	}

	if environ != nil {
		if err := k.Load(confmap.Provider(asAny(environ), "."), nil); err != nil {
			return nil, fmt.Errorf("config: environment layer: %w", err)
		}
	} else if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("config: environment layer: %w", err)
	}

	s, err := resolve(k)
	if err != nil {
		return nil, err
	}
	s.Paths.Root = filepath.Dir(envPath)
	return s, nil
}

func asAny(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

/*──────────────────────────── resolution ───────────────────────────────────*/

// resolver reads typed values out of the merged tree.  The first coercion
// failure is captured; later reads still run so the zero values keep the
// struct shape, but resolve() reports the error and discards the record.
type resolver struct {
	k   *koanf.Koanf
	err error
}

func (r *resolver) fail(field, raw, want string, err error) {
	if r.err == nil {
		r.err = &TypeCoercionError{Field: field, Raw: raw, Want: want, Err: err}
	}
}

func (r *resolver) str(key string) string { return r.k.String(key) }

// optional returns "" when the key is absent from every layer.
func (r *resolver) optional(key string) string { return r.k.String(key) }

func (r *resolver) integer(key string) int {
	raw := r.k.String(key)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		r.fail(key, raw, "int", err)
		return 0
	}
	return n
}

func (r *resolver) boolean(key string) bool {
	raw := r.k.String(key)
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		r.fail(key, raw, "bool", err)
		return false
	}
	return b
}

// derived returns the explicit value verbatim when the key is present in
// any source, otherwise whatever synth builds from already-final fields.
func (r *resolver) derived(key string, synth func() string) string {
	if r.k.Exists(key) {
		return r.k.String(key)
	}
	return synth()
}

// resolve coerces scalars, then walks the composite fields in dependency
// order, then normalizes lists, then validates.  The order of the composite
// block is load-bearing: each line may only read fields resolved above it.
func resolve(k *koanf.Koanf) (*Settings, error) {
	r := &resolver{k: k}
	s := &Settings{}

	s.App = App{
		Name:        r.str("APP_NAME"),
		Version:     r.str("APP_VERSION"),
		Debug:       r.boolean("DEBUG"),
		LogLevel:    r.str("LOG_LEVEL"),
		APIKey:      r.optional("API_KEY"),
		CORSOrigins: parseOriginList(r.str("CORS_ORIGINS")),
	}
	s.API = API{
		Host: r.str("API_HOST"),
		Port: r.integer("API_PORT"),
	}
	s.Postgres = Postgres{
		User:     r.str("POSTGRES_USER"),
		Password: r.str("POSTGRES_PASSWORD"),
		DB:       r.str("POSTGRES_DB"),
		Host:     r.str("POSTGRES_HOST"),
		Port:     r.integer("POSTGRES_PORT"),
	}
	s.Redis = Redis{
		Host: r.str("REDIS_HOST"),
		Port: r.integer("REDIS_PORT"),
		DB:   r.integer("REDIS_DB"),
	}
	s.Celery = Celery{
		WorkerPrefetchMultiplier: r.integer("CELERY_WORKER_PREFETCH_MULTIPLIER"),
		ResultExpires:            r.integer("CELERY_RESULT_EXPIRES"),
	}
	s.Chroma = Chroma{
		PersistentPath: r.optional("CHROMADB_PERSISTENT_PATH"),
		Host:           r.str("CHROMADB_HOST"),
		Port:           r.integer("CHROMADB_PORT"),
	}
	s.Providers = Providers{
		OpenAIKey:           r.optional("OPENAI_API_KEY"),
		AzureOpenAIKey:      r.optional("AZURE_OPENAI_API_KEY"),
		AzureOpenAIEndpoint: r.optional("AZURE_OPENAI_ENDPOINT"),
		AnthropicKey:        r.optional("ANTHROPIC_API_KEY"),
		CohereKey:           r.optional("COHERE_API_KEY"),
		GoogleKey:           r.optional("GOOGLE_API_KEY"),
		HuggingFaceToken:    r.optional("HUGGINGFACE_HUB_API_TOKEN"),
		MistralKey:          r.optional("MISTRAL_API_KEY"),
	}
	s.Ingestion = Ingestion{
		GitCloneDir:           r.str("GIT_CLONE_DIR"),
		CloneTimeout:          r.integer("CLONE_TIMEOUT"),
		EmbeddingBatchSize:    r.integer("EMBEDDING_BATCH_SIZE"),
		ChunkSize:             r.integer("CHUNK_SIZE"),
		ChunkOverlap:          r.integer("CHUNK_OVERLAP"),
		AllowedFileExtensions: parseCommaList(r.str("ALLOWED_FILE_EXTENSIONS")),
		ExcludedDirectories:   parseCommaList(r.str("EXCLUDED_DIRECTORIES")),
	}
	s.Retrieval = Retrieval{
		FinalContextTopK: r.integer("FINAL_CONTEXT_TOP_K"),
		VectorSearchTopK: r.integer("VECTOR_SEARCH_TOP_K"),
		BM25SearchTopK:   r.integer("BM25_SEARCH_TOP_K"),
	}

	//
	// Composite fields, in dependency order.  Component parts above are
	// final; the Celery URLs read the Redis URL resolved just before them.
	//
	s.Postgres.URL = r.derived("DATABASE_URL", func() string {
		return fmt.Sprintf("%s://%s:%s@%s:%d/%s",
			postgresScheme, s.Postgres.User, s.Postgres.Password,
			s.Postgres.Host, s.Postgres.Port, s.Postgres.DB)
	})
	s.Redis.URL = r.derived("REDIS_URL", func() string { return redisURL(s.Redis) })

	celeryFallback := func() string {
		if s.Redis.URL != "" {
			return s.Redis.URL
		}
		return redisURL(s.Redis)
	}
	s.Celery.BrokerURL = r.derived("CELERY_BROKER_URL", celeryFallback)
	s.Celery.ResultBackend = r.derived("CELERY_RESULT_BACKEND", celeryFallback)

	if r.err != nil {
		return nil, r.err
	}
	if err := validateStruct(s); err != nil {
		return nil, fmt.Errorf("config: validation: %w", err)
	}
	return s, nil
}

// redisURL assembles `redis://host:port/db` from the component fields.
func redisURL(c Redis) string {
	return fmt.Sprintf("%s://%s:%d/%d", redisScheme, c.Host, c.Port, c.DB)
}
