// internal/config/redact.go
//
// Secret-masked view of Settings.
//
// Context
// -------
// The "config loaded" log line and the configcheck dump both want to show
// the resolved values, but API keys and the password embedded in the
// derived connection URLs must never reach a log file.  Redacted() returns
// a flat key→value map, keyed by the environment-variable names, with every
// secret replaced by a fixed mask.
//
// Notes
// -----
//   • An absent secret renders as "", so operators can tell unset apart
//     from set-but-hidden.
//   • Oxford commas, two spaces after periods.

package config

import (
	"net/url"
	"strconv"
	"strings"
)

const secretMask = "********"

// mask hides v unless it is absent.
func mask(v string) string {
	if v == "" {
		return ""
	}
	return secretMask
}

// redactURL masks the password portion of a connection URL.  A value that
// does not parse as a URL is masked wholesale rather than leaked.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return secretMask
	}
	if u.User == nil {
		return raw
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), secretMask)
	}
	return u.String()
}

// Redacted returns the settings as a flat map suitable for logging.
func (s *Settings) Redacted() map[string]string {
	return map[string]string{
		"APP_NAME":     s.App.Name,
		"APP_VERSION":  s.App.Version,
		"DEBUG":        strconv.FormatBool(s.App.Debug),
		"LOG_LEVEL":    s.App.LogLevel,
		"API_KEY":      mask(s.App.APIKey),
		"CORS_ORIGINS": strings.Join(s.App.CORSOrigins, ","),

		"API_HOST": s.API.Host,
		"API_PORT": strconv.Itoa(s.API.Port),

		"POSTGRES_USER":     s.Postgres.User,
		"POSTGRES_PASSWORD": mask(s.Postgres.Password),
		"POSTGRES_DB":       s.Postgres.DB,
		"POSTGRES_HOST":     s.Postgres.Host,
		"POSTGRES_PORT":     strconv.Itoa(s.Postgres.Port),
		"DATABASE_URL":      redactURL(s.Postgres.URL),

		"REDIS_HOST": s.Redis.Host,
		"REDIS_PORT": strconv.Itoa(s.Redis.Port),
		"REDIS_DB":   strconv.Itoa(s.Redis.DB),
		"REDIS_URL":  redactURL(s.Redis.URL),

		"CELERY_BROKER_URL":                 redactURL(s.Celery.BrokerURL),
		"CELERY_RESULT_BACKEND":             redactURL(s.Celery.ResultBackend),
		"CELERY_WORKER_PREFETCH_MULTIPLIER": strconv.Itoa(s.Celery.WorkerPrefetchMultiplier),
		"CELERY_RESULT_EXPIRES":             strconv.Itoa(s.Celery.ResultExpires),

		"CHROMADB_PERSISTENT_PATH": s.Chroma.PersistentPath,
		"CHROMADB_HOST":            s.Chroma.Host,
		"CHROMADB_PORT":            strconv.Itoa(s.Chroma.Port),

		"OPENAI_API_KEY":            mask(s.Providers.OpenAIKey),
		"AZURE_OPENAI_API_KEY":      mask(s.Providers.AzureOpenAIKey),
		"AZURE_OPENAI_ENDPOINT":     s.Providers.AzureOpenAIEndpoint,
		"ANTHROPIC_API_KEY":         mask(s.Providers.AnthropicKey),
		"COHERE_API_KEY":            mask(s.Providers.CohereKey),
		"GOOGLE_API_KEY":            mask(s.Providers.GoogleKey),
		"HUGGINGFACE_HUB_API_TOKEN": mask(s.Providers.HuggingFaceToken),
		"MISTRAL_API_KEY":           mask(s.Providers.MistralKey),

		"GIT_CLONE_DIR":        s.Ingestion.GitCloneDir,
		"CLONE_TIMEOUT":        strconv.Itoa(s.Ingestion.CloneTimeout),
		"EMBEDDING_BATCH_SIZE": strconv.Itoa(s.Ingestion.EmbeddingBatchSize),
		"CHUNK_SIZE":           strconv.Itoa(s.Ingestion.ChunkSize),
		"CHUNK_OVERLAP":        strconv.Itoa(s.Ingestion.ChunkOverlap),

		"ALLOWED_FILE_EXTENSIONS": strings.Join(s.Ingestion.AllowedFileExtensions, ","),
		"EXCLUDED_DIRECTORIES":    strings.Join(s.Ingestion.ExcludedDirectories, ","),

		"FINAL_CONTEXT_TOP_K": strconv.Itoa(s.Retrieval.FinalContextTopK),
		"VECTOR_SEARCH_TOP_K": strconv.Itoa(s.Retrieval.VectorSearchTopK),
		"BM25_SEARCH_TOP_K":   strconv.Itoa(s.Retrieval.BM25SearchTopK),
	}
}
