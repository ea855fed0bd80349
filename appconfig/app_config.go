package appconfig

import (
	"strings"

	"github.com/SaiNageswarS/go-api-boot/config"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	LLMProvider string `env:"LLM-PROVIDER" ini:"llm_provider"`
	LLMModel    string `env:"LLM-MODEL" ini:"llm_model"`
	MaxTokens   int    `ini:"max_tokens"`

	ChunkSize    int `ini:"chunk_size"`
	ChunkOverlap int `ini:"chunk_overlap"`
	DocCharLimit int `ini:"doc_char_limit"`

	PDFExtractorURL   string `env:"PDF-EXTRACTOR-URL" ini:"pdf_extractor_url"`
	TranscriptBaseURL string `env:"TRANSCRIPT-BASE-URL" ini:"transcript_base_url"`
	MetadataBaseURL   string `env:"METADATA-BASE-URL" ini:"metadata_base_url"`

	TranscriptLanguages string `ini:"transcript_languages"`
	RequireGrounding    bool   `ini:"require_grounding"`
}

// Languages returns the preferred caption languages in configured order.
func (c *AppConfig) Languages() []string {
	var out []string
	for _, lang := range strings.Split(c.TranscriptLanguages, ",") {
		lang = strings.TrimSpace(lang)
		if lang != "" {
			out = append(out, lang)
		}
	}
	return out
}
