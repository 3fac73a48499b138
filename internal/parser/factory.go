package parser

import (
	"fmt"

	"mrpending/internal/config"
	"mrpending/internal/port"
)

// ProviderFactory is a function that creates a StatementExtractor from the
// parser config.
type ProviderFactory func(cfg *config.ParserConfig) (port.StatementExtractor, error)

// registry of extractor provider factories, populated by init() in each
// provider package or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extractor provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates a StatementExtractor using the registered factory for
// the configured provider.
func NewExtractor(cfg *config.ParserConfig) (port.StatementExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown parser provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
