package options

import (
	"context"
	"fmt"

	"github.com/midnightshuttle/storefront-core/pkg/logger"
	"github.com/midnightshuttle/storefront-core/pkg/metrics"
)

// Factory classifies option group configurations into strategy variants.
// Classification is a pure function of (kind, min, max, required) and is
// total: every configuration yields a strategy.
type Factory struct {
	logg *logger.Logger
	mets *metrics.StorefrontMetrics
}

// NewFactory builds a strategy factory. Metrics may be nil.
func NewFactory(logg *logger.Logger, mets *metrics.StorefrontMetrics) (*Factory, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Factory{logg: logg, mets: mets}, nil
}

// Classify picks the strategy variant for the configuration. Rules are
// evaluated in order, first match wins:
//
//  1. kind=removeIngredient
//  2. min=1, max=1, required     -> RadioRequired
//  3. min=1, max=1, not required -> RadioOptional
//  4. max>1                      -> CheckboxMulti
//  5. fallback                   -> RadioOptional, with a diagnostic so
//     operators notice unclassifiable feed data.
func (f *Factory) Classify(ctx context.Context, cfg GroupConfig) Strategy {
	if cfg.Kind == KindRemoveIngredient {
		return newRemoveIngredient(cfg)
	}
	if cfg.Min == 1 && cfg.Max == 1 && cfg.Required {
		return newRadioRequired(cfg)
	}
	if cfg.Min == 1 && cfg.Max == 1 && !cfg.Required {
		return newRadioOptional(cfg)
	}
	if cfg.Max > 1 {
		return newCheckboxMulti(cfg)
	}

	entry := f.logg.WithFields(ctx, map[string]any{
		"option_group": cfg.Name,
		"min":          cfg.Min,
		"max":          cfg.Max,
		"required":     cfg.Required,
	})
	f.logg.Warn(entry, "option group matched no strategy rule, using optional single choice")
	f.mets.IncStrategyFallback()
	return newRadioOptional(cfg)
}

// ClassifyAll classifies configurations preserving their order.
func (f *Factory) ClassifyAll(ctx context.Context, cfgs []GroupConfig) []Strategy {
	if len(cfgs) == 0 {
		return nil
	}
	strategies := make([]Strategy, 0, len(cfgs))
	for _, cfg := range cfgs {
		strategies = append(strategies, f.Classify(ctx, cfg))
	}
	return strategies
}
