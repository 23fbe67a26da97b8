package emf

import "log/slog"

// EngineOption configures an Engine during creation.
//
// Example:
//
//	e := emf.NewEngine(s, bounds, emf.WithLogger(logger))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	logger       *slog.Logger
	stock        StockCatalog
	boundsMapper BoundsMapper
}

// defaultEngineOptions returns the Enhanced Metafile behavior.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		logger:       nil, // resolved to Logger() in NewEngine
		stock:        EMFStockObjects,
		boundsMapper: FitShapeToTarget,
	}
}

// WithLogger sets the logger used by this engine only.
// A nil logger keeps the package logger from [Logger].
func WithLogger(l *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// WithStockCatalog replaces the stock-object catalog. Format variants
// that define other reserved objects, or a font layer that models the
// system fonts, supply their own catalog here.
func WithStockCatalog(c StockCatalog) EngineOption {
	return func(o *engineOptions) {
		if c != nil {
			o.stock = c
		}
	}
}

// WithBoundsMapper replaces the remapping applied to bounded records.
func WithBoundsMapper(m BoundsMapper) EngineOption {
	return func(o *engineOptions) {
		if m != nil {
			o.boundsMapper = m
		}
	}
}
