package facades

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/maschat/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
)

const (
	massCurrency = "MASS"
	usdCurrency  = "USD"
)

// ErrPriceUnavailable is returned when neither the feed nor a fallback rate
// can price MassCoin.
var ErrPriceUnavailable = errors.New("masscoin price unavailable")

// PriceCache stores prices between feed lookups.
type PriceCache interface {
	GetPrice(ctx context.Context, base, quote string) (decimal.Decimal, error)
	SetPrice(ctx context.Context, base, quote string, price decimal.Decimal) error
}

// PriceGRPCFacade prices MassCoin in USD through the exchanger gRPC service.
type PriceGRPCFacade struct {
	client   pb.ExchangeServiceClient
	cache    PriceCache
	fallback decimal.Decimal
}

// NewPriceGRPCFacade creates a new facade. cache may be nil; a positive
// fallback is served when the feed fails.
func NewPriceGRPCFacade(client pb.ExchangeServiceClient, cache PriceCache, fallback decimal.Decimal) *PriceGRPCFacade {
	return &PriceGRPCFacade{client: client, cache: cache, fallback: fallback}
}

// GetMassUSDPrice returns the USD price of one MassCoin.
func (f *PriceGRPCFacade) GetMassUSDPrice(ctx context.Context) (decimal.Decimal, error) {
	if f.cache != nil {
		if price, err := f.cache.GetPrice(ctx, massCurrency, usdCurrency); err == nil {
			return price, nil
		}
	}

	price, err := f.fetch(ctx)
	if err != nil {
		if f.fallback.IsPositive() {
			logger.Log.Warnw("serving fallback masscoin price", "price", f.fallback.String(), "error", err)
			return f.fallback, nil
		}
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}

	if f.cache != nil {
		if err := f.cache.SetPrice(ctx, massCurrency, usdCurrency, price); err != nil {
			logger.Log.Warnw("failed to cache masscoin price", "error", err)
		}
	}
	return price, nil
}

func (f *PriceGRPCFacade) fetch(ctx context.Context) (decimal.Decimal, error) {
	if f.client == nil {
		return decimal.Zero, errors.New("exchanger not configured")
	}

	req := &pb.CurrencyRequest{
		FromCurrency: massCurrency,
		ToCurrency:   usdCurrency,
	}
	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", massCurrency, "to", usdCurrency, "error", err)
		return decimal.Zero, err
	}
	if resp.Rate <= 0 {
		return decimal.Zero, fmt.Errorf("non-positive rate %v", resp.Rate)
	}

	return decimal.NewFromFloat32(resp.Rate), nil
}
