package pricing_test

import (
	"testing"

	"holdco-backend/internal/app/pricing"

	"github.com/stretchr/testify/require"
)

func TestCalculatePrice_App(t *testing.T) {
	cfg := pricing.QuoteConfiguration{
		Service: pricing.ServiceApp,
		App: pricing.AppConfig{
			Platforms:  []pricing.Platform{pricing.PlatformIOS, pricing.PlatformAndroid},
			Screens:    10,
			Complexity: pricing.ComplexityMedium,
			Features:   []string{"auth", "payments"},
		},
	}

	got := pricing.CalculatePrice(cfg)

	// 10*500 = 5000, *1.5 = 7500, platform mult 0.7*(1+1) = 1.4 -> 10500
	require.Equal(t, pricing.ServiceApp, got.Service)
	require.InDelta(t, 10500, got.Base, 0.001)
	require.Equal(t, 2000, got.Surcharge)
	require.Equal(t, 12500, got.Total)
	require.False(t, got.Recurring)
}

func TestCalculatePrice_AppPlatformMultiplierFloor(t *testing.T) {
	// single web platform: 0.7*0.8 = 0.56, clamped to 1
	single := pricing.CalculatePrice(pricing.QuoteConfiguration{
		Service: pricing.ServiceApp,
		App: pricing.AppConfig{
			Platforms:  []pricing.Platform{pricing.PlatformWeb},
			Screens:    4,
			Complexity: pricing.ComplexitySimple,
		},
	})
	require.Equal(t, 2000, single.Total)

	// single ios: 0.7*1 = 0.7, also clamped to 1, same price
	ios := pricing.CalculatePrice(pricing.QuoteConfiguration{
		Service: pricing.ServiceApp,
		App: pricing.AppConfig{
			Platforms:  []pricing.Platform{pricing.PlatformIOS},
			Screens:    4,
			Complexity: pricing.ComplexitySimple,
		},
	})
	require.Equal(t, single.Total, ios.Total)
}

func TestCalculatePrice_Website(t *testing.T) {
	cfg := pricing.QuoteConfiguration{
		Service: pricing.ServiceWebsite,
		Website: pricing.WebsiteConfig{
			Pages:    5,
			Type:     pricing.SiteCorporate,
			Features: []string{"seo", "contact"},
		},
	}

	got := pricing.CalculatePrice(cfg)

	// 5*400 = 2000, *1.3 = 2600, + 500 + 200
	require.InDelta(t, 2600, got.Base, 0.001)
	require.Equal(t, 700, got.Surcharge)
	require.Equal(t, 3300, got.Total)
	require.False(t, got.Recurring)
}

func TestCalculatePrice_WebsiteTypeMultipliers(t *testing.T) {
	tests := []struct {
		siteType pricing.SiteType
		total    int
	}{
		{pricing.SiteLanding, 4000},
		{pricing.SiteCorporate, 5200},
		{pricing.SiteEcommerce, 8000},
	}
	for _, tt := range tests {
		got := pricing.CalculatePrice(pricing.QuoteConfiguration{
			Service: pricing.ServiceWebsite,
			Website: pricing.WebsiteConfig{Pages: 10, Type: tt.siteType},
		})
		require.Equal(t, tt.total, got.Total, "type %s", tt.siteType)
	}
}

func TestCalculatePrice_SocialIsRecurring(t *testing.T) {
	cfg := pricing.QuoteConfiguration{
		Service: pricing.ServiceSocial,
		Social: pricing.SocialConfig{
			Platforms:     3,
			PostsPerMonth: 20,
			Design:        true,
			Ads:           true,
		},
	}

	got := pricing.CalculatePrice(cfg)

	// 3*250 + 20*40 = 1550, + 400 + 600
	require.InDelta(t, 1550, got.Base, 0.001)
	require.Equal(t, 1000, got.Surcharge)
	require.Equal(t, 2550, got.Total)
	require.True(t, got.Recurring)
}

func TestCalculatePrice_Deterministic(t *testing.T) {
	cfg := pricing.QuoteConfiguration{
		Service: pricing.ServiceApp,
		App: pricing.AppConfig{
			Platforms:  []pricing.Platform{pricing.PlatformIOS, pricing.PlatformWeb},
			Screens:    17,
			Complexity: pricing.ComplexityComplex,
			Features:   []string{"ai", "chat", "maps"},
		},
	}

	first := pricing.CalculatePrice(cfg)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, pricing.CalculatePrice(cfg))
	}
}

func TestCalculatePrice_UnknownFeatureIgnored(t *testing.T) {
	got := pricing.CalculatePrice(pricing.QuoteConfiguration{
		Service: pricing.ServiceWebsite,
		Website: pricing.WebsiteConfig{
			Pages:    1,
			Type:     pricing.SiteLanding,
			Features: []string{"nonexistent"},
		},
	})
	require.Equal(t, 0, got.Surcharge)
	require.Equal(t, 400, got.Total)
}
