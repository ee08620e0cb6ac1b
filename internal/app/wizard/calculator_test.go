package wizard_test

import (
	"testing"
	"time"

	"holdco-backend/internal/app/pricing"
	"holdco-backend/internal/app/wizard"

	"github.com/stretchr/testify/require"
)

var calcNow = time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)

func appCalculator(t *testing.T) wizard.Calculator {
	t.Helper()
	return wizard.NewCalculator().
		SelectService(pricing.ServiceApp).
		WithApp(pricing.AppConfig{
			Platforms:  []pricing.Platform{pricing.PlatformIOS},
			Screens:    10,
			Complexity: pricing.ComplexitySimple,
		})
}

func TestCalculator_CannotProceedWithoutService(t *testing.T) {
	c := wizard.NewCalculator()
	require.False(t, c.CanProceed())

	_, err := c.Next(calcNow)
	require.ErrorIs(t, err, wizard.ErrNoService)
	// неудачный переход не меняет состояние
	require.Equal(t, wizard.StepSelect, c.Step)
}

func TestCalculator_FullFlow(t *testing.T) {
	c := appCalculator(t)

	c, err := c.Next(calcNow) // select -> configure
	require.NoError(t, err)
	require.Equal(t, wizard.StepConfigure, c.Step)
	require.Nil(t, c.Quote)

	c, err = c.Next(calcNow) // configure -> quote, снапшот фиксируется
	require.NoError(t, err)
	require.Equal(t, wizard.StepQuote, c.Step)
	require.NotNil(t, c.Quote)
	require.Equal(t, 5000, c.Quote.Total)
	require.NotEmpty(t, c.QuoteID)

	// без контактов дальше нельзя
	_, err = c.Next(calcNow)
	require.ErrorIs(t, err, wizard.ErrContactIncomplete)

	c = c.WithContact(wizard.ContactInfo{Name: "Jane Roe", Email: "jane@example.com", Phone: "+15550100"})
	c, err = c.Next(calcNow) // quote -> contract
	require.NoError(t, err)
	require.Equal(t, wizard.StepContract, c.Step)

	_, err = c.Next(calcNow)
	require.ErrorIs(t, err, wizard.ErrTermsNotAccepted)

	c = c.AcceptTerms(true)
	c, err = c.Next(calcNow) // contract -> checkout
	require.NoError(t, err)
	require.Equal(t, wizard.StepCheckout, c.Step)

	_, err = c.Next(calcNow)
	require.ErrorIs(t, err, wizard.ErrFlowComplete)
}

func TestCalculator_BackAlwaysAllowed(t *testing.T) {
	c := appCalculator(t)
	c, err := c.Next(calcNow)
	require.NoError(t, err)
	c, err = c.Next(calcNow)
	require.NoError(t, err)
	require.Equal(t, wizard.StepQuote, c.Step)

	c = c.Back()
	require.Equal(t, wizard.StepConfigure, c.Step)
	c = c.Back()
	require.Equal(t, wizard.StepSelect, c.Step)
	// с первого шага назад некуда
	c = c.Back()
	require.Equal(t, wizard.StepSelect, c.Step)
}

func TestCalculator_ServiceSwitchClearsOtherVariants(t *testing.T) {
	c := appCalculator(t)
	c, err := c.Next(calcNow)
	require.NoError(t, err)
	c, err = c.Next(calcNow)
	require.NoError(t, err)
	require.NotNil(t, c.Quote)

	c = c.SelectService(pricing.ServiceWebsite)
	require.Zero(t, c.Config.App)
	require.Nil(t, c.Quote)
	require.Empty(t, c.QuoteID)

	// повторный выбор того же типа конфигурацию не трогает
	c = c.WithWebsite(pricing.WebsiteConfig{Pages: 3, Type: pricing.SiteLanding})
	c = c.SelectService(pricing.ServiceWebsite)
	require.Equal(t, 3, c.Config.Website.Pages)
}

func TestCalculator_ReconfigureInvalidatesSnapshot(t *testing.T) {
	c := appCalculator(t)
	c, err := c.Next(calcNow)
	require.NoError(t, err)
	c, err = c.Next(calcNow)
	require.NoError(t, err)
	require.NotEmpty(t, c.QuoteID)

	c = c.WithApp(pricing.AppConfig{
		Platforms:  []pricing.Platform{pricing.PlatformIOS},
		Screens:    20,
		Complexity: pricing.ComplexitySimple,
	})
	require.Nil(t, c.Quote)
	require.Empty(t, c.QuoteID)

	c = c.Back()
	c, err = c.Next(calcNow)
	require.NoError(t, err)
	require.Equal(t, 10000, c.Quote.Total)
	require.NotEmpty(t, c.QuoteID)
}

func TestCalculator_DepositAndCheckoutURL(t *testing.T) {
	c := appCalculator(t).WithApp(pricing.AppConfig{
		Platforms:  []pricing.Platform{pricing.PlatformIOS},
		Screens:    5,
		Complexity: pricing.ComplexityMedium,
	})

	require.Equal(t, 0, c.DepositAmount()) // квоты еще нет

	_, err := c.CheckoutURL("https://pay.example.com/start")
	require.ErrorIs(t, err, wizard.ErrNotAtCheckout)

	c, err = c.Next(calcNow)
	require.NoError(t, err)
	c, err = c.Next(calcNow)
	require.NoError(t, err)
	require.Equal(t, 3750, c.Quote.Total)
	require.Equal(t, 1875, c.DepositAmount())

	c = c.WithContact(wizard.ContactInfo{Name: "Jane Roe", Email: "jane@example.com", Phone: "+15550100"}).
		AcceptTerms(true)
	c, err = c.Next(calcNow)
	require.NoError(t, err)
	c, err = c.Next(calcNow)
	require.NoError(t, err)

	url, err := c.CheckoutURL("https://pay.example.com/start")
	require.NoError(t, err)
	require.Equal(t, "https://pay.example.com/start?quote="+c.QuoteID+"&deposit=1875", url)
}
