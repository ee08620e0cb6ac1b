package wizard

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"time"

	"holdco-backend/internal/app/pricing"
)

// Step — шаг калькулятора квот, порядок фиксированный
type Step string

const (
	StepSelect    Step = "select"
	StepConfigure Step = "configure"
	StepQuote     Step = "quote"
	StepContract  Step = "contract"
	StepCheckout  Step = "checkout"
)

var stepOrder = []Step{StepSelect, StepConfigure, StepQuote, StepContract, StepCheckout}

var (
	ErrNoService         = errors.New("service type not selected")
	ErrContactIncomplete = errors.New("name, email and phone are required")
	ErrTermsNotAccepted  = errors.New("terms must be accepted")
	ErrFlowComplete      = errors.New("checkout is the final step")
	ErrNotAtCheckout     = errors.New("quote flow has not reached checkout")
)

// ContactInfo — контактные данные, проверяются только на непустоту
// при переходе quote → contract
type ContactInfo struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// Calculator — состояние мастера квот. Значение неизменяемое:
// все операции возвращают новую копию, скрытого общего состояния нет.
type Calculator struct {
	Step          Step
	Config        pricing.QuoteConfiguration
	Contact       ContactInfo
	TermsAccepted bool

	// снапшот на момент генерации квоты
	QuoteID string
	Quote   *pricing.PriceBreakdown
}

func NewCalculator() Calculator {
	return Calculator{Step: StepSelect}
}

// SelectService выбирает тип услуги. Смена типа сбрасывает конфигурацию
// остальных вариантов и устаревший снапшот квоты: поля неактивного
// варианта не должны переживать переключение.
func (c Calculator) SelectService(t pricing.ServiceType) Calculator {
	if c.Config.Service != t {
		c.Config = pricing.QuoteConfiguration{Service: t}
		c.QuoteID = ""
		c.Quote = nil
	}
	return c
}

// WithApp задает конфигурацию приложения и сбрасывает снапшот
func (c Calculator) WithApp(cfg pricing.AppConfig) Calculator {
	c.Config.App = cfg
	c.QuoteID = ""
	c.Quote = nil
	return c
}

// WithWebsite задает конфигурацию сайта и сбрасывает снапшот
func (c Calculator) WithWebsite(cfg pricing.WebsiteConfig) Calculator {
	c.Config.Website = cfg
	c.QuoteID = ""
	c.Quote = nil
	return c
}

// WithSocial задает конфигурацию соцсетей и сбрасывает снапшот
func (c Calculator) WithSocial(cfg pricing.SocialConfig) Calculator {
	c.Config.Social = cfg
	c.QuoteID = ""
	c.Quote = nil
	return c
}

func (c Calculator) WithContact(contact ContactInfo) Calculator {
	c.Contact = contact
	return c
}

func (c Calculator) AcceptTerms(accepted bool) Calculator {
	c.TermsAccepted = accepted
	return c
}

// proceedError — причина, по которой переход вперед заблокирован
func (c Calculator) proceedError() error {
	switch c.Step {
	case StepSelect:
		if c.Config.Service == "" {
			return ErrNoService
		}
	case StepConfigure:
		// генерация квоты всегда успешна
	case StepQuote:
		if c.Contact.Name == "" || c.Contact.Email == "" || c.Contact.Phone == "" {
			return ErrContactIncomplete
		}
	case StepContract:
		if !c.TermsAccepted {
			return ErrTermsNotAccepted
		}
	case StepCheckout:
		return ErrFlowComplete
	}
	return nil
}

// CanProceed сообщает, пройдет ли переход на следующий шаг
func (c Calculator) CanProceed() bool {
	return c.proceedError() == nil
}

// Next выполняет переход на следующий шаг. Ошибка валидации локальна
// и не меняет состояние. Переход configure → quote фиксирует снапшот
// цены и присваивает идентификатор квоты.
func (c Calculator) Next(now time.Time) (Calculator, error) {
	if err := c.proceedError(); err != nil {
		return c, err
	}

	if c.Step == StepConfigure {
		breakdown := pricing.CalculatePrice(c.Config)
		c.Quote = &breakdown
		c.QuoteID = pricing.GenerateQuoteID(now)
	}

	for i, s := range stepOrder {
		if s == c.Step {
			c.Step = stepOrder[i+1]
			break
		}
	}
	return c, nil
}

// Back возвращает на предыдущий шаг, навигация назад доступна всегда
func (c Calculator) Back() Calculator {
	for i, s := range stepOrder {
		if s == c.Step && i > 0 {
			c.Step = stepOrder[i-1]
			break
		}
	}
	return c
}

// DepositAmount — депозит 50% от итога квоты
func (c Calculator) DepositAmount() int {
	if c.Quote == nil {
		return 0
	}
	return int(math.Round(float64(c.Quote.Total) * 0.5))
}

// CheckoutURL строит ссылку передачи во внешний платежный сервис
// с идентификатором квоты и суммой депозита
func (c Calculator) CheckoutURL(base string) (string, error) {
	if c.Step != StepCheckout {
		return "", ErrNotAtCheckout
	}
	return fmt.Sprintf("%s?quote=%s&deposit=%d", base, url.QueryEscape(c.QuoteID), c.DepositAmount()), nil
}
