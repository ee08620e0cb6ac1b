package pricing

import "math"

// ServiceType — тип услуги в калькуляторе квот
type ServiceType string

const (
	ServiceApp     ServiceType = "app"
	ServiceWebsite ServiceType = "website"
	ServiceSocial  ServiceType = "social"
)

type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

type SiteType string

const (
	SiteLanding   SiteType = "landing"
	SiteCorporate SiteType = "corporate"
	SiteEcommerce SiteType = "ecommerce"
)

// AppConfig — конфигурация мобильного приложения
type AppConfig struct {
	Platforms  []Platform
	Screens    int
	Complexity Complexity
	Features   []string
}

// WebsiteConfig — конфигурация сайта
type WebsiteConfig struct {
	Pages    int
	Type     SiteType
	Features []string
}

// SocialConfig — конфигурация ведения соцсетей (ежемесячная услуга)
type SocialConfig struct {
	Platforms     int
	PostsPerMonth int
	Design        bool
	Ads           bool
}

// QuoteConfiguration — дискриминированное объединение по типу услуги.
// Активен ровно один вариант, определяемый полем Service.
type QuoteConfiguration struct {
	Service ServiceType
	App     AppConfig
	Website WebsiteConfig
	Social  SocialConfig
}

// PriceBreakdown — результат расчета, нигде не хранится и
// пересчитывается при каждом изменении конфигурации
type PriceBreakdown struct {
	Service   ServiceType
	Base      float64 // базовая часть до фиксированных надбавок
	Surcharge int     // сумма фиксированных надбавок
	Total     int     // итог в USD
	Recurring bool    // true для social: сумма ежемесячная, а не разовая
}

const (
	pricePerScreen = 500
	pricePerPage   = 400

	socialPerPlatform = 250
	socialPerPost     = 40
	socialDesignFee   = 400
	socialAdsFee      = 600
)

var complexityMultiplier = map[Complexity]float64{
	ComplexitySimple:  1,
	ComplexityMedium:  1.5,
	ComplexityComplex: 2.5,
}

var platformWeight = map[Platform]float64{
	PlatformIOS:     1,
	PlatformAndroid: 1,
	PlatformWeb:     0.8,
}

var appFeatureSurcharge = map[string]int{
	"auth":          800,
	"payments":      1200,
	"notifications": 600,
	"analytics":     500,
	"chat":          1500,
	"maps":          800,
	"ai":            2500,
	"api":           1000,
}

var siteTypeMultiplier = map[SiteType]float64{
	SiteLanding:   1,
	SiteCorporate: 1.3,
	SiteEcommerce: 2,
}

var siteFeatureSurcharge = map[string]int{
	"seo":       500,
	"cms":       800,
	"multilang": 600,
	"blog":      400,
	"contact":   200,
	"booking":   1000,
	"payments":  1200,
	"analytics": 300,
}

// CalculatePrice детерминированно считает стоимость по конфигурации.
// Невалидных конфигураций на этом уровне нет: границы значений
// (мин/макс экранов, страниц и т.д.) обеспечивает слой ввода.
func CalculatePrice(cfg QuoteConfiguration) PriceBreakdown {
	switch cfg.Service {
	case ServiceApp:
		return calculateApp(cfg.App)
	case ServiceWebsite:
		return calculateWebsite(cfg.Website)
	case ServiceSocial:
		return calculateSocial(cfg.Social)
	}
	return PriceBreakdown{Service: cfg.Service}
}

func calculateApp(cfg AppConfig) PriceBreakdown {
	base := float64(cfg.Screens * pricePerScreen)
	base *= complexityMultiplier[cfg.Complexity]

	weightSum := 0.0
	for _, p := range cfg.Platforms {
		weightSum += platformWeight[p]
	}
	base *= math.Max(1, 0.7*weightSum)

	surcharge := 0
	for _, f := range cfg.Features {
		surcharge += appFeatureSurcharge[f]
	}

	return PriceBreakdown{
		Service:   ServiceApp,
		Base:      base,
		Surcharge: surcharge,
		Total:     int(math.Round(base + float64(surcharge))),
	}
}

func calculateWebsite(cfg WebsiteConfig) PriceBreakdown {
	base := float64(cfg.Pages * pricePerPage)
	base *= siteTypeMultiplier[cfg.Type]

	surcharge := 0
	for _, f := range cfg.Features {
		surcharge += siteFeatureSurcharge[f]
	}

	return PriceBreakdown{
		Service:   ServiceWebsite,
		Base:      base,
		Surcharge: surcharge,
		Total:     int(math.Round(base + float64(surcharge))),
	}
}

func calculateSocial(cfg SocialConfig) PriceBreakdown {
	base := float64(cfg.Platforms*socialPerPlatform + cfg.PostsPerMonth*socialPerPost)

	surcharge := 0
	if cfg.Design {
		surcharge += socialDesignFee
	}
	if cfg.Ads {
		surcharge += socialAdsFee
	}

	return PriceBreakdown{
		Service:   ServiceSocial,
		Base:      base,
		Surcharge: surcharge,
		Total:     int(math.Round(base + float64(surcharge))),
		Recurring: true,
	}
}
