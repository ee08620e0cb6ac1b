package pricing

// Package — тариф оформления компании (Wyoming LLC)
type Package string

const (
	PackageBasic    Package = "basic"
	PackageStandard Package = "standard"
	PackagePremium  Package = "premium"
)

// PackageInfo — фиксированный тариф: базовая цена и госпошлина штата
type PackageInfo struct {
	ID        Package
	Name      string
	BasePrice int
	StateFee  int
}

// AddOn — дополнительная услуга с фиксированной ценой,
// доступная только для определенных тарифов
type AddOn struct {
	ID       string
	Name     string
	Price    int
	Packages []Package
}

var packageTable = map[Package]PackageInfo{
	PackageBasic:    {ID: PackageBasic, Name: "Basic", BasePrice: 199, StateFee: 102},
	PackageStandard: {ID: PackageStandard, Name: "Standard", BasePrice: 399, StateFee: 102},
	PackagePremium:  {ID: PackagePremium, Name: "Premium", BasePrice: 699, StateFee: 102},
}

var addOnTable = []AddOn{
	{ID: "ein", Name: "EIN Registration", Price: 99, Packages: []Package{PackageBasic, PackageStandard, PackagePremium}},
	{ID: "registered-agent", Name: "Registered Agent (1 year)", Price: 125, Packages: []Package{PackageBasic, PackageStandard, PackagePremium}},
	{ID: "operating-agreement", Name: "Operating Agreement", Price: 75, Packages: []Package{PackageBasic}},
	{ID: "expedited", Name: "Expedited Filing", Price: 50, Packages: []Package{PackageBasic, PackageStandard, PackagePremium}},
	{ID: "banking", Name: "Banking Resolution", Price: 149, Packages: []Package{PackageStandard, PackagePremium}},
	{ID: "bookkeeping", Name: "Bookkeeping Setup", Price: 199, Packages: []Package{PackagePremium}},
}

// PackageByID возвращает тариф по идентификатору
func PackageByID(id Package) (PackageInfo, bool) {
	p, ok := packageTable[id]
	return p, ok
}

// AddOnByID возвращает дополнительную услугу по идентификатору
func AddOnByID(id string) (AddOn, bool) {
	for _, a := range addOnTable {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

// EligibleAddOns — услуги, доступные для тарифа (фильтрация на уровне UI)
func EligibleAddOns(pkg Package) []AddOn {
	var out []AddOn
	for _, a := range addOnTable {
		for _, p := range a.Packages {
			if p == pkg {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// IntakeTotal — база тарифа + пошлина штата + сумма выбранных услуг.
// Совместимость услуги с тарифом здесь не проверяется, это
// ответственность слоя ввода (EligibleAddOns).
func IntakeTotal(pkg Package, addOnIDs []string) int {
	info, ok := packageTable[pkg]
	if !ok {
		return 0
	}

	total := info.BasePrice + info.StateFee
	for _, id := range addOnIDs {
		if a, ok := AddOnByID(id); ok {
			total += a.Price
		}
	}
	return total
}
