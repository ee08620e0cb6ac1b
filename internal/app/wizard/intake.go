package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"holdco-backend/internal/app/pricing"

	"github.com/sirupsen/logrus"
)

// IntakeStep — шаг оформления компании, порядок фиксированный
type IntakeStep string

const (
	IntakePackage  IntakeStep = "package"
	IntakeCompany  IntakeStep = "company"
	IntakeMembers  IntakeStep = "members"
	IntakeServices IntakeStep = "services"
	IntakePayment  IntakeStep = "payment"
)

var intakeOrder = []IntakeStep{IntakePackage, IntakeCompany, IntakeMembers, IntakeServices, IntakePayment}

const (
	maxMembers = 4
	minMembers = 1
)

var (
	ErrCompanyIncomplete = errors.New("three company name candidates and business purpose are required")
	ErrMemberIncomplete  = errors.New("every member needs full name, email, phone, date of birth and country")
	ErrConsentRequired   = errors.New("terms and privacy policy must be accepted")
	ErrIntakeComplete    = errors.New("payment is the final step")
	ErrNotAtPayment      = errors.New("intake flow has not reached payment")
)

// MemberInfo — участник (совладелец) оформляемой компании
type MemberInfo struct {
	FullName         string
	Email            string
	Phone            string
	DateOfBirth      string
	Country          string
	Address          string
	OwnershipPercent int
}

// OrderForm — данные мастера оформления
type OrderForm struct {
	Package pricing.Package
	AddOns  []string

	// три варианта названия в порядке предпочтения
	CompanyNames    [3]string
	BusinessType    string
	BusinessPurpose string

	Members        []MemberInfo
	ManagementType string // member-managed, manager-managed

	// необязательные сервисные флаги
	MailForwarding   bool
	VirtualOffice    bool
	ComplianceAlerts bool

	TermsAccepted   bool
	PrivacyAccepted bool
}

// Intake — состояние мастера оформления, операции возвращают копию
type Intake struct {
	Step       IntakeStep
	Form       OrderForm
	Submitting bool
	Submitted  bool
}

func NewIntake() Intake {
	return Intake{
		Step: IntakePackage,
		Form: OrderForm{
			Package:        pricing.PackageBasic, // выбор тарифа всегда имеет значение по умолчанию
			Members:        []MemberInfo{{OwnershipPercent: 100}},
			ManagementType: "member-managed",
		},
	}
}

func (i Intake) proceedError() error {
	switch i.Step {
	case IntakePackage:
		// тариф выбран всегда
	case IntakeCompany:
		for _, name := range i.Form.CompanyNames {
			if name == "" {
				return ErrCompanyIncomplete
			}
		}
		if i.Form.BusinessPurpose == "" {
			return ErrCompanyIncomplete
		}
	case IntakeMembers:
		for _, m := range i.Form.Members {
			if m.FullName == "" || m.Email == "" || m.Phone == "" || m.DateOfBirth == "" || m.Country == "" {
				return ErrMemberIncomplete
			}
		}
	case IntakeServices:
		// все поля необязательные
	case IntakePayment:
		if !i.Form.TermsAccepted || !i.Form.PrivacyAccepted {
			return ErrConsentRequired
		}
		// инвариант долей проверяется на каждом чтении, не только при мутации
		if err := ValidateOwnership(i.Form.Members); err != nil {
			return err
		}
	}
	return nil
}

// CanProceed сообщает, пройдет ли переход на следующий шаг
func (i Intake) CanProceed() bool {
	return i.proceedError() == nil
}

// Next выполняет переход на следующий шаг
func (i Intake) Next() (Intake, error) {
	if err := i.proceedError(); err != nil {
		return i, err
	}
	if i.Step == IntakePayment {
		return i, ErrIntakeComplete
	}
	for idx, s := range intakeOrder {
		if s == i.Step {
			i.Step = intakeOrder[idx+1]
			break
		}
	}
	return i, nil
}

// Back возвращает на предыдущий шаг
func (i Intake) Back() Intake {
	for idx, s := range intakeOrder {
		if s == i.Step && idx > 0 {
			i.Step = intakeOrder[idx-1]
			break
		}
	}
	return i
}

// AddMember добавляет участника (не более четырех). Существующие участники
// получают ровный процент floor(100/n), новый забирает остаток, поэтому
// сумма долей всегда ровно 100.
func (i Intake) AddMember() Intake {
	old := i.Form.Members
	if len(old) >= maxMembers {
		return i // no-op
	}

	newCount := len(old) + 1
	share := 100 / newCount

	members := make([]MemberInfo, 0, newCount)
	for _, m := range old {
		m.OwnershipPercent = share
		members = append(members, m)
	}
	members = append(members, MemberInfo{OwnershipPercent: 100 - share*len(old)})

	i.Form.Members = members
	return i
}

// RemoveMember удаляет участника по индексу (минимум один остается).
// Все оставшиеся кроме последнего получают floor(100/n), последний
// забирает остаток.
func (i Intake) RemoveMember(idx int) Intake {
	old := i.Form.Members
	if len(old) <= minMembers || idx < 0 || idx >= len(old) {
		return i // no-op
	}

	members := make([]MemberInfo, 0, len(old)-1)
	members = append(members, old[:idx]...)
	members = append(members, old[idx+1:]...)

	newCount := len(members)
	share := 100 / newCount
	for j := 0; j < newCount-1; j++ {
		members[j].OwnershipPercent = share
	}
	members[newCount-1].OwnershipPercent = 100 - share*(newCount-1)

	i.Form.Members = members
	return i
}

// ValidateOwnership проверяет инвариант: от одного до четырех участников,
// сумма долей ровно 100
func ValidateOwnership(members []MemberInfo) error {
	if len(members) < minMembers || len(members) > maxMembers {
		return fmt.Errorf("member count %d out of range [%d, %d]", len(members), minMembers, maxMembers)
	}
	sum := 0
	for _, m := range members {
		sum += m.OwnershipPercent
	}
	if sum != 100 {
		return fmt.Errorf("ownership percentages sum to %d, want exactly 100", sum)
	}
	return nil
}

// Total — стоимость: база тарифа + пошлина штата + выбранные услуги
func (i Intake) Total() int {
	return pricing.IntakeTotal(i.Form.Package, i.Form.AddOns)
}

// OrderSubmission — сериализованная форма, передаваемая коллабораторам
type OrderSubmission struct {
	OrderID     string
	ProductType string
	Package     pricing.Package
	Form        OrderForm
	TotalAmount int
	SubmittedAt time.Time
}

// OrderCreator — внешний коллаборатор сохранения заказа
type OrderCreator interface {
	CreateOrder(ctx context.Context, sub OrderSubmission) error
}

// CheckoutStarter — внешний коллаборатор создания checkout-сессии,
// возвращает URL перенаправления на оплату
type CheckoutStarter interface {
	CreateSession(ctx context.Context, sub OrderSubmission) (string, error)
}

// SubmitResult — итог отправки формы
type SubmitResult struct {
	OrderID     string
	RedirectURL string
	// Degraded: внешний вызов не удался, пользователю показан общий
	// успех, детали только в логах
	Degraded bool
}

// Submit отправляет заказ: создание заказа, затем checkout-сессия.
// Повторный вызов при незавершенной или завершенной отправке — no-op.
// Отказ любого коллаборатора деградирует до общего успеха.
func (i Intake) Submit(ctx context.Context, now time.Time, orders OrderCreator, checkout CheckoutStarter) (Intake, SubmitResult, error) {
	if i.Submitting || i.Submitted {
		return i, SubmitResult{}, nil
	}
	if i.Step != IntakePayment {
		return i, SubmitResult{}, ErrNotAtPayment
	}
	if err := i.proceedError(); err != nil {
		return i, SubmitResult{}, err
	}

	i.Submitting = true

	sub := OrderSubmission{
		OrderID:     pricing.GenerateOrderID(now),
		ProductType: "wyoming-llc",
		Package:     i.Form.Package,
		Form:        i.Form,
		TotalAmount: i.Total(),
		SubmittedAt: now,
	}
	result := SubmitResult{OrderID: sub.OrderID}

	if err := orders.CreateOrder(ctx, sub); err != nil {
		logrus.Warnf("intake %s: order creation failed: %v", sub.OrderID, err)
		result.Degraded = true
	} else if url, err := checkout.CreateSession(ctx, sub); err != nil {
		logrus.Warnf("intake %s: checkout session failed: %v", sub.OrderID, err)
		result.Degraded = true
	} else {
		result.RedirectURL = url
	}

	i.Submitting = false
	i.Submitted = true
	return i, result, nil
}
