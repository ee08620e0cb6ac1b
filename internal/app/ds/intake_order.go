package ds

import "time"

// Заказ оформления компании (Wyoming LLC)
type IntakeOrder struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     string `gorm:"type:varchar(40);unique;not null"` // FC-WY-<base36 timestamp>
	ProductType string `gorm:"type:varchar(40);not null"`
	Package     string `gorm:"type:varchar(20);not null"` // basic, standard, premium
	AddOns      string `gorm:"type:text"`                 // идентификаторы услуг через запятую

	CompanyName1    string `gorm:"type:varchar(120);not null"`
	CompanyName2    string `gorm:"type:varchar(120)"`
	CompanyName3    string `gorm:"type:varchar(120)"`
	BusinessType    string `gorm:"type:varchar(60)"`
	BusinessPurpose string `gorm:"type:text"`
	ManagementType  string `gorm:"type:varchar(30)"`

	MailForwarding   bool `gorm:"default:false"`
	VirtualOffice    bool `gorm:"default:false"`
	ComplianceAlerts bool `gorm:"default:false"`

	TotalAmount int    `gorm:"type:int;not null"`
	Status      string `gorm:"type:varchar(20);default:'submitted'"` // submitted, paid, rejected
	SubmittedAt time.Time
	CreatedAt   time.Time

	Members []IntakeMember `gorm:"foreignKey:OrderRef"`
}

// Участник (совладелец) в заказе. Сумма OwnershipPercent по заказу
// должна быть ровно 100, проверяется до записи.
type IntakeMember struct {
	ID               uint   `gorm:"primaryKey"`
	OrderRef         uint   `gorm:"not null;index"`
	FullName         string `gorm:"type:varchar(100);not null"`
	Email            string `gorm:"type:varchar(100);not null"`
	Phone            string `gorm:"type:varchar(30);not null"`
	DateOfBirth      string `gorm:"type:varchar(20);not null"`
	Country          string `gorm:"type:varchar(60);not null"`
	Address          string `gorm:"type:varchar(200)"`
	OwnershipPercent int    `gorm:"type:int;not null"`
}
