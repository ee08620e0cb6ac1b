package repository

import (
	"context"
	"strings"

	"holdco-backend/internal/app/ds"
	"holdco-backend/internal/app/wizard"

	"gorm.io/gorm"
)

// CreateOrder сохраняет заказ оформления вместе с участниками в одной
// транзакции. Реализует wizard.OrderCreator. Повторная отправка того же
// order_id упирается в уникальный индекс — защита от двойного сабмита.
func (r *Repository) CreateOrder(ctx context.Context, sub wizard.OrderSubmission) error {
	order := ds.IntakeOrder{
		OrderID:     sub.OrderID,
		ProductType: sub.ProductType,
		Package:     string(sub.Package),
		AddOns:      strings.Join(sub.Form.AddOns, ","),

		CompanyName1:    sub.Form.CompanyNames[0],
		CompanyName2:    sub.Form.CompanyNames[1],
		CompanyName3:    sub.Form.CompanyNames[2],
		BusinessType:    sub.Form.BusinessType,
		BusinessPurpose: sub.Form.BusinessPurpose,
		ManagementType:  sub.Form.ManagementType,

		MailForwarding:   sub.Form.MailForwarding,
		VirtualOffice:    sub.Form.VirtualOffice,
		ComplianceAlerts: sub.Form.ComplianceAlerts,

		TotalAmount: sub.TotalAmount,
		Status:      "submitted",
		SubmittedAt: sub.SubmittedAt,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, m := range sub.Form.Members {
			member := ds.IntakeMember{
				OrderRef:         order.ID,
				FullName:         m.FullName,
				Email:            m.Email,
				Phone:            m.Phone,
				DateOfBirth:      m.DateOfBirth,
				Country:          m.Country,
				Address:          m.Address,
				OwnershipPercent: m.OwnershipPercent,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetOrderByOrderID возвращает заказ с участниками по публичному идентификатору
func (r *Repository) GetOrderByOrderID(orderID string) (*ds.IntakeOrder, error) {
	var order ds.IntakeOrder
	err := r.db.Preload("Members").Where("order_id = ?", orderID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrdersByEmail — заказы, в которых email числится участником
// (витрина портала самообслуживания)
func (r *Repository) GetOrdersByEmail(email string) ([]ds.IntakeOrder, error) {
	var refs []uint
	err := r.db.Model(&ds.IntakeMember{}).
		Where("email = ?", email).
		Distinct().
		Pluck("order_ref", &refs).Error
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return []ds.IntakeOrder{}, nil
	}

	var orders []ds.IntakeOrder
	err = r.db.Preload("Members").Where("id IN ?", refs).Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus переводит заказ в новый статус
func (r *Repository) UpdateOrderStatus(orderID, status string) error {
	return r.db.Model(&ds.IntakeOrder{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}
