package mappers

import (
	"github.com/fiberdesk/fiberdesk/internal/domain/customer"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/persistence/models"
)

func CustomerToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:               c.ID,
		CustomerID:       c.CustomerID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		Latitude:         c.Latitude,
		Longitude:        c.Longitude,
		ODPID:            c.ODPID,
		ODCPort:          c.ODCPort,
		PackageID:        c.PackageID,
		MonthlyFee:       c.MonthlyFee,
		Status:           c.Status.String(),
		RegistrationDate: DateToModel(c.RegistrationDate),
		Notes:            c.Notes,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func CustomerToDomain(m *models.CustomerModel) *customer.Customer {
	return &customer.Customer{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		Name:             m.Name,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          m.Address,
		Latitude:         m.Latitude,
		Longitude:        m.Longitude,
		ODPID:            m.ODPID,
		ODCPort:          m.ODCPort,
		PackageID:        m.PackageID,
		MonthlyFee:       m.MonthlyFee,
		Status:           customer.Status(m.Status),
		RegistrationDate: DateToDomain(m.RegistrationDate),
		Notes:            m.Notes,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
