package dto

import (
	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// OutletResponse defines the data returned for an outlet.
type OutletResponse struct {
	OutletID string `json:"outletID"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
}

// ToOutletResponse converts a domain.Outlet to an OutletResponse DTO.
func ToOutletResponse(o *domain.Outlet) OutletResponse {
	return OutletResponse{
		OutletID: o.OutletID,
		Name:     o.Name,
		Address:  o.Address,
		Phone:    o.Phone,
		IsActive: o.IsActive,
	}
}

// ToListOutletResponse converts a slice of domain.Outlet to DTOs.
func ToListOutletResponse(outlets []domain.Outlet) []OutletResponse {
	res := make([]OutletResponse, len(outlets))
	for i := range outlets {
		res[i] = ToOutletResponse(&outlets[i])
	}
	return res
}

// ListOutletsParams defines query parameters for listing outlets.
type ListOutletsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
