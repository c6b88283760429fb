package request

import "service-desk/internal/usecase/commands"

type CreateTicketRequest struct {
	CustomerName string `json:"customer_name" binding:"required,max=128"`
	Phone        string `json:"phone" binding:"max=32"`
	Device       string `json:"device" binding:"required,max=128"`
	Issue        string `json:"issue" binding:"required,max=4000"`
	Priority     string `json:"priority,omitempty" binding:"omitempty,oneof=low normal high urgent"`
}

func (r CreateTicketRequest) ToCommand() commands.CreateTicketRequest {
	return commands.CreateTicketRequest{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Device:       r.Device,
		Issue:        r.Issue,
		Priority:     r.Priority,
	}
}
