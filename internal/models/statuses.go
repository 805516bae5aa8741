package models

import "strings"

type UserRole string
type TicketStatus string

const (
	UserRoleCreator UserRole = "creator"
	UserRoleSponsor UserRole = "sponsor"

	// RoleAll - фильтр discover-same без ограничения по роли
	RoleAll = "all"

	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

func (r UserRole) Valid() bool {
	return r == UserRoleCreator || r == UserRoleSponsor
}

// Opposite возвращает роль другой стороны маркетплейса
func (r UserRole) Opposite() UserRole {
	switch r {
	case UserRoleCreator:
		return UserRoleSponsor
	case UserRoleSponsor:
		return UserRoleCreator
	default:
		return ""
	}
}

// NormalizeEmail приводит email к виду, в котором он хранится
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
