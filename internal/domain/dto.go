package domain

type CommissionStatusType string

const (
	CommissionStatusPending   CommissionStatusType = "pending"
	CommissionStatusPaid      CommissionStatusType = "paid"
	CommissionStatusCancelled CommissionStatusType = "cancelled"
)

// ValidCommissionStatus проверяет что статус входит в список допустимых.
// Статусы переключаются только явным действием администратора.
func ValidCommissionStatus(s CommissionStatusType) bool {
	switch s {
	case CommissionStatusPending, CommissionStatusPaid, CommissionStatusCancelled:
		return true
	default:
		return false
	}
}
