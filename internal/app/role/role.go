package role

// Role определяет уровень доступа пользователя портала
type Role int

const (
	Customer Role = iota // обычный клиент портала
	Manager              // сотрудник, модерирует комментарии
	Admin                // полный доступ
)

func (r Role) String() string {
	switch r {
	case Customer:
		return "customer"
	case Manager:
		return "manager"
	case Admin:
		return "admin"
	}
	return "unknown"
}
