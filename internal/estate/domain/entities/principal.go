package entities

// Principal представляет аутентифицированного отправителя запроса.
// Передается явным аргументом по цепочке вызовов, а не через
// глобальное состояние запроса.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}
