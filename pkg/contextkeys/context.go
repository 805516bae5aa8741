package contextkeys

// Ключи, под которыми AuthMiddleware кладет личность пользователя в gin.Context.
// gin.Context хранит значения по строковым ключам, поэтому тип строковый.
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
	UserRoleKey  = "role"
)
