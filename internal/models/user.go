package models

// Credentials — учётные данные пользователя из замоканного списка.
// Используются только локальным логином для сравнения.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// PasswordHash — необязательный bcrypt-хэш. Если задан,
	// проверка пароля идёт по хэшу, а не по открытому значению.
	PasswordHash string `json:"password_hash,omitempty"`
	MD5          string `json:"md5,omitempty"`
	SHA1         string `json:"sha1,omitempty"`
}

// User — модель пользователя в системе.
type User struct {
	ID        int         `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Login     Credentials `json:"login"`
}
