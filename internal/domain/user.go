package domain

// User is a registered account. Password holds the Argon2id hash and is
// never serialized.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Fullname string `json:"fullname"`
}
