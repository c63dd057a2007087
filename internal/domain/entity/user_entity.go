package entity

// User is a row in the credential store. Password holds the bcrypt hash,
// never the plaintext. Role is assigned at registration, not caller-supplied.
type User struct {
	ID       int64
	Role     string
	Name     string
	Lastname string
	Email    string
	Password string
	Address  string
	City     string
	Phone    string
	Image    []byte
}
