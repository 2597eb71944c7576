package domain

// Account represents a registered user of the service. The password is stored
// verbatim and compared with exact equality on login; hashing is a known gap.
type Account struct {
	Username string
	Password string
}
