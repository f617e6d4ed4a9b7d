package user

// Credentials maps email to plaintext password, one entry per registered user.
// Emails are case sensitive and stored as typed.
type Credentials map[string]string

func (c Credentials) Has(email string) bool {
	_, ok := c[email]
	return ok
}
