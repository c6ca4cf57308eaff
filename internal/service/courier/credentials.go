package courier

import "dispatch/internal/entities"

// LookupVerifier accepts any password. Finding the record by user name is
// the whole credential check, which is how the dispatch desk operates today.
type LookupVerifier struct{}

func (LookupVerifier) Verify(_ *entities.Courier, _ string) bool {
	return true
}

// PlaintextVerifier compares the presented password against the stored one.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(courier *entities.Courier, password string) bool {
	if courier == nil {
		return false
	}
	return courier.Password == password
}
