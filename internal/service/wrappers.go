package service

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ContactServiceWrapper is the ContactService counterpart of AuthServiceWrapper.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}

// PasswordHasher hashes passwords for storage and checks candidates against
// stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// IDGenerator produces unique string identifiers.
type IDGenerator interface {
	Generate() string
}
