package store

// UseCheapScrypt lowers the scrypt cost so keystore tests run quickly.
func (s *IdentityFileStore) UseCheapScrypt() {
	s.params = scryptParams{N: 1 << 10, R: 8, P: 1}
}
