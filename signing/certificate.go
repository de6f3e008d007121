package signing

// Certificate is a candidate outcome accumulating signing weight. The name
// is display-only, fixed at construction.
type Certificate struct {
	Name   string `json:"name"`
	Weight uint64 `json:"weight"`
}

// CertificateStore is the ordered, fixed-length list of certificates for a
// session. The only mutation after construction is incrementing weights.
//
// Like Registry it carries no lock of its own, the engine serializes access.
type CertificateStore struct {
	certs []Certificate
}

func NewCertificateStore(names []string) *CertificateStore {
	certs := make([]Certificate, len(names))
	for i, name := range names {
		certs[i] = Certificate{Name: name}
	}
	return &CertificateStore{certs: certs}
}

// Len returns the number of certificates.
func (s *CertificateStore) Len() int {
	return len(s.certs)
}

// AddWeight adds amount to the certificate at index.
func (s *CertificateStore) AddWeight(index int, amount uint64) error {
	if index < 0 || index >= len(s.certs) {
		return ErrOutOfRange
	}
	s.certs[index].Weight += amount
	return nil
}

// WeightAt returns the accumulated weight of the certificate at index.
func (s *CertificateStore) WeightAt(index int) (uint64, error) {
	if index < 0 || index >= len(s.certs) {
		return 0, ErrOutOfRange
	}
	return s.certs[index].Weight, nil
}

// NameAt returns the name of the certificate at index.
func (s *CertificateStore) NameAt(index int) (string, error) {
	if index < 0 || index >= len(s.certs) {
		return "", ErrOutOfRange
	}
	return s.certs[index].Name, nil
}
