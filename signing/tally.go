package signing

// Leading returns the index of the certificate with the most accumulated
// weight. The scan runs in store order and only a strictly greater weight
// replaces the tracked maximum, so ties resolve to the earliest index. An
// empty store or one with no weight at all yields index 0.
func (s *CertificateStore) Leading() int {
	leading, max := 0, uint64(0)
	for i, cert := range s.certs {
		if cert.Weight > max {
			leading, max = i, cert.Weight
		}
	}
	return leading
}

// LeadingCertificate returns the index of the certificate currently holding
// the most accumulated weight, earliest index winning ties.
func (e *Engine) LeadingCertificate() int {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return e.certs.Leading()
}

// LeadingCertificateName returns the name of the leading certificate. It
// fails with ErrOutOfRange only when the session has no certificates.
func (e *Engine) LeadingCertificateName() (string, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return e.certs.NameAt(e.certs.Leading())
}
