package infrastructure

import "sync"

type SMTPMock struct {
	calledSend    bool
	calledSendBCC bool
	lastAddress   string
	lastAddresses []string
	lastSubject   string
	lastBody      string
	mu            sync.Mutex
}

func (s *SMTPMock) Send(address, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calledSend = true
	s.lastAddress = address
	s.lastSubject = subject
	s.lastBody = body
	return nil
}

func (s *SMTPMock) SendBCC(addresses []string, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calledSendBCC = true
	s.lastAddresses = addresses
	s.lastSubject = subject
	s.lastBody = body
	return nil
}

func (s *SMTPMock) From() string {
	return ""
}

func (s *SMTPMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calledSend
}

func (s *SMTPMock) CalledSendBCC() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calledSendBCC
}

func (s *SMTPMock) LastAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastAddress
}

func (s *SMTPMock) LastAddresses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastAddresses
}

func (s *SMTPMock) LastSubject() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSubject
}

func (s *SMTPMock) LastBody() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastBody
}
