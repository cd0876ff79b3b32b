package keystore

import "github.com/stretchr/testify/mock"

var _ ClientInterface = (*MockClient)(nil)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) CopyToClipboard(secret string) error {
	args := m.Called(secret)
	return args.Error(0)
}

func (m *MockClient) Save(account, secret string) error {
	args := m.Called(account, secret)
	return args.Error(0)
}

func (m *MockClient) Load(account string) (string, error) {
	args := m.Called(account)
	return args.String(0), args.Error(1)
}
