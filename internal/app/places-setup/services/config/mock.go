package config

import "github.com/stretchr/testify/mock"

var _ ServiceInterface = (*MockService)(nil)

type MockService struct {
	mock.Mock
}

func (m *MockService) GetConfig() *Config {
	args := m.Called()
	return args.Get(0).(*Config) //nolint:errcheck // mock always returns *Config
}

func (m *MockService) Source() string {
	args := m.Called()
	return args.String(0)
}
