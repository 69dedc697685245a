package usecase

import "github.com/stretchr/testify/mock"

type mockRoller struct {
	mock.Mock
}

func newMockRoller(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockRoller {
	m := &mockRoller{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (that *mockRoller) Roll() int {
	args := that.Called()

	return args.Int(0)
}
