package mocks

import (
	"testing"

	"fooddash/analytics-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t *testing.T) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StoreInterface) RecordOrder(msg domain.EventMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *StoreInterface) RecordRating(msg domain.EventMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}
