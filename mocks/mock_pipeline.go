package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cargoscan/internal/acquire"
	"cargoscan/internal/domain"
)

// MockTextAcquirer is a mock implementation of service.TextAcquirer.
type MockTextAcquirer struct {
	mock.Mock
}

func (m *MockTextAcquirer) Acquire(ctx context.Context, doc domain.RawDocument, forceOCR bool) (acquire.AcquiredText, error) {
	args := m.Called(ctx, doc, forceOCR)
	return args.Get(0).(acquire.AcquiredText), args.Error(1)
}

// MockDocumentClassifier is a mock implementation of service.DocumentClassifier.
type MockDocumentClassifier struct {
	mock.Mock
}

func (m *MockDocumentClassifier) Classify(text string) domain.DocumentType {
	args := m.Called(text)
	return args.Get(0).(domain.DocumentType)
}

// MockFieldExtractor is a mock implementation of service.FieldExtractor.
type MockFieldExtractor struct {
	mock.Mock
}

func (m *MockFieldExtractor) Extract(docType domain.DocumentType, text string) domain.FieldRecord {
	args := m.Called(docType, text)
	return args.Get(0).(domain.FieldRecord)
}

func (m *MockFieldExtractor) Fields(docType domain.DocumentType) []string {
	args := m.Called(docType)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
