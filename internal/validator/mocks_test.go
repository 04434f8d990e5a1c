package validator

import (
	"context"
	"time"

	"hrmedrecords/internal/domain"
)

// Моки хранилищ с настраиваемыми функциями, по образцу сервисных тестов.

type mockRecordReader struct {
	getByID        func(ctx context.Context, medicalRecordID int) (*domain.MedicalRecord, error)
	existsByFileID func(ctx context.Context, fileID int) (bool, error)
}

func (m *mockRecordReader) GetByID(ctx context.Context, medicalRecordID int) (*domain.MedicalRecord, error) {
	if m.getByID != nil {
		return m.getByID(ctx, medicalRecordID)
	}
	return nil, nil
}

func (m *mockRecordReader) ExistsByFileID(ctx context.Context, fileID int) (bool, error) {
	if m.existsByFileID != nil {
		return m.existsByFileID(ctx, fileID)
	}
	return false, nil
}

type mockStatusReader struct {
	existsByID func(ctx context.Context, statusID int) (bool, error)
	getByName  func(ctx context.Context, name string) (*domain.Status, error)
}

func (m *mockStatusReader) ExistsByID(ctx context.Context, statusID int) (bool, error) {
	if m.existsByID != nil {
		return m.existsByID(ctx, statusID)
	}
	return true, nil
}

func (m *mockStatusReader) GetByName(ctx context.Context, name string) (*domain.Status, error) {
	if m.getByName != nil {
		return m.getByName(ctx, name)
	}
	return &domain.Status{StatusID: 2, Name: domain.StatusInactive, Description: "The medical record was soft deleted"}, nil
}

type mockTypeReader struct {
	existsByID func(ctx context.Context, typeID int) (bool, error)
}

func (m *mockTypeReader) ExistsByID(ctx context.Context, typeID int) (bool, error) {
	if m.existsByID != nil {
		return m.existsByID(ctx, typeID)
	}
	return true, nil
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }
