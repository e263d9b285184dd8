// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/mock"
	"github.com/MKhiriev/go-campus-api/internal/store"
	"github.com/MKhiriev/go-campus-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStudentService(t *testing.T) (StudentService, *mock.MockStudentRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockStudentRepository(ctrl)
	return NewStudentService(repo, logger.Nop()), repo
}

func strPtr(s string) *string { return &s }

func TestCreateStudent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo := newStudentService(t)
		in := models.Student{Name: "Kim", Email: "kim@x.io"}

		repo.EXPECT().CreateStudent(gomock.Any(), in).Return(models.Student{ID: 1, Name: "Kim", Email: "kim@x.io"}, nil)

		out, err := svc.CreateStudent(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.ID)
	})

	t.Run("missing name", func(t *testing.T) {
		svc, _ := newStudentService(t)

		_, err := svc.CreateStudent(context.Background(), models.Student{Email: "kim@x.io"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("unknown course", func(t *testing.T) {
		svc, repo := newStudentService(t)

		repo.EXPECT().CreateStudent(gomock.Any(), gomock.Any()).Return(models.Student{}, store.ErrCourseNotFound)

		_, err := svc.CreateStudent(context.Background(), models.Student{Name: "Kim", Email: "kim@x.io"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestListStudents_AppliesDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   models.ListOptions
		want models.ListOptions
	}{
		{name: "zero values", in: models.ListOptions{}, want: models.ListOptions{Page: 1, Limit: 10}},
		{name: "negative values", in: models.ListOptions{Page: -2, Limit: -1, SortDesc: true}, want: models.ListOptions{Page: 1, Limit: 10, SortDesc: true}},
		{name: "kept", in: models.ListOptions{Page: 3, Limit: 25, IncludeCourse: true}, want: models.ListOptions{Page: 3, Limit: 25, IncludeCourse: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newStudentService(t)

			repo.EXPECT().ListStudents(gomock.Any(), tt.want).Return([]models.Student{}, nil)

			_, err := svc.ListStudents(context.Background(), tt.in)
			require.NoError(t, err)
		})
	}
}

func TestGetStudent_NotFound(t *testing.T) {
	svc, repo := newStudentService(t)

	repo.EXPECT().GetStudent(gomock.Any(), int64(9), true).Return(models.Student{}, store.ErrStudentNotFound)

	_, err := svc.GetStudent(context.Background(), 9, true)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestUpdateStudent(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		svc, repo := newStudentService(t)
		update := models.StudentUpdate{Name: strPtr("New")}

		repo.EXPECT().UpdateStudent(gomock.Any(), int64(2), update, false).Return(models.Student{ID: 2, Name: "New"}, nil)

		out, err := svc.UpdateStudent(context.Background(), 2, update, false)
		require.NoError(t, err)
		assert.Equal(t, "New", out.Name)
	})

	t.Run("empty update returns current", func(t *testing.T) {
		svc, repo := newStudentService(t)

		repo.EXPECT().GetStudent(gomock.Any(), int64(2), true).Return(models.Student{ID: 2, Name: "Old"}, nil)

		out, err := svc.UpdateStudent(context.Background(), 2, models.StudentUpdate{}, true)
		require.NoError(t, err)
		assert.Equal(t, "Old", out.Name)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _ := newStudentService(t)

		_, err := svc.UpdateStudent(context.Background(), 2, models.StudentUpdate{Name: strPtr(" ")}, false)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newStudentService(t)

		repo.EXPECT().UpdateStudent(gomock.Any(), int64(2), gomock.Any(), false).Return(models.Student{}, store.ErrStudentNotFound)

		_, err := svc.UpdateStudent(context.Background(), 2, models.StudentUpdate{Email: strPtr("e@x.io")}, false)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestDeleteStudent(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, repo := newStudentService(t)
		repo.EXPECT().DeleteStudent(gomock.Any(), int64(5)).Return(nil)
		assert.NoError(t, svc.DeleteStudent(context.Background(), 5))
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newStudentService(t)
		repo.EXPECT().DeleteStudent(gomock.Any(), int64(5)).Return(store.ErrStudentNotFound)
		assert.ErrorIs(t, svc.DeleteStudent(context.Background(), 5), ErrStudentNotFound)
	})

	t.Run("storage error", func(t *testing.T) {
		svc, repo := newStudentService(t)
		storeErr := errors.New("db down")
		repo.EXPECT().DeleteStudent(gomock.Any(), int64(5)).Return(storeErr)

		err := svc.DeleteStudent(context.Background(), 5)
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, ErrStudentNotFound)
	})
}
