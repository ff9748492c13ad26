package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"rutvans_api/internal/domain/entities"
	mock_interfaces "rutvans_api/internal/usecase/interfaces/mocks"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSaleUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISaleRepository(ctrl)
	uc := NewSaleUseCase(repo, nil, nil)

	repo.EXPECT().List(gomock.Any(), ListLimit).Return([]entities.Sale{{ID: "1"}}, nil)

	got, err := uc.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %v %v", got, err)
	}
}

func TestSaleUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSaleID) {
			t.Fatalf("expected ErrInvalidSaleID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Sale{}, nil)

		_, err := uc.GetByID(context.Background(), "v-1")
		if !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Sale{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "v-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSaleUseCase_Create(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("defaults createdAt to now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil, nil)
		uc.now = fixedClock(now)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Sale) (entities.Sale, error) {
			return s, nil
		})

		got, err := uc.Create(context.Background(), entities.Sale{Folio: "F-1", Amount: amountPtr(10)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected generated id")
		}
		if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
			t.Fatalf("unexpected timestamps: %s %s", got.CreatedAt, got.UpdatedAt)
		}
	})

	t.Run("keeps explicit createdAt in utc", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil, nil)
		uc.now = fixedClock(now)

		cst := time.FixedZone("CST", -6*60*60)
		created := time.Date(2024, 4, 30, 20, 0, 0, 0, cst)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Sale) (entities.Sale, error) {
			return s, nil
		})

		got, err := uc.Create(context.Background(), entities.Sale{CreatedAt: created})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CreatedAt.Location() != time.UTC || !got.CreatedAt.Equal(created) {
			t.Fatalf("unexpected createdAt: %s", got.CreatedAt)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Sale{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), entities.Sale{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSaleUseCase_Update(t *testing.T) {
	now := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Sale{}, nil)

		_, err := uc.Update(context.Background(), "v-1", SalePatch{})
		if !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
	})

	t.Run("applies only provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil, nil)
		uc.now = fixedClock(now)

		existing := entities.Sale{ID: "v-1", Folio: "F-1", RouteLabel: "Norte", Amount: amountPtr(10)}
		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Sale) (entities.Sale, error) {
			return s, nil
		})

		status := "pagado"
		got, err := uc.Update(context.Background(), "v-1", SalePatch{Status: &status, Amount: amountPtr(12.5)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Folio != "F-1" || got.RouteLabel != "Norte" || got.Status != "pagado" {
			t.Fatalf("unexpected fields: %+v", got)
		}
		if got.EffectiveAmount() != 12.5 || !got.UpdatedAt.Equal(now) {
			t.Fatalf("unexpected amount or updatedAt: %+v", got)
		}
	})
}

func TestSaleUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil, nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidSaleID) {
			t.Fatalf("expected ErrInvalidSaleID, got %v", err)
		}
	})

	t.Run("missing id still succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), "v-9").Return(false, nil)

		if err := uc.Delete(context.Background(), "v-9"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), "v-1").Return(false, errors.New("db"))

		if err := uc.Delete(context.Background(), "v-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSaleUseCase_InvalidatesReports(t *testing.T) {
	t.Run("successful writes drop cached reports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		cache := mock_interfaces.NewMockIReportCache(ctrl)
		uc := NewSaleUseCase(repo, cache, nil)

		existing := entities.Sale{ID: "v-1", Amount: amountPtr(10)}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Sale) (entities.Sale, error) {
			return s, nil
		})
		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(existing, nil)
		repo.EXPECT().Delete(gomock.Any(), "v-1").Return(true, nil)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(3)

		if _, err := uc.Create(context.Background(), entities.Sale{Amount: amountPtr(5)}); err != nil {
			t.Fatalf("unexpected create error: %v", err)
		}
		if _, err := uc.Update(context.Background(), "v-1", SalePatch{Amount: amountPtr(7)}); err != nil {
			t.Fatalf("unexpected update error: %v", err)
		}
		if err := uc.Delete(context.Background(), "v-1"); err != nil {
			t.Fatalf("unexpected delete error: %v", err)
		}
	})

	t.Run("failed writes and missing deletes keep the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		cache := mock_interfaces.NewMockIReportCache(ctrl)
		uc := NewSaleUseCase(repo, cache, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Sale{}, errors.New("db"))
		repo.EXPECT().Delete(gomock.Any(), "v-9").Return(false, nil)

		if _, err := uc.Create(context.Background(), entities.Sale{}); err == nil {
			t.Fatalf("expected error")
		}
		if err := uc.Delete(context.Background(), "v-9"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalidation errors do not fail the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		cache := mock_interfaces.NewMockIReportCache(ctrl)
		uc := NewSaleUseCase(repo, cache, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Sale) (entities.Sale, error) {
			return s, nil
		})
		cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Create(context.Background(), entities.Sale{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
