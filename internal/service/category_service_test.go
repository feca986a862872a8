package service

import (
	"context"
	"testing"

	"pos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(t *testing.T) CategoryService {
	t.Helper()
	return NewCategoryService(repository.NewCategoryRepository(newTestDB(t)))
}

func TestCreateCategory(t *testing.T) {
	svc := newCategoryService(t)

	created, err := svc.CreateCategory(context.Background(), CreateCategoryRequest{Name: "Food", TaxRate: "0.05"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Food", created.Name)
	assert.Equal(t, "0.0500", created.TaxRate)
}

func TestCreateCategory_Validation(t *testing.T) {
	svc := newCategoryService(t)

	cases := []struct {
		name    string
		req     CreateCategoryRequest
		wantMsg string
	}{
		{"blank name", CreateCategoryRequest{Name: "   ", TaxRate: "0.05"}, "must not be empty"},
		{"rate above one", CreateCategoryRequest{Name: "Food", TaxRate: "1.5"}, "between 0 and 1"},
		{"negative rate", CreateCategoryRequest{Name: "Food", TaxRate: "-0.1"}, "between 0 and 1"},
		{"garbage rate", CreateCategoryRequest{Name: "Food", TaxRate: "five"}, "invalid tax_rate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCategory(context.Background(), tc.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestCreateCategory_DuplicateNameRejected(t *testing.T) {
	svc := newCategoryService(t)

	_, err := svc.CreateCategory(context.Background(), CreateCategoryRequest{Name: "Food", TaxRate: "0.05"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), CreateCategoryRequest{Name: "Food", TaxRate: "0.10"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateCategory(t *testing.T) {
	svc := newCategoryService(t)

	created, err := svc.CreateCategory(context.Background(), CreateCategoryRequest{Name: "Food", TaxRate: "0.05"})
	require.NoError(t, err)

	// Keeping its own name is not a conflict.
	updated, err := svc.UpdateCategory(context.Background(), created.ID, UpdateCategoryRequest{Name: "Food", TaxRate: "0.10"})
	require.NoError(t, err)
	assert.Equal(t, "0.1000", updated.TaxRate)

	// Renaming onto another category is.
	other, err := svc.CreateCategory(context.Background(), CreateCategoryRequest{Name: "Books", TaxRate: "0.00"})
	require.NoError(t, err)

	_, err = svc.UpdateCategory(context.Background(), other.ID, UpdateCategoryRequest{Name: "Food", TaxRate: "0.00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateCategory_NotFound(t *testing.T) {
	svc := newCategoryService(t)

	_, err := svc.UpdateCategory(context.Background(), 42, UpdateCategoryRequest{Name: "Food", TaxRate: "0.05"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteCategory_NotFound(t *testing.T) {
	svc := newCategoryService(t)

	err := svc.DeleteCategory(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetCategories_OrderedByName(t *testing.T) {
	svc := newCategoryService(t)

	for _, name := range []string{"Snacks", "Books", "Food"} {
		_, err := svc.CreateCategory(context.Background(), CreateCategoryRequest{Name: name, TaxRate: "0.05"})
		require.NoError(t, err)
	}

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Books", categories[0].Name)
	assert.Equal(t, "Food", categories[1].Name)
	assert.Equal(t, "Snacks", categories[2].Name)
}
