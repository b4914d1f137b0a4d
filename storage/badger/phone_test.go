package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietphone/phonerec/catalog"
	"github.com/vietphone/phonerec/storage"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func samplePhone(name, link string, price float64) *catalog.Phone {
	return catalog.NewPhone(name, link, price, catalog.DescriptionFromMap(map[string]string{
		catalog.AttrBattery: "4500 mAh",
		catalog.AttrRAM:     "8 GB",
	}))
}

func TestSaveAndFindByLink(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	phone := samplePhone("iPhone 15 Pro", "https://cellphones.com.vn/iphone-15-pro.html", 28_000_000)
	require.NoError(t, repo.SavePhone(ctx, phone))

	got, err := repo.FindByLink(ctx, phone.Link)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro", got.Name)
	assert.Equal(t, 28_000_000.0, got.Price)
	assert.Equal(t, "4500 mAh", got.Description.Battery())

	_, err = repo.FindByLink(ctx, "https://cellphones.com.vn/missing.html")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSaveValidates(t *testing.T) {
	repo := openTestRepo(t)

	err := repo.SavePhone(context.Background(), samplePhone("NoLink", "", 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidPhone)
}

func TestFindByNameUsesIndex(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SavePhone(ctx, samplePhone("Samsung Galaxy S24", "link-s24", 22_000_000)))

	got, err := repo.FindByName(ctx, "samsung galaxy s24")
	require.NoError(t, err)
	assert.Equal(t, "link-s24", got.Link)

	_, err = repo.FindByName(ctx, "Samsung Galaxy S25")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRenameDropsOldNameIndex(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	link := "link-rename"
	require.NoError(t, repo.SavePhone(ctx, samplePhone("Old Name", link, 1)))
	require.NoError(t, repo.SavePhone(ctx, samplePhone("New Name", link, 1)))

	_, err := repo.FindByName(ctx, "Old Name")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := repo.FindByName(ctx, "New Name")
	require.NoError(t, err)
	assert.Equal(t, link, got.Link)
}

func TestSavePhonesBatchAndGetAll(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SavePhones(ctx, []*catalog.Phone{
		samplePhone("A", "link-a", 1),
		samplePhone("B", "link-b", 2),
		samplePhone("C", "link-c", 3),
	}))

	phones, err := repo.GetAllPhones(ctx)
	require.NoError(t, err)
	assert.Len(t, phones, 3)
}

func TestSearchPhones(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SavePhones(ctx, []*catalog.Phone{
		samplePhone("Điện thoại Xiaomi 14", "link-x14", 1),
		samplePhone("iPhone 15", "link-ip", 2),
	}))

	got, err := repo.SearchPhones(ctx, "DIEN THOAI")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "link-x14", got[0].Link)

	all, err := repo.SearchPhones(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeletePhone(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	phone := samplePhone("Oppo Find N3", "link-n3", 40_000_000)
	require.NoError(t, repo.SavePhone(ctx, phone))

	require.NoError(t, repo.DeletePhone(ctx, phone.Link))

	_, err := repo.FindByLink(ctx, phone.Link)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.FindByName(ctx, phone.Name)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, repo.DeletePhone(ctx, phone.Link), storage.ErrNotFound)
}

func TestUpdateViewCount(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	phone := samplePhone("Vivo V30", "link-v30", 8_000_000)
	require.NoError(t, repo.SavePhone(ctx, phone))

	count, err := repo.UpdateViewCount(ctx, phone.Link)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.UpdateViewCount(ctx, phone.Link)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := repo.FindByLink(ctx, phone.Link)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)

	_, err = repo.UpdateViewCount(ctx, "missing-link")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClosedBackendRejectsCalls(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = repo.GetAllPhones(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
