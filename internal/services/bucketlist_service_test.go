package services

import (
	"context"
	"testing"
	"time"

	"github.com/Malcolmdebono/Bucket-list-application/internal/models"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryBucketStore struct {
	lists  map[primitive.ObjectID]models.BucketList
	points map[primitive.ObjectID]models.BucketListPoint
}

func newMemoryBucketStore() *memoryBucketStore {
	return &memoryBucketStore{
		lists:  make(map[primitive.ObjectID]models.BucketList),
		points: make(map[primitive.ObjectID]models.BucketListPoint),
	}
}

func (m *memoryBucketStore) ListViews(ctx context.Context, userID string) ([]models.BucketListView, error) {
	views := []models.BucketListView{}
	for id := range m.lists {
		if userID != "" && m.lists[id].UserID != userID {
			continue
		}
		view, _ := m.GetViewByID(ctx, id)
		views = append(views, *view)
	}
	return views, nil
}

func (m *memoryBucketStore) GetViewByID(ctx context.Context, id primitive.ObjectID) (*models.BucketListView, error) {
	list, ok := m.lists[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	view := models.BucketListView{ID: list.ID, UserID: list.UserID, Title: list.Title, Points: []models.BucketListPoint{}}
	for _, pid := range list.PointIDs {
		if p, ok := m.points[pid]; ok {
			view.Points = append(view.Points, p)
		}
	}
	return &view, nil
}

func (m *memoryBucketStore) InsertPoints(ctx context.Context, points []models.BucketListPoint) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, len(points))
	for i, p := range points {
		m.points[p.ID] = p
		ids[i] = p.ID
	}
	return ids, nil
}

func (m *memoryBucketStore) CreateBucketList(ctx context.Context, list *models.BucketList) (primitive.ObjectID, error) {
	list.ID = primitive.NewObjectID()
	m.lists[list.ID] = *list
	return list.ID, nil
}

func (m *memoryBucketStore) ReplacePoints(ctx context.Context, id primitive.ObjectID, title string, points []models.BucketListPoint) error {
	list, ok := m.lists[id]
	if !ok {
		return mongo.ErrNoDocuments
	}

	newIDs := make([]primitive.ObjectID, len(points))
	for i, p := range points {
		m.points[p.ID] = p
		newIDs[i] = p.ID
	}
	for _, old := range list.PointIDs {
		delete(m.points, old)
	}

	list.Title = title
	list.PointIDs = newIDs
	m.lists[id] = list
	return nil
}

func TestCreateBucketItemValidation(t *testing.T) {
	service := NewBucketListService(newMemoryBucketStore())
	ctx := context.Background()

	point := models.PointInput{PointName: "P", Status: false, Deadline: "2025-01-01"}

	_, err := service.CreateBucketItem(ctx, CreateBucketItemInput{UserID: "u1", Points: []models.PointInput{point}})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.CreateBucketItem(ctx, CreateBucketItemInput{Title: "T", Points: []models.PointInput{point}})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.CreateBucketItem(ctx, CreateBucketItemInput{Title: "T", UserID: "u1"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.CreateBucketItem(ctx, CreateBucketItemInput{
		Title:  "T",
		UserID: "u1",
		Points: []models.PointInput{{PointName: "P", Deadline: "not-a-date"}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBucketItemRoundTrip(t *testing.T) {
	store := newMemoryBucketStore()
	service := NewBucketListService(store)
	ctx := context.Background()

	view, err := service.CreateBucketItem(ctx, CreateBucketItemInput{
		Title:  "T",
		UserID: "u1",
		Points: []models.PointInput{{PointName: "P", Status: false, Deadline: "2025-01-01"}},
	})
	require.NoError(t, err)
	require.Equal(t, "T", view.Title)
	require.Equal(t, "u1", view.UserID)
	require.Len(t, view.Points, 1)
	require.Equal(t, "P", view.Points[0].PointName)
	require.Equal(t, models.StatusPending, view.Points[0].Status)
	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), view.Points[0].Deadline)

	views, err := service.ListBucketItems(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "T", views[0].Title)
}

func TestUpdateBucketItemReplacesPointSet(t *testing.T) {
	store := newMemoryBucketStore()
	service := NewBucketListService(store)
	ctx := context.Background()

	created, err := service.CreateBucketItem(ctx, CreateBucketItemInput{
		Title:  "Trip",
		UserID: "u1",
		Points: []models.PointInput{
			{PointName: "Old A", Status: true, Deadline: "2025-01-01"},
			{PointName: "Old B", Status: false, Deadline: "2025-02-01"},
		},
	})
	require.NoError(t, err)

	updated, err := service.UpdateBucketItem(ctx, created.ID.Hex(), UpdateBucketItemInput{
		Title:  "Trip v2",
		Points: []models.PointInput{{PointName: "New", Status: true, Deadline: "2025-03-01"}},
	})
	require.NoError(t, err)
	require.Equal(t, "Trip v2", updated.Title)
	require.Len(t, updated.Points, 1)
	require.Equal(t, "New", updated.Points[0].PointName)
	require.Equal(t, models.StatusDone, updated.Points[0].Status)

	// The old points are gone from storage, not just unreferenced.
	require.Len(t, store.points, 1)
}

func TestUpdateBucketItemNotFound(t *testing.T) {
	service := NewBucketListService(newMemoryBucketStore())
	ctx := context.Background()

	input := UpdateBucketItemInput{
		Title:  "T",
		Points: []models.PointInput{{PointName: "P", Deadline: "2025-01-01"}},
	}

	_, err := service.UpdateBucketItem(ctx, "not-a-hex-id", input)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = service.UpdateBucketItem(ctx, primitive.NewObjectID().Hex(), input)
	require.ErrorIs(t, err, ErrNotFound)
}
