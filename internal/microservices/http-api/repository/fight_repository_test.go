package repository

import (
	"context"
	"testing"
	"time"

	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratedRow struct {
	ID         int64
	Average    float64
	Count      int64
	UserRating *int
}

func projectRows(list []models.FightWithRating) []ratedRow {
	out := make([]ratedRow, 0, len(list))
	for _, f := range list {
		out = append(out, ratedRow{ID: f.ID, Average: f.AverageRating, Count: f.RatingCount, UserRating: f.UserRating})
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestFightRepo_ListWithRatings(t *testing.T) {
	db := newTestDB(t)
	fights := NewFightRepo(db)
	ratings := NewRatingRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	base := time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)
	older := seedFight(t, db, "Chandler", "Oliveira", base.AddDate(0, -1, 0))
	newer := seedFight(t, db, "Pereira", "Hill", base)

	_, err := ratings.Upsert(ctx, alice.ID, newer.ID, 4)
	require.NoError(t, err)
	_, err = ratings.Upsert(ctx, bob.ID, newer.ID, 2)
	require.NoError(t, err)

	tests := []struct {
		name     string
		viewerID string
		want     []ratedRow
	}{
		{
			name:     "alice",
			viewerID: alice.ID,
			want: []ratedRow{
				{ID: newer.ID, Average: 3, Count: 2, UserRating: intPtr(4)},
				{ID: older.ID, Average: 0, Count: 0},
			},
		},
		{
			name:     "bob",
			viewerID: bob.ID,
			want: []ratedRow{
				{ID: newer.ID, Average: 3, Count: 2, UserRating: intPtr(2)},
				{ID: older.ID, Average: 0, Count: 0},
			},
		},
		{
			name:     "anonymous",
			viewerID: "",
			want: []ratedRow{
				{ID: newer.ID, Average: 3, Count: 2},
				{ID: older.ID, Average: 0, Count: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := fights.ListWithRatings(ctx, tt.viewerID, nil)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, projectRows(list)); diff != "" {
				t.Errorf("ListWithRatings mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("static fields", func(t *testing.T) {
		list, err := fights.ListWithRatings(ctx, "", nil)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Pereira", list[0].Fighter1)
		assert.Equal(t, "Hill", list[0].Fighter2)
		assert.True(t, list[0].Date.Equal(base))
	})
}

func TestFightRepo_ListWithRatings_Empty(t *testing.T) {
	db := newTestDB(t)

	list, err := NewFightRepo(db).ListWithRatings(context.Background(), "", nil)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestFightRepo_ListWithRatings_ByEvent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fights := NewFightRepo(db)

	event := &models.Event{Title: "UFC 300", Promotion: models.DefaultPromotion, Date: time.Now()}
	require.NoError(t, NewEventRepo(db).Create(ctx, event))

	onCard := &models.Fight{EventID: &event.ID, Title: "Main event", Fighter1: "Pereira", Fighter2: "Hill", Date: event.Date}
	require.NoError(t, fights.Create(ctx, onCard))
	seedFight(t, db, "Nurmagomedov", "McGregor", time.Now().AddDate(-6, 0, 0))

	list, err := fights.ListWithRatings(ctx, "", &event.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, onCard.ID, list[0].ID)
	require.NotNil(t, list[0].EventID)
	assert.Equal(t, event.ID, *list[0].EventID)
}

func TestFightRepo_GetWithRating(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fights := NewFightRepo(db)

	user := seedUser(t, db, "alice")
	fight := seedFight(t, db, "Usman", "Edwards", time.Now())
	_, err := NewRatingRepository(db).Upsert(ctx, user.ID, fight.ID, 5)
	require.NoError(t, err)

	got, err := fights.GetWithRating(ctx, user.ID, fight.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.AverageRating)
	require.NotNil(t, got.UserRating)
	assert.Equal(t, 5, *got.UserRating)

	_, err = fights.GetWithRating(ctx, user.ID, fight.ID+100)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFightRepo_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fights := NewFightRepo(db)

	user := seedUser(t, db, "alice")
	fight := seedFight(t, db, "Aldo", "Mendes", time.Now())

	update := &models.Fight{Title: "Rematch", Fighter1: "Aldo", Fighter2: "Mendes", Date: fight.Date.AddDate(1, 0, 0)}
	require.NoError(t, fights.Update(ctx, fight.ID, update))

	stored, err := fights.GetByID(ctx, fight.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rematch", stored.Title)

	assert.ErrorIs(t, fights.Update(ctx, fight.ID+100, update), shared.ErrNotFound)

	_, err = NewRatingRepository(db).Upsert(ctx, user.ID, fight.ID, 3)
	require.NoError(t, err)
	require.NoError(t, NewCommentRepository(db).Create(ctx, &models.Comment{UserID: user.ID, FightID: fight.ID, Content: "classic"}))

	require.NoError(t, fights.Delete(ctx, fight.ID))

	exists, err := fights.Exists(ctx, fight.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, int64(0), countRatings(t, db), "ratings cascade with the fight")

	comments, err := NewCommentRepository(db).CountByFight(ctx, fight.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), comments)

	assert.ErrorIs(t, fights.Delete(ctx, fight.ID), shared.ErrNotFound)
}
