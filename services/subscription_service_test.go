package services

import (
	"testing"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubFixture(t *testing.T) (*gorm.DB, *SubscriptionService, uint) {
	t.Helper()
	db := newTestDB(t)
	svc := NewSubscriptionService(db, repository.NewSubscriptionRepository(db))
	plan := entity.SubscriptionPlan{Name: "Starter", MealsPerWeek: 4, FinalPrice: 6999}
	require.NoError(t, db.Create(&plan).Error)
	return db, svc, plan.ID
}

func TestSubscribeSingleActive(t *testing.T) {
	db, svc, planID := newSubFixture(t)
	u := seedUser(t, db, "subs@example.com", entity.RoleCustomer)

	sub, err := svc.Subscribe(u.ID, planID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionActive, sub.Status)

	_, err = svc.Subscribe(u.ID, planID)
	assert.Error(t, err, "second active subscription refused")

	// cancelling frees the slot
	require.NoError(t, svc.Cancel(u.ID, sub.ID))
	again, err := svc.Subscribe(u.ID, planID)
	require.NoError(t, err)
	assert.NotEqual(t, sub.ID, again.ID)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	db, svc, _ := newSubFixture(t)
	u := seedUser(t, db, "noplan@example.com", entity.RoleCustomer)

	_, err := svc.Subscribe(u.ID, 9999)
	assert.Error(t, err)
}

func TestCancelOtherUsersSubscription(t *testing.T) {
	db, svc, planID := newSubFixture(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleCustomer)
	intruder := seedUser(t, db, "intruder@example.com", entity.RoleCustomer)

	sub, err := svc.Subscribe(owner.ID, planID)
	require.NoError(t, err)

	err = svc.Cancel(intruder.ID, sub.ID)
	assert.Error(t, err)

	var after entity.Subscription
	require.NoError(t, db.First(&after, sub.ID).Error)
	assert.Equal(t, entity.SubscriptionActive, after.Status)
}

func TestCancelIsIdempotent(t *testing.T) {
	db, svc, planID := newSubFixture(t)
	u := seedUser(t, db, "twice@example.com", entity.RoleCustomer)

	sub, err := svc.Subscribe(u.ID, planID)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(u.ID, sub.ID))
	require.NoError(t, svc.Cancel(u.ID, sub.ID))

	var after entity.Subscription
	require.NoError(t, db.First(&after, sub.ID).Error)
	assert.Equal(t, entity.SubscriptionCancelled, after.Status)
	assert.NotNil(t, after.EndDate)
}
