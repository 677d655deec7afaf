package services

import (
	"strings"
	"testing"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newComplaintFixture(t *testing.T) (*gorm.DB, *ComplaintService) {
	t.Helper()
	db := newTestDB(t)
	svc := NewComplaintService(db, repository.NewComplaintRepository(db), repository.NewActivityRepository(db))
	return db, svc
}

func TestCreateComplaint(t *testing.T) {
	db, svc := newComplaintFixture(t)
	u := seedUser(t, db, "ticket@example.com", entity.RoleCustomer)

	c, err := svc.Create(u.ID, &CreateComplaintIn{
		Category: "delivery",
		Title:    "Meal arrived cold",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.ComplaintNumber, "CMP-"))
	assert.Equal(t, entity.ComplaintOpen, c.Status)
	assert.Equal(t, "normal", c.Priority, "priority defaults when omitted")

	mine, err := svc.ListForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, c.ID, mine[0].ID)
}

func TestComplaintListFilter(t *testing.T) {
	db, svc := newComplaintFixture(t)
	u := seedUser(t, db, "many@example.com", entity.RoleCustomer)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(u.ID, &CreateComplaintIn{Category: "food", Title: "t"})
		require.NoError(t, err)
	}
	resolved, err := svc.Create(u.ID, &CreateComplaintIn{Category: "food", Title: "done"})
	require.NoError(t, err)
	staff := seedUser(t, db, "staff@example.com", entity.RoleSupport)
	require.NoError(t, svc.UpdateStatus(staff.ID, resolved.ID, entity.ComplaintResolved))

	open, total, err := svc.List(entity.ComplaintOpen, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, open, 3)

	all, total, err := svc.List("", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, all, 4)
}

func TestComplaintUpdateStatus(t *testing.T) {
	db, svc := newComplaintFixture(t)
	u := seedUser(t, db, "upd@example.com", entity.RoleCustomer)
	staff := seedUser(t, db, "agent@example.com", entity.RoleSupport)

	c, err := svc.Create(u.ID, &CreateComplaintIn{Category: "billing", Title: "double charge"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(staff.ID, c.ID, entity.ComplaintInProgress))

	var after entity.Complaint
	require.NoError(t, db.First(&after, c.ID).Error)
	assert.Equal(t, entity.ComplaintInProgress, after.Status)

	var log entity.ActivityLog
	require.NoError(t, db.Where("action = ?", "complaint_status").First(&log).Error)
	assert.Equal(t, staff.ID, log.ActorID)
	assert.Equal(t, c.ID, log.TargetID)

	assert.Error(t, svc.UpdateStatus(staff.ID, c.ID, "vanished"))
	assert.Error(t, svc.UpdateStatus(staff.ID, 9999, entity.ComplaintClosed))
}
