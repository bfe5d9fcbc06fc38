package category

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/notepod/core/internal/database"
	"github.com/notepod/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "无法创建测试数据库")
	require.NoError(t, database.Migrate(db), "数据库迁移失败")
	return NewService(db), db
}

func TestCreateAndList(t *testing.T) {
	svc, _ := newTestService(t)

	work, err := svc.Create(&CreateCategoryDTO{Name: "工作"})
	require.NoError(t, err)
	require.NotNil(t, work)
	assert.NotZero(t, work.ID)

	_, err = svc.Create(&CreateCategoryDTO{Name: "生活"})
	require.NoError(t, err)

	cats, err := svc.List()
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "工作", cats[0].Name)
	assert.Equal(t, "生活", cats[1].Name)
}

func TestCreateDuplicateName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(&CreateCategoryDTO{Name: "工作"})
	require.NoError(t, err)

	_, err = svc.Create(&CreateCategoryDTO{Name: "工作"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService(t)

	cat, err := svc.Create(&CreateCategoryDTO{Name: "旧名"})
	require.NoError(t, err)

	updated, err := svc.Update(cat.ID, &UpdateCategoryDTO{Name: "新名"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "新名", updated.Name)

	missing, err := svc.Update(99999, &UpdateCategoryDTO{Name: "x"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteDetachesNotes(t *testing.T) {
	svc, db := newTestService(t)

	cat, err := svc.Create(&CreateCategoryDTO{Name: "工作"})
	require.NoError(t, err)

	note := models.NoteModel{UserID: 1, Title: "t", Content: "c", CategoryID: &cat.ID}
	require.NoError(t, db.Create(&note).Error)

	require.NoError(t, svc.Delete(cat.ID))

	gone, err := svc.GetByID(cat.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var reloaded models.NoteModel
	require.NoError(t, db.First(&reloaded, note.ID).Error)
	assert.Nil(t, reloaded.CategoryID)
}

func TestDeleteDetachesTrashedNotes(t *testing.T) {
	svc, db := newTestService(t)

	cat, err := svc.Create(&CreateCategoryDTO{Name: "工作"})
	require.NoError(t, err)

	note := models.NoteModel{UserID: 1, Title: "t", Content: "c", CategoryID: &cat.ID}
	require.NoError(t, db.Create(&note).Error)
	require.NoError(t, db.Delete(&models.NoteModel{}, note.ID).Error)

	require.NoError(t, svc.Delete(cat.ID))

	// A trashed note must not keep pointing at the deleted category: a later
	// restore would resurrect it with a dangling reference.
	var reloaded models.NoteModel
	require.NoError(t, db.Unscoped().First(&reloaded, note.ID).Error)
	require.True(t, reloaded.DeletedAt.Valid)
	assert.Nil(t, reloaded.CategoryID)
}
