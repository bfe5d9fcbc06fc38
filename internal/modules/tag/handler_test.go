package tag

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/notepod/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, uint) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	r := gin.New()
	NewHandler(NewService(db)).RegisterRoutes(r.Group(""))
	// Seed one tagged active note.
	tags, err := Resolve(db, []string{"go"})
	require.NoError(t, err)
	note := models.NoteModel{UserID: 1, Title: "t", Content: "c"}
	require.NoError(t, db.Create(&note).Error)
	require.NoError(t, db.Create(&models.NoteTagModel{NoteID: note.ID, TagID: tags[0].ID}).Error)
	return r, tags[0].ID
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetTagByIDHTTP(t *testing.T) {
	r, tagID := newTestRouter(t)

	w := doGet(r, fmt.Sprintf("/tags/%d", tagID))
	require.Equal(t, http.StatusOK, w.Code)
	var got models.TagModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "go", got.Name)

	assert.Equal(t, http.StatusNotFound, doGet(r, "/tags/999").Code)
}

func TestGetTagByIDRejectsInvalidID(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, raw := range []string{"0", "abc", "-1"} {
		w := doGet(r, fmt.Sprintf("/tags/%s", raw))
		assert.Equal(t, http.StatusBadRequest, w.Code, "tagId=%s", raw)
	}
}

func TestListNotesByTagNameHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doGet(r, "/tags/name/go/notes")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []taggedNote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, []string{"go"}, list.Data[0].Tags)

	assert.Equal(t, http.StatusNotFound, doGet(r, "/tags/name/nope/notes").Code)
}
