package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/admin"
	"github.com/yigit/educa/internal/app/models/dto"
)

func TestListModels(t *testing.T) {
	r := newTestRouter()
	r.GET("/models", NewAdminController(admin.Default()).ListModels)

	w, env := doJSON(t, r, http.MethodGet, "/models", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []dto.ModelAdminResponse
	decodeData(t, env, &got)
	require.Len(t, got, 4)
	assert.Equal(t, "content", got[0].Name)
	assert.Equal(t, "course", got[1].Name)
	assert.Equal(t, []string{"module"}, got[1].Inlines)
	assert.Equal(t, []string{"title"}, got[1].PrepopulatedFields["slug"])
}
