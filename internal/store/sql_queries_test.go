package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/collabcanvas/collab-canvas/models"
)

func Test_buildListElementsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListElementsQuery("c-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "c-1", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from elements")
	require.Contains(t, q, "where")
	require.Contains(t, q, "canvas_id")
	require.Contains(t, q, "order by created_at asc, id asc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildListElementsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListElementsQuery("c-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, c := range elementColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildGetElementQuery(t *testing.T) {
	query, args, err := buildGetElementQuery("e-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "e-1", args[0])
	require.Contains(t, strings.ToLower(query), "where id = $1")
}

func Test_buildInsertElementQuery(t *testing.T) {
	now := time.Now().UTC()
	element := models.Element{
		ID:          "e-1",
		CanvasID:    "c-1",
		ElementType: "rectangle",
		UserID:      "user-1",
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	query, args, err := buildInsertElementQuery(element, []byte(`{}`))
	require.NoError(t, err)

	require.Len(t, args, 7)
	require.Equal(t, "e-1", args[0])
	require.Equal(t, "c-1", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into elements")
	require.Contains(t, q, "returning")
}

func Test_buildReplaceElementQuery(t *testing.T) {
	now := time.Now().UTC()
	element := models.Element{
		ElementType: "ellipse",
		UserID:      "user-1",
		UpdatedAt:   &now,
	}

	query, args, err := buildReplaceElementQuery("e-1", element, []byte(`{}`))
	require.NoError(t, err)

	// four SET values plus the WHERE id
	require.Len(t, args, 5)
	require.Equal(t, "e-1", args[4])

	q := strings.ToLower(query)
	require.Contains(t, q, "update elements")
	require.Contains(t, q, "element_type")
	require.Contains(t, q, "data")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "returning")
}

func Test_buildDeleteElementQuery(t *testing.T) {
	query, args, err := buildDeleteElementQuery("e-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Contains(t, strings.ToLower(query), "delete from elements")
}

func Test_buildUpsertCanvasQuery(t *testing.T) {
	now := time.Now().UTC()
	query, args, err := buildUpsertCanvasQuery("c-1", now)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, "c-1", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into canvases")
	require.Contains(t, q, "on conflict (id) do update set updated_at")
}
