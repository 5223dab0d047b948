package transfer

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/journal"
	"ingredient-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, *fixture) {
	f := setup(t)

	app := fiber.New()
	app.Use(rayid.New())
	require.NoError(t, NewFeature(f.transfers).Load(app))
	return app, f
}

func post(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	req := httptest.NewRequest("POST", "/transfers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(rayid.Header, "ray-1")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHandleTransfer(t *testing.T) {
	app, f := setupApp(t)
	f.client.On("PutObject", mock.Anything, "ingredients", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	status, body := post(t, app, `{"source":"pantry","destination":"bin","mode":"single","item":"flour","count":4}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "flour", body["moved"].(map[string]any)["item"])
	assert.EqualValues(t, 4, body["moved"].(map[string]any)["count"])
	assert.Equal(t, false, body["simulated"])
	assert.NotEmpty(t, body["journal_id"])

	status, body = post(t, app, `{"source":"pantry","destination":"bin","count":4,"simulate":true}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["simulated"])

	status, _ = post(t, app, `{"source":"pantry","destination":"cellar","count":4}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = post(t, app, `{"source":"pantry","destination":"bin","mode":"warp","count":4}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "unknown mode")

	status, _ = post(t, app, `{`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleJournal(t *testing.T) {
	app, f := setupApp(t)

	rec := journal.Record{
		ID:          "rec-1",
		Time:        time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
		Source:      "pantry",
		Destination: "bin",
		Mode:        "any",
		Moved:       itemstack.Stack{Item: "flour", Count: 3},
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	listing := make(chan minio.ObjectInfo, 1)
	listing <- minio.ObjectInfo{Key: "journal/2026/05/01/rec-1.json", LastModified: rec.Time}
	close(listing)

	f.client.On("ListObjects", mock.Anything, "ingredients", mock.Anything).
		Return((<-chan minio.ObjectInfo)(listing))
	f.client.On("GetObject", mock.Anything, "ingredients", "journal/2026/05/01/rec-1.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(string(data))), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/transfers/journal?limit=5", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []journal.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].ID)
	assert.Equal(t, int64(3), records[0].Moved.Count)

	resp, err = app.Test(httptest.NewRequest("GET", "/transfers/journal?limit=0", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFeature(t *testing.T) {
	f := NewFeature(NewService(nil, nil, nil))

	assert.Equal(t, "transfer", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NoError(t, f.Load(fiber.New()))
}
