package namesapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/nameboard/internal/entities"
	"github.com/mrlokans/nameboard/internal/namesapi"
	"github.com/mrlokans/nameboard/internal/namesapi/namesapitest"
)

func firstNames(names []entities.Name) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n.FirstName)
	}
	return out
}

func TestClient_ListAll(t *testing.T) {
	t.Run("sorts case-insensitively", func(t *testing.T) {
		srv := namesapitest.NewServer(t,
			entities.Name{FirstName: "Bob"},
			entities.Name{FirstName: "alice"},
		)
		client := namesapi.NewClient(srv.NamesURL())

		names, err := client.ListAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "Bob"}, firstNames(names))
	})

	t.Run("keeps prior order for names that compare equal", func(t *testing.T) {
		srv := namesapitest.NewServer(t,
			entities.Name{ID: "1", FirstName: "ann"},
			entities.Name{ID: "2", FirstName: "Ann"},
			entities.Name{ID: "3", FirstName: "ANN"},
		)
		client := namesapi.NewClient(srv.NamesURL())

		names, err := client.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, names, 3)
		assert.Equal(t, "1", names[0].ID)
		assert.Equal(t, "2", names[1].ID)
		assert.Equal(t, "3", names[2].ID)
	})

	t.Run("empty collection", func(t *testing.T) {
		srv := namesapitest.NewServer(t)
		client := namesapi.NewClient(srv.NamesURL())

		names, err := client.ListAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("non-2xx is a transport error", func(t *testing.T) {
		srv := namesapitest.NewServer(t)
		srv.FailWith(http.StatusInternalServerError)
		client := namesapi.NewClient(srv.NamesURL())

		names, err := client.ListAll(context.Background())
		assert.Nil(t, names)

		var te *namesapi.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
		assert.Equal(t, "list", te.Op)
	})

	t.Run("network failure is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL + "/names"
		srv.Close()

		_, err := namesapi.NewClient(url).ListAll(context.Background())
		assert.True(t, namesapi.IsTransport(err))
	})

	t.Run("malformed body is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		_, err := namesapi.NewClient(srv.URL).ListAll(context.Background())
		assert.True(t, namesapi.IsTransport(err))
	})
}

func TestClient_Create(t *testing.T) {
	t.Run("posts trimmed name not liked", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"_id":"abc","firstName":"Zed","liked":false}`))
		}))
		defer srv.Close()

		created, err := namesapi.NewClient(srv.URL).Create(context.Background(), "  Zed ")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"firstName": "Zed", "liked": false}, got)
		assert.Equal(t, "abc", created.ID)
	})

	for _, input := range []string{"", "   ", "\t\n"} {
		t.Run("rejects blank input without a request", func(t *testing.T) {
			srv := namesapitest.NewServer(t)
			client := namesapi.NewClient(srv.NamesURL())

			_, err := client.Create(context.Background(), input)

			var ve *namesapi.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "firstName", ve.Field)
			assert.Empty(t, srv.Requests())
		})
	}

	t.Run("created name is listed afterwards", func(t *testing.T) {
		srv := namesapitest.NewServer(t, entities.Name{FirstName: "Bob"})
		client := namesapi.NewClient(srv.NamesURL())

		_, err := client.Create(context.Background(), "Carol")
		require.NoError(t, err)

		names, err := client.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, names, 2)
		assert.Equal(t, "Carol", names[1].FirstName)
		assert.False(t, names[1].Liked)
	})

	t.Run("empty response body is accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		created, err := namesapi.NewClient(srv.URL).Create(context.Background(), "Zed")
		require.NoError(t, err)
		assert.Nil(t, created)
	})
}

func TestClient_Update(t *testing.T) {
	t.Run("liked toggle only touches one record", func(t *testing.T) {
		srv := namesapitest.NewServer(t,
			entities.Name{ID: "a", FirstName: "alice"},
			entities.Name{ID: "b", FirstName: "Bob"},
		)
		client := namesapi.NewClient(srv.NamesURL())

		_, err := client.Update(context.Background(), "a", entities.LikedPatch(true))
		require.NoError(t, err)

		names, err := client.ListAll(context.Background())
		require.NoError(t, err)
		assert.True(t, names[0].Liked)
		assert.False(t, names[1].Liked)
	})

	t.Run("sends only the patched field", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/names/x1", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Write([]byte(`{"_id":"x1","firstName":"Renamed","liked":true}`))
		}))
		defer srv.Close()

		updated, err := namesapi.NewClient(srv.URL+"/names").Update(context.Background(), "x1", entities.RenamePatch(" Renamed "))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"firstName": "Renamed"}, got)
		assert.Equal(t, "Renamed", updated.FirstName)
	})

	t.Run("rejects invalid input without a request", func(t *testing.T) {
		srv := namesapitest.NewServer(t, entities.Name{ID: "a", FirstName: "alice"})
		client := namesapi.NewClient(srv.NamesURL())

		_, err := client.Update(context.Background(), "a", entities.RenamePatch("  "))
		assert.True(t, namesapi.IsValidation(err))

		_, err = client.Update(context.Background(), "", entities.LikedPatch(true))
		assert.True(t, namesapi.IsValidation(err))

		_, err = client.Update(context.Background(), "a", entities.NamePatch{})
		assert.True(t, namesapi.IsValidation(err))

		assert.Empty(t, srv.Requests())
	})

	t.Run("unknown id wraps ErrNotFound", func(t *testing.T) {
		srv := namesapitest.NewServer(t)
		client := namesapi.NewClient(srv.NamesURL())

		_, err := client.Update(context.Background(), "missing", entities.LikedPatch(true))
		assert.True(t, errors.Is(err, namesapi.ErrNotFound))
		assert.True(t, namesapi.IsTransport(err))
	})
}

func TestClient_Delete(t *testing.T) {
	srv := namesapitest.NewServer(t,
		entities.Name{ID: "a", FirstName: "alice"},
		entities.Name{ID: "b", FirstName: "Bob"},
	)
	client := namesapi.NewClient(srv.NamesURL())

	require.NoError(t, client.Delete(context.Background(), "a"))
	assert.Equal(t, []string{"Bob"}, firstNames(srv.Names()))

	err := client.Delete(context.Background(), "a")
	assert.ErrorIs(t, err, namesapi.ErrNotFound)

	err = client.Delete(context.Background(), " ")
	assert.True(t, namesapi.IsValidation(err))
	assert.Equal(t, []string{"DELETE /names/a", "DELETE /names/a"}, srv.Requests())
}

func TestClient_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := namesapi.NewMetrics(reg)
	srv := namesapitest.NewServer(t, entities.Name{FirstName: "alice"})
	client := namesapi.NewClient(srv.NamesURL(), namesapi.WithMetrics(metrics))

	_, _ = client.ListAll(context.Background())
	_, _ = client.Create(context.Background(), "")
	srv.FailWith(http.StatusBadGateway)
	_, _ = client.ListAll(context.Background())

	count, err := testutil.GatherAndCount(reg, "nameboard_api_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
