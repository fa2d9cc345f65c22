package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type validatedProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (p validatedProfile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required),
	)
}

type queryParams url.Values

func (q queryParams) Values() url.Values { return url.Values(q) }

func TestNewClientValidatesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"absolute", "http://localhost:9000", false},
		{"with base path", "https://api.example.com/admin", false},
		{"relative", "/admin", true},
		{"garbage", "://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDoDecodesJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipping-profiles/sp_1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(profile{ID: "sp_1", Name: "Standard"})
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	var out profile
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/shipping-profiles/sp_1", nil, nil, &out))
	assert.Equal(t, "Standard", out.Name)
}

func TestDoKeepsBasePath(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL + "/vendor")
	require.NoError(t, err)

	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/stores", nil, nil, nil))
	assert.Equal(t, "/vendor/stores", gotPath)
}

func TestDoSendsQueryAndHeaders(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL, WithHeader("Authorization", "Bearer tok"))
	require.NoError(t, err)

	q := queryParams{"limit": {"20"}, "q": {"shirt"}}
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/inventory-items", q, nil, nil))

	assert.Equal(t, "20", gotQuery.Get("limit"))
	assert.Equal(t, "shirt", gotQuery.Get("q"))
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestDoSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody profile
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gotBody)
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	var out profile
	require.NoError(t, c.Do(context.Background(), http.MethodPost, "/shipping-profiles",
		nil, profile{Name: "Express"}, &out))

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Express", gotBody.Name)
}

func TestDoServerErrorBecomesFetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Shipping profile with id sp_x was not found"}`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	err = c.Do(context.Background(), http.MethodGet, "/shipping-profiles/sp_x", nil, nil, &profile{})
	require.Error(t, err)

	var fe *Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.Status)
	assert.Equal(t, "Shipping profile with id sp_x was not found", fe.Message)
	assert.True(t, IsNotFound(err))
}

func TestDoErrorWithoutMessageUsesStatusText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	err = c.Do(context.Background(), http.MethodGet, "/stores", nil, nil, &profile{})
	require.Error(t, err)

	status, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, err.Error(), http.StatusText(http.StatusBadGateway))
}

func TestDoValidatesDecodedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"sp_1","name":""}`))
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	var out validatedProfile
	err = c.Do(context.Background(), http.MethodGet, "/shipping-profiles/sp_1", nil, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestDoIgnoresBodyOnNoContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	var out profile
	assert.NoError(t, c.Do(context.Background(), http.MethodDelete, "/shipping-profiles/sp_1", nil, nil, &out))
}

func TestStatusCodeOnForeignError(t *testing.T) {
	_, ok := StatusCode(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsNotFound(errors.New("plain")))
}
